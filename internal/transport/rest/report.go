package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type summaryReporter interface {
	Summary(ctx context.Context) (domain.LedgerSummary, error)
}

// ReportHandler serves the admin dashboard.
type ReportHandler struct {
	reports summaryReporter
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports summaryReporter, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: logger.With("handler", "report")}
}

type summaryResponse struct {
	ActiveHouseholds    int     `json:"activeHouseholds"`
	ActiveFees          int     `json:"activeFees"`
	OverdueFees         int     `json:"overdueFees"`
	UnverifiedPayments  int     `json:"unverifiedPayments"`
	TotalThisMonth      float64 `json:"totalThisMonth"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.reports.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		ActiveHouseholds:    s.ActiveHouseholds,
		ActiveFees:          s.ActiveFees,
		OverdueFees:         s.OverdueFees,
		UnverifiedPayments:  s.UnverifiedPayments,
		TotalThisMonth:      s.MonthTotal,
		UnreadNotifications: s.UnreadNotices,
	})
}
