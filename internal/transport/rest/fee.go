package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/fee"
	"github.com/heartmarshall/bluemoon-fees/internal/service/query"
)

type feeService interface {
	GetFee(ctx context.Context, id int64) (*domain.Fee, error)
	ListFees(ctx context.Context, showAll bool) ([]domain.Fee, error)
	ListByType(ctx context.Context, t domain.FeeType) ([]domain.Fee, error)
	ListByDueDateRange(ctx context.Context, r domain.DateRange) ([]domain.Fee, error)
	ListOverdue(ctx context.Context) ([]domain.Fee, error)
	CreateFee(ctx context.Context, input fee.FeeInput) (*domain.Fee, error)
	UpdateFee(ctx context.Context, id int64, input fee.FeeInput) (*domain.Fee, error)
	ActivateFee(ctx context.Context, id int64) (*domain.Fee, error)
	DeactivateFee(ctx context.Context, id int64) (*domain.Fee, error)
	DeleteFee(ctx context.Context, id int64) (domain.LifecycleState, error)
}

type feeQuerier interface {
	Fees(ctx context.Context, q query.FeeQuery) ([]domain.Fee, error)
}

type feeStatistics interface {
	FeeStatistics(ctx context.Context, feeID int64) (domain.FeeStatistics, error)
}

// FeeHandler serves /api/fees.
type FeeHandler struct {
	fees  feeService
	query feeQuerier
	stats feeStatistics
	log   *slog.Logger
}

// NewFeeHandler creates a FeeHandler.
func NewFeeHandler(fees feeService, q feeQuerier, stats feeStatistics, logger *slog.Logger) *FeeHandler {
	return &FeeHandler{fees: fees, query: q, stats: stats, log: logger.With("handler", "fee")}
}

type feeRequest struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	DueDate     *date   `json:"dueDate"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// input converts the request. A missing active flag means active.
func (req feeRequest) input() fee.FeeInput {
	in := fee.FeeInput{
		Name:        req.Name,
		Type:        domain.FeeType(strings.ToUpper(strings.TrimSpace(req.Type))),
		Amount:      req.Amount,
		Description: req.Description,
		Active:      true,
	}
	if t := req.DueDate.timePtr(); t != nil {
		in.DueDate = *t
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	return in
}

type feeStatisticsResponse struct {
	FeeID          int64   `json:"feeId"`
	FeeName        string  `json:"feeName"`
	FeeAmount      float64 `json:"feeAmount"`
	TotalPayments  int     `json:"totalPayments"`
	TotalCollected float64 `json:"totalCollected"`
}

// List handles GET /api/fees. Without filters it honours showAll; with
// type, dueStart/dueEnd or overdue it goes through the query façade.
func (h *FeeHandler) List(w http.ResponseWriter, r *http.Request) {
	showAll, err := queryBool(r, "showAll")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	if q.Get("type") == "" && q.Get("dueStart") == "" && q.Get("dueEnd") == "" && q.Get("overdue") == "" {
		fees, err := h.fees.ListFees(r.Context(), showAll)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toFeeResponses(fees))
		return
	}

	fq := query.FeeQuery{ShowAll: showAll}
	if t := q.Get("type"); t != "" {
		ft := domain.FeeType(strings.ToUpper(t))
		fq.Type = &ft
	}
	if fq.DueStart, err = queryDate(r, "dueStart"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if fq.DueEnd, err = queryDate(r, "dueEnd"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if fq.Overdue, err = queryBool(r, "overdue"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	fees, err := h.query.Fees(r.Context(), fq)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponses(fees))
}

// Get handles GET /api/fees/{id}.
func (h *FeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f, err := h.fees.GetFee(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponse(*f))
}

// ByType handles GET /api/fees/type/{type}.
func (h *FeeHandler) ByType(w http.ResponseWriter, r *http.Request) {
	t := domain.FeeType(strings.ToUpper(chi.URLParam(r, "type")))
	fees, err := h.fees.ListByType(r.Context(), t)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponses(fees))
}

// DueDateRange handles GET /api/fees/due-date-range?startDate=&endDate=.
func (h *FeeHandler) DueDateRange(w http.ResponseWriter, r *http.Request) {
	dr, err := queryDateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	fees, err := h.fees.ListByDueDateRange(r.Context(), dr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponses(fees))
}

// Overdue handles GET /api/fees/overdue.
func (h *FeeHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	fees, err := h.fees.ListOverdue(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponses(fees))
}

// Statistics handles GET /api/fees/{id}/statistics.
func (h *FeeHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	st, err := h.stats.FeeStatistics(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, feeStatisticsResponse{
		FeeID:          st.FeeID,
		FeeName:        st.FeeName,
		FeeAmount:      st.FeeAmount,
		TotalPayments:  st.TotalPayments,
		TotalCollected: st.TotalCollected,
	})
}

// Create handles POST /api/fees.
func (h *FeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req feeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f, err := h.fees.CreateFee(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeeResponse(*f))
}

// Update handles PUT /api/fees/{id}.
func (h *FeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req feeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	f, err := h.fees.UpdateFee(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponse(*f))
}

// SetStatus handles PATCH /api/fees/{id}/status {"active": bool}.
func (h *FeeHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Active == nil {
		handleError(h.log, w, r, domain.NewValidationError("active", "required"))
		return
	}

	var f *domain.Fee
	if *req.Active {
		f, err = h.fees.ActivateFee(r.Context(), id)
	} else {
		f, err = h.fees.DeactivateFee(r.Context(), id)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeeResponse(*f))
}

// Delete handles DELETE /api/fees/{id}. The first call deactivates an active
// fee, the second removes it.
func (h *FeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	state, err := h.fees.DeleteFee(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lifecycleResponse{ID: id, State: state.String()})
}
