package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/payment"
	"github.com/heartmarshall/bluemoon-fees/internal/service/query"
)

type paymentService interface {
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	FindByHouseholdAndFee(ctx context.Context, householdID, feeID int64) (*domain.Payment, error)
	ListByHousehold(ctx context.Context, householdID int64) ([]domain.Payment, error)
	ListByFee(ctx context.Context, feeID int64) ([]domain.Payment, error)
	ListByDateRange(ctx context.Context, r domain.DateRange) ([]domain.Payment, error)
	ListByHouseholdAndDateRange(ctx context.Context, householdID int64, r domain.DateRange) ([]domain.Payment, error)
	ListUnverified(ctx context.Context) ([]domain.Payment, error)
	TotalByHousehold(ctx context.Context, householdID int64) (float64, error)
	TotalByFee(ctx context.Context, feeID int64) (float64, error)
	TotalByDateRange(ctx context.Context, r domain.DateRange) (float64, error)
	CreatePayment(ctx context.Context, input payment.CreatePaymentInput) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, id int64) (*domain.Payment, error)
	UnverifyPayment(ctx context.Context, id int64) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

type paymentQuerier interface {
	Payments(ctx context.Context, q query.PaymentQuery) ([]domain.PaymentView, error)
	Views(ctx context.Context, payments []domain.Payment) ([]domain.PaymentView, error)
}

// PaymentHandler serves /api/payments.
type PaymentHandler struct {
	payments paymentService
	query    paymentQuerier
	log      *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments paymentService, q paymentQuerier, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, query: q, log: logger.With("handler", "payment")}
}

type createPaymentRequest struct {
	HouseholdID int64    `json:"householdId"`
	FeeID       int64    `json:"feeId"`
	PaymentDate *date    `json:"paymentDate"`
	Amount      *float64 `json:"amount"`
	AmountPaid  *float64 `json:"amountPaid"`
	Verified    bool     `json:"verified"`
	Notes       *string  `json:"notes"`
}

// updatePaymentRequest mirrors PaymentPatch: amount and notes are always
// written, every other field only when present.
type updatePaymentRequest struct {
	Amount      *float64 `json:"amount"`
	Notes       *string  `json:"notes"`
	AmountPaid  *float64 `json:"amountPaid"`
	HouseholdID *int64   `json:"householdId"`
	FeeID       *int64   `json:"feeId"`
	PaymentDate *date    `json:"paymentDate"`
	Verified    *bool    `json:"verified"`
}

func (req updatePaymentRequest) patch() (domain.PaymentPatch, error) {
	if req.Amount == nil {
		return domain.PaymentPatch{}, domain.NewValidationError("amount", "required")
	}
	return domain.PaymentPatch{
		Amount:      *req.Amount,
		Notes:       req.Notes,
		AmountPaid:  req.AmountPaid,
		HouseholdID: req.HouseholdID,
		FeeID:       req.FeeID,
		PaymentDate: req.PaymentDate.timePtr(),
		Verified:    req.Verified,
	}, nil
}

// List handles GET /api/payments with optional householdId, feeId,
// startDate, endDate, verified, feeType, newest and limit filters.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := paymentQueryFrom(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	views, err := h.query.Payments(r.Context(), q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentViewResponses(views))
}

func paymentQueryFrom(r *http.Request) (query.PaymentQuery, error) {
	var (
		q   query.PaymentQuery
		err error
	)
	if q.HouseholdID, err = queryOptionalInt64(r, "householdId"); err != nil {
		return q, err
	}
	if q.FeeID, err = queryOptionalInt64(r, "feeId"); err != nil {
		return q, err
	}
	if q.Start, err = queryDate(r, "startDate"); err != nil {
		return q, err
	}
	if q.End, err = queryDate(r, "endDate"); err != nil {
		return q, err
	}
	if q.Verified, err = queryOptionalBool(r, "verified"); err != nil {
		return q, err
	}
	if q.Newest, err = queryBool(r, "newest"); err != nil {
		return q, err
	}
	if t := r.URL.Query().Get("feeType"); t != "" {
		ft := domain.FeeType(strings.ToUpper(t))
		q.FeeType = &ft
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			return q, domain.NewValidationError("limit", "must be an integer")
		}
	}
	return q, nil
}

// Get handles GET /api/payments/{id}.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.payments.GetPayment(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, []domain.Payment{*p}, true)
}

// ByHousehold handles GET /api/payments/household/{householdId}. With
// startDate and endDate the listing is restricted to that range.
func (h *PaymentHandler) ByHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "householdId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var payments []domain.Payment
	if r.URL.Query().Get("startDate") != "" || r.URL.Query().Get("endDate") != "" {
		dr, rerr := queryDateRange(r)
		if rerr != nil {
			handleError(h.log, w, r, rerr)
			return
		}
		payments, err = h.payments.ListByHouseholdAndDateRange(r.Context(), id, dr)
	} else {
		payments, err = h.payments.ListByHousehold(r.Context(), id)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, payments, false)
}

// ByFee handles GET /api/payments/fee/{feeId}.
func (h *PaymentHandler) ByFee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "feeId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	payments, err := h.payments.ListByFee(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, payments, false)
}

// DateRange handles GET /api/payments/date-range?startDate=&endDate=.
func (h *PaymentHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	dr, err := queryDateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	payments, err := h.payments.ListByDateRange(r.Context(), dr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, payments, false)
}

// Unverified handles GET /api/payments/unverified.
func (h *PaymentHandler) Unverified(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListUnverified(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, payments, false)
}

// ByHouseholdAndFee handles GET /api/payments/household/{householdId}/fee/{feeId}.
func (h *PaymentHandler) ByHouseholdAndFee(w http.ResponseWriter, r *http.Request) {
	householdID, err := pathID(r, "householdId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	feeID, err := pathID(r, "feeId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.payments.FindByHouseholdAndFee(r.Context(), householdID, feeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, []domain.Payment{*p}, true)
}

// TotalByHousehold handles GET /api/payments/statistics/household/{householdId}/total.
func (h *PaymentHandler) TotalByHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "householdId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	total, err := h.payments.TotalByHousehold(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

// TotalByFee handles GET /api/payments/statistics/fee/{feeId}/total.
func (h *PaymentHandler) TotalByFee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "feeId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	total, err := h.payments.TotalByFee(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

// TotalByDateRange handles GET /api/payments/statistics/date-range/total.
func (h *PaymentHandler) TotalByDateRange(w http.ResponseWriter, r *http.Request) {
	dr, err := queryDateRange(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	total, err := h.payments.TotalByDateRange(r.Context(), dr)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

// Create handles POST /api/payments.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.payments.CreatePayment(r.Context(), payment.CreatePaymentInput{
		HouseholdID: req.HouseholdID,
		FeeID:       req.FeeID,
		PaymentDate: req.PaymentDate.timePtr(),
		Amount:      req.Amount,
		AmountPaid:  req.AmountPaid,
		Verified:    req.Verified,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusCreated, []domain.Payment{*p}, true)
}

// Update handles PUT /api/payments/{id}.
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updatePaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.payments.UpdatePayment(r.Context(), id, patch)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeViews(w, r, http.StatusOK, []domain.Payment{*p}, true)
}

// Verify handles PATCH /api/payments/{id}/verify.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, true)
}

// Unverify handles PATCH /api/payments/{id}/unverify.
func (h *PaymentHandler) Unverify(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, false)
}

func (h *PaymentHandler) setVerified(w http.ResponseWriter, r *http.Request, verified bool) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var p *domain.Payment
	if verified {
		p, err = h.payments.VerifyPayment(r.Context(), id)
	} else {
		p, err = h.payments.UnverifyPayment(r.Context(), id)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(*p))
}

// Delete handles DELETE /api/payments/{id}.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.payments.DeletePayment(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeViews enriches payments with household and fee display fields.
// single writes one object instead of a list.
func (h *PaymentHandler) writeViews(w http.ResponseWriter, r *http.Request, status int, payments []domain.Payment, single bool) {
	views, err := h.query.Views(r.Context(), payments)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toPaymentViewResponses(views)
	if single && len(resp) == 1 {
		writeJSON(w, status, resp[0])
		return
	}
	writeJSON(w, status, resp)
}
