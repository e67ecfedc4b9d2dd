package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/household"
	"github.com/heartmarshall/bluemoon-fees/internal/service/query"
)

type householdService interface {
	GetHousehold(ctx context.Context, id int64) (*domain.Household, error)
	CreateHousehold(ctx context.Context, input household.HouseholdInput) (*domain.Household, error)
	UpdateHousehold(ctx context.Context, id int64, input household.HouseholdInput) (*domain.Household, error)
	ActivateHousehold(ctx context.Context, id int64) (*domain.Household, error)
	DeactivateHousehold(ctx context.Context, id int64) (*domain.Household, error)
	DeleteHousehold(ctx context.Context, id int64) (domain.LifecycleState, error)
}

type householdQuerier interface {
	Households(ctx context.Context, q query.HouseholdQuery) ([]domain.Household, error)
	Payments(ctx context.Context, q query.PaymentQuery) ([]domain.PaymentView, error)
}

type householdStatistics interface {
	HouseholdStatistics(ctx context.Context, householdID int64) (domain.HouseholdStatistics, error)
}

// HouseholdHandler serves /api/households.
type HouseholdHandler struct {
	households householdService
	query      householdQuerier
	stats      householdStatistics
	log        *slog.Logger
}

// NewHouseholdHandler creates a HouseholdHandler.
func NewHouseholdHandler(households householdService, q householdQuerier, stats householdStatistics, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{households: households, query: q, stats: stats, log: logger.With("handler", "household")}
}

type householdRequest struct {
	OwnerName   string  `json:"ownerName"`
	Address     string  `json:"address"`
	NumMembers  int     `json:"numMembers"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
	Active      *bool   `json:"active"`
}

func (req householdRequest) input() household.HouseholdInput {
	in := household.HouseholdInput{
		OwnerName:   req.OwnerName,
		Address:     req.Address,
		NumMembers:  req.NumMembers,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Active:      true,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}
	return in
}

type householdStatisticsResponse struct {
	HouseholdID        int64   `json:"householdId"`
	TotalPayments      int     `json:"totalPayments"`
	TotalPaid          float64 `json:"totalPaid"`
	VerifiedPayments   int     `json:"verifiedPayments"`
	VerifiedPercentage float64 `json:"verifiedPercentage"`
}

// List handles GET /api/households and GET /api/households/search with
// optional ownerName, address and showAll parameters.
func (h *HouseholdHandler) List(w http.ResponseWriter, r *http.Request) {
	showAll, err := queryBool(r, "showAll")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	households, err := h.query.Households(r.Context(), query.HouseholdQuery{
		OwnerName: queryOptionalString(r, "ownerName"),
		Address:   queryOptionalString(r, "address"),
		ShowAll:   showAll,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponses(households))
}

// Get handles GET /api/households/{id}.
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	hh, err := h.households.GetHousehold(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(*hh))
}

// Payments handles GET /api/households/{id}/payments.
func (h *HouseholdHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if _, err := h.households.GetHousehold(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	views, err := h.query.Payments(r.Context(), query.PaymentQuery{HouseholdID: &id, Newest: true})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentViewResponses(views))
}

// Statistics handles GET /api/households/{id}/statistics.
func (h *HouseholdHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	st, err := h.stats.HouseholdStatistics(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, householdStatisticsResponse{
		HouseholdID:        st.HouseholdID,
		TotalPayments:      st.TotalPayments,
		TotalPaid:          st.TotalPaid,
		VerifiedPayments:   st.VerifiedCount,
		VerifiedPercentage: st.VerifiedPercentage,
	})
}

// Create handles POST /api/households.
func (h *HouseholdHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	hh, err := h.households.CreateHousehold(r.Context(), req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHouseholdResponse(*hh))
}

// Update handles PUT /api/households/{id}.
func (h *HouseholdHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req householdRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	hh, err := h.households.UpdateHousehold(r.Context(), id, req.input())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(*hh))
}

// SetStatus handles PATCH /api/households/{id}/status {"active": bool}.
func (h *HouseholdHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
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

	var hh *domain.Household
	if *req.Active {
		hh, err = h.households.ActivateHousehold(r.Context(), id)
	} else {
		hh, err = h.households.DeactivateHousehold(r.Context(), id)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(*hh))
}

// Delete handles DELETE /api/households/{id}.
func (h *HouseholdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	state, err := h.households.DeleteHousehold(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lifecycleResponse{ID: id, State: state.String()})
}
