package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// date is a calendar date encoded as "YYYY-MM-DD". RFC 3339 timestamps are
// accepted on input and truncated.
type date time.Time

func (d date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateLayout))
}

func (d *date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := parseDate(raw)
	if err != nil {
		return err
	}
	*d = date(t)
	return nil
}

func (d *date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

type feeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	DueDate     date      `json:"dueDate"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toFeeResponse(f domain.Fee) feeResponse {
	return feeResponse{
		ID:          f.ID,
		Name:        f.Name,
		Type:        f.Type.String(),
		Amount:      f.Amount,
		DueDate:     date(f.DueDate),
		Description: f.Description,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toFeeResponses(fees []domain.Fee) []feeResponse {
	out := make([]feeResponse, len(fees))
	for i, f := range fees {
		out[i] = toFeeResponse(f)
	}
	return out
}

type householdResponse struct {
	ID          int64     `json:"id"`
	OwnerName   string    `json:"ownerName"`
	Address     string    `json:"address"`
	NumMembers  int       `json:"numMembers"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toHouseholdResponse(h domain.Household) householdResponse {
	return householdResponse{
		ID:          h.ID,
		OwnerName:   h.OwnerName,
		Address:     h.Address,
		NumMembers:  h.NumMembers,
		PhoneNumber: h.PhoneNumber,
		Email:       h.Email,
		Active:      h.Active,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func toHouseholdResponses(hs []domain.Household) []householdResponse {
	out := make([]householdResponse, len(hs))
	for i, h := range hs {
		out[i] = toHouseholdResponse(h)
	}
	return out
}

type paymentResponse struct {
	ID                 int64     `json:"id"`
	HouseholdID        int64     `json:"householdId"`
	HouseholdOwnerName string    `json:"householdOwnerName,omitempty"`
	HouseholdAddress   string    `json:"householdAddress,omitempty"`
	FeeID              int64     `json:"feeId"`
	FeeName            string    `json:"feeName,omitempty"`
	FeeAmount          float64   `json:"feeAmount,omitempty"`
	PaymentDate        date      `json:"paymentDate"`
	Amount             float64   `json:"amount"`
	AmountPaid         float64   `json:"amountPaid"`
	Verified           bool      `json:"verified"`
	Notes              *string   `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toPaymentResponse(p domain.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		FeeID:       p.FeeID,
		PaymentDate: date(p.PaymentDate),
		Amount:      p.Amount,
		AmountPaid:  p.AmountPaid,
		Verified:    p.Verified,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPaymentViewResponses(views []domain.PaymentView) []paymentResponse {
	out := make([]paymentResponse, len(views))
	for i, v := range views {
		resp := toPaymentResponse(v.Payment)
		resp.HouseholdOwnerName = v.HouseholdOwnerName
		resp.HouseholdAddress = v.HouseholdAddress
		resp.FeeName = v.FeeName
		resp.FeeAmount = v.FeeAmount
		out[i] = resp
	}
	return out
}

type notificationResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	CreatedAt  time.Time `json:"createdAt"`
	Read       bool      `json:"read"`
	UserID     *int64    `json:"userId,omitempty"`
}

func toNotificationResponses(ns []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, len(ns))
	for i, n := range ns {
		out[i] = toNotificationResponse(n)
	}
	return out
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType.String(),
		EntityID:   n.EntityID,
		CreatedAt:  n.CreatedAt,
		Read:       n.Read,
		UserID:     n.UserID,
	}
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type statusRequest struct {
	Active *bool `json:"active"`
}

type lifecycleResponse struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}

type countResponse struct {
	Count int `json:"count"`
}
