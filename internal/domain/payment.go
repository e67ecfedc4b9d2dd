package domain

import "time"

// Payment reconciles one household against one fee. HouseholdID and FeeID are
// non-owning references; the referenced records own their own lifecycle.
type Payment struct {
	ID          int64
	HouseholdID int64
	FeeID       int64
	PaymentDate time.Time
	Amount      float64
	AmountPaid  float64
	Verified    bool
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentPatch is a partial update. Amount and Notes are always applied
// (a nil Notes clears the notes); every other field is applied only when set.
type PaymentPatch struct {
	Amount      float64
	Notes       *string
	AmountPaid  *float64
	HouseholdID *int64
	FeeID       *int64
	PaymentDate *time.Time
	Verified    *bool
}

// Apply merges the patch into p and returns the result. p is not modified.
func (p Payment) Apply(patch PaymentPatch) Payment {
	p.Amount = patch.Amount
	p.Notes = patch.Notes
	if patch.AmountPaid != nil {
		p.AmountPaid = *patch.AmountPaid
	}
	if patch.HouseholdID != nil {
		p.HouseholdID = *patch.HouseholdID
	}
	if patch.FeeID != nil {
		p.FeeID = *patch.FeeID
	}
	if patch.PaymentDate != nil {
		p.PaymentDate = DateOf(*patch.PaymentDate)
	}
	if patch.Verified != nil {
		p.Verified = *patch.Verified
	}
	return p
}

// PaymentFilter selects payments for listing and totals.
type PaymentFilter struct {
	HouseholdID *int64
	FeeID       *int64
	From        *time.Time
	To          *time.Time
	Verified    *bool
	FeeType     *FeeType
	OrderNewest bool
	Limit       int
}

// PaymentView is a payment with the display fields of its household and fee.
type PaymentView struct {
	Payment
	HouseholdOwnerName string
	HouseholdAddress   string
	FeeName            string
	FeeAmount          float64
}
