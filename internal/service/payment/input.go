package payment

import (
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// CreatePaymentInput holds the fields of a new payment. Nil fields take
// defaults: PaymentDate is today, Amount is the fee's amount and AmountPaid
// is Amount.
type CreatePaymentInput struct {
	HouseholdID int64
	FeeID       int64
	PaymentDate *time.Time
	Amount      *float64
	AmountPaid  *float64
	Verified    bool
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i CreatePaymentInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseholdID <= 0 {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	if i.FeeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "fee_id", Message: "required"})
	}
	if i.Amount != nil && *i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.AmountPaid != nil && *i.AmountPaid < 0 {
		errs = append(errs, domain.FieldError{Field: "amount_paid", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePatch(p domain.PaymentPatch) error {
	var errs []domain.FieldError

	if p.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if p.AmountPaid != nil && *p.AmountPaid < 0 {
		errs = append(errs, domain.FieldError{Field: "amount_paid", Message: "must not be negative"})
	}
	if p.HouseholdID != nil && *p.HouseholdID <= 0 {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "must be positive"})
	}
	if p.FeeID != nil && *p.FeeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "fee_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func paymentChanges(before, after domain.Payment) map[string]any {
	changes := map[string]any{}
	if before.HouseholdID != after.HouseholdID {
		changes["household_id"] = map[string]any{"old": before.HouseholdID, "new": after.HouseholdID}
	}
	if before.FeeID != after.FeeID {
		changes["fee_id"] = map[string]any{"old": before.FeeID, "new": after.FeeID}
	}
	if !before.PaymentDate.Equal(after.PaymentDate) {
		changes["payment_date"] = map[string]any{
			"old": before.PaymentDate.Format(time.DateOnly),
			"new": after.PaymentDate.Format(time.DateOnly),
		}
	}
	if before.Amount != after.Amount {
		changes["amount"] = map[string]any{"old": before.Amount, "new": after.Amount}
	}
	if before.AmountPaid != after.AmountPaid {
		changes["amount_paid"] = map[string]any{"old": before.AmountPaid, "new": after.AmountPaid}
	}
	if before.Verified != after.Verified {
		changes["verified"] = map[string]any{"old": before.Verified, "new": after.Verified}
	}
	return changes
}
