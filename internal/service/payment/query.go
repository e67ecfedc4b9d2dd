package payment

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// GetPayment returns a payment by id.
func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("payment.GetPayment: %w", err)
	}
	return p, nil
}

// FindByHouseholdAndFee returns the payment of a household against a fee.
// When several exist the one with the lowest id is returned.
func (s *Service) FindByHouseholdAndFee(ctx context.Context, householdID, feeID int64) (*domain.Payment, error) {
	p, err := s.payments.FindFirstByPair(ctx, householdID, feeID)
	if err != nil {
		return nil, fmt.Errorf("payment.FindByHouseholdAndFee: %w", err)
	}
	return p, nil
}

// ListPayments returns payments matching filter.
func (s *Service) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	payments, err := s.payments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("payment.ListPayments: %w", err)
	}
	return payments, nil
}

// ListByHousehold returns every payment of a household.
func (s *Service) ListByHousehold(ctx context.Context, householdID int64) ([]domain.Payment, error) {
	return s.ListPayments(ctx, domain.PaymentFilter{HouseholdID: &householdID})
}

// ListByFee returns every payment against a fee.
func (s *Service) ListByFee(ctx context.Context, feeID int64) ([]domain.Payment, error) {
	return s.ListPayments(ctx, domain.PaymentFilter{FeeID: &feeID})
}

// ListByDateRange returns payments dated within r, both ends inclusive.
func (s *Service) ListByDateRange(ctx context.Context, r domain.DateRange) ([]domain.Payment, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r = r.Normalize()
	return s.ListPayments(ctx, domain.PaymentFilter{From: &r.Start, To: &r.End})
}

// ListByHouseholdAndDateRange returns a household's payments dated within r.
func (s *Service) ListByHouseholdAndDateRange(ctx context.Context, householdID int64, r domain.DateRange) ([]domain.Payment, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r = r.Normalize()
	return s.ListPayments(ctx, domain.PaymentFilter{HouseholdID: &householdID, From: &r.Start, To: &r.End})
}

// ListUnverified returns payments awaiting verification.
func (s *Service) ListUnverified(ctx context.Context) ([]domain.Payment, error) {
	verified := false
	return s.ListPayments(ctx, domain.PaymentFilter{Verified: &verified})
}

// TotalByHousehold sums the amount of a household's payments.
func (s *Service) TotalByHousehold(ctx context.Context, householdID int64) (float64, error) {
	return s.total(ctx, "payment.TotalByHousehold", domain.PaymentFilter{HouseholdID: &householdID})
}

// TotalByFee sums the amount of payments against a fee.
func (s *Service) TotalByFee(ctx context.Context, feeID int64) (float64, error) {
	return s.total(ctx, "payment.TotalByFee", domain.PaymentFilter{FeeID: &feeID})
}

// TotalByDateRange sums the amount of payments dated within r.
func (s *Service) TotalByDateRange(ctx context.Context, r domain.DateRange) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	r = r.Normalize()
	return s.total(ctx, "payment.TotalByDateRange", domain.PaymentFilter{From: &r.Start, To: &r.End})
}

// Totals sum amount, not amount paid.
func (s *Service) total(ctx context.Context, op string, filter domain.PaymentFilter) (float64, error) {
	agg, err := s.payments.Aggregate(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return agg.Total, nil
}
