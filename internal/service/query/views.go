package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// Payments returns payment views matching q.
func (s *Service) Payments(ctx context.Context, q PaymentQuery) ([]domain.PaymentView, error) {
	filter, err := q.Filter()
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query.Payments: %w", err)
	}

	views, err := s.Views(ctx, payments)
	if err != nil {
		return nil, fmt.Errorf("query.Payments: %w", err)
	}
	return views, nil
}

// Views attaches household and fee display fields to payments. Lookups are
// batched: one household query and one fee query per batch window.
func (s *Service) Views(ctx context.Context, payments []domain.Payment) ([]domain.PaymentView, error) {
	if len(payments) == 0 {
		return []domain.PaymentView{}, nil
	}

	loaders := NewLoaders(s.households, s.fees)

	householdThunks := make([]dataloader.Thunk[*domain.Household], len(payments))
	feeThunks := make([]dataloader.Thunk[*domain.Fee], len(payments))
	for i, p := range payments {
		householdThunks[i] = loaders.HouseholdByID.Load(ctx, p.HouseholdID)
		feeThunks[i] = loaders.FeeByID.Load(ctx, p.FeeID)
	}

	views := make([]domain.PaymentView, len(payments))
	for i, p := range payments {
		views[i] = domain.PaymentView{Payment: p}

		h, err := householdThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load household %d: %w", p.HouseholdID, err)
		}
		if h != nil {
			views[i].HouseholdOwnerName = h.OwnerName
			views[i].HouseholdAddress = h.Address
		} else {
			s.log.WarnContext(ctx, "payment references missing household",
				slog.Int64("payment_id", p.ID),
				slog.Int64("household_id", p.HouseholdID),
			)
		}

		f, err := feeThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load fee %d: %w", p.FeeID, err)
		}
		if f != nil {
			views[i].FeeName = f.Name
			views[i].FeeAmount = f.Amount
		} else {
			s.log.WarnContext(ctx, "payment references missing fee",
				slog.Int64("payment_id", p.ID),
				slog.Int64("fee_id", p.FeeID),
			)
		}
	}
	return views, nil
}

// Fees returns fees matching q.
func (s *Service) Fees(ctx context.Context, q FeeQuery) ([]domain.Fee, error) {
	filter, err := q.Filter(s.now())
	if err != nil {
		return nil, err
	}

	fees, err := s.fees.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query.Fees: %w", err)
	}
	return fees, nil
}

// Households returns households matching q.
func (s *Service) Households(ctx context.Context, q HouseholdQuery) ([]domain.Household, error) {
	households, err := s.households.List(ctx, q.Filter())
	if err != nil {
		return nil, fmt.Errorf("query.Households: %w", err)
	}
	return households, nil
}
