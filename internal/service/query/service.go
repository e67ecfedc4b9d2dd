// Package query translates list requests into ledger filters and assembles
// payment views with their household and fee display fields.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type paymentLister interface {
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
}

type householdSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Household, error)
	List(ctx context.Context, filter domain.HouseholdFilter) ([]domain.Household, error)
}

type feeSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Fee, error)
	List(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error)
}

// Service is the read-side façade over the ledger.
type Service struct {
	log        *slog.Logger
	payments   paymentLister
	households householdSource
	fees       feeSource
	now        func() time.Time
}

// NewService creates a new query façade.
func NewService(
	logger *slog.Logger,
	payments paymentLister,
	households householdSource,
	fees feeSource,
) *Service {
	return &Service{
		log:        logger.With("service", "query"),
		payments:   payments,
		households: households,
		fees:       fees,
		now:        time.Now,
	}
}
