package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type feeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Fee, error)
	Count(ctx context.Context, filter domain.FeeFilter) (int, error)
}

type householdReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Household, error)
	CountActive(ctx context.Context) (int, error)
}

type paymentAggregator interface {
	Aggregate(ctx context.Context, filter domain.PaymentFilter) (domain.PaymentAggregate, error)
}

type unreadCounter interface {
	CountUnread(ctx context.Context) (int, error)
}

// Service computes ledger statistics.
type Service struct {
	log           *slog.Logger
	fees          feeReader
	households    householdReader
	payments      paymentAggregator
	notifications unreadCounter
	now           func() time.Time
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	fees feeReader,
	households householdReader,
	payments paymentAggregator,
	notifications unreadCounter,
) *Service {
	return &Service{
		log:           logger.With("service", "report"),
		fees:          fees,
		households:    households,
		payments:      payments,
		notifications: notifications,
		now:           time.Now,
	}
}

// FeeStatistics summarises the payments made against a fee.
func (s *Service) FeeStatistics(ctx context.Context, feeID int64) (domain.FeeStatistics, error) {
	f, err := s.fees.GetByID(ctx, feeID)
	if err != nil {
		return domain.FeeStatistics{}, fmt.Errorf("report.FeeStatistics: %w", err)
	}

	agg, err := s.payments.Aggregate(ctx, domain.PaymentFilter{FeeID: &feeID})
	if err != nil {
		return domain.FeeStatistics{}, fmt.Errorf("report.FeeStatistics aggregate: %w", err)
	}

	return domain.FeeStatistics{
		FeeID:          f.ID,
		FeeName:        f.Name,
		FeeAmount:      f.Amount,
		TotalPayments:  agg.Count,
		TotalCollected: agg.Total,
	}, nil
}

// HouseholdStatistics summarises the payments made by a household.
func (s *Service) HouseholdStatistics(ctx context.Context, householdID int64) (domain.HouseholdStatistics, error) {
	if _, err := s.households.GetByID(ctx, householdID); err != nil {
		return domain.HouseholdStatistics{}, fmt.Errorf("report.HouseholdStatistics: %w", err)
	}

	agg, err := s.payments.Aggregate(ctx, domain.PaymentFilter{HouseholdID: &householdID})
	if err != nil {
		return domain.HouseholdStatistics{}, fmt.Errorf("report.HouseholdStatistics aggregate: %w", err)
	}

	stats := domain.HouseholdStatistics{
		HouseholdID:   householdID,
		TotalPayments: agg.Count,
		TotalPaid:     agg.Total,
		VerifiedCount: agg.VerifiedCount,
	}
	if agg.Count > 0 {
		stats.VerifiedPercentage = float64(agg.VerifiedCount) / float64(agg.Count) * 100
	}
	return stats, nil
}

// Summary gathers the administrative dashboard. MonthTotal sums the amount of
// payments dated in the current calendar month.
func (s *Service) Summary(ctx context.Context) (domain.LedgerSummary, error) {
	today := domain.DateOf(s.now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	unverified := false

	var summary domain.LedgerSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.households.CountActive(gctx)
		if err != nil {
			return fmt.Errorf("count active households: %w", err)
		}
		summary.ActiveHouseholds = n
		return nil
	})
	g.Go(func() error {
		n, err := s.fees.Count(gctx, domain.FeeFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("count active fees: %w", err)
		}
		summary.ActiveFees = n
		return nil
	})
	g.Go(func() error {
		n, err := s.fees.Count(gctx, domain.FeeFilter{ActiveOnly: true, DueBefore: &today})
		if err != nil {
			return fmt.Errorf("count overdue fees: %w", err)
		}
		summary.OverdueFees = n
		return nil
	})
	g.Go(func() error {
		agg, err := s.payments.Aggregate(gctx, domain.PaymentFilter{Verified: &unverified})
		if err != nil {
			return fmt.Errorf("count unverified payments: %w", err)
		}
		summary.UnverifiedPayments = agg.Count
		return nil
	})
	g.Go(func() error {
		agg, err := s.payments.Aggregate(gctx, domain.PaymentFilter{From: &monthStart, To: &monthEnd})
		if err != nil {
			return fmt.Errorf("month total: %w", err)
		}
		summary.MonthTotal = agg.Total
		return nil
	})
	g.Go(func() error {
		n, err := s.notifications.CountUnread(gctx)
		if err != nil {
			return fmt.Errorf("count unread notifications: %w", err)
		}
		summary.UnreadNotices = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.LedgerSummary{}, fmt.Errorf("report.Summary: %w", err)
	}
	return summary, nil
}
