package fee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// GetFee returns a fee in any state.
func (s *Service) GetFee(ctx context.Context, id int64) (*domain.Fee, error) {
	f, err := s.fees.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fee.GetFee: %w", err)
	}
	return f, nil
}

// GetActiveFee returns an active fee. Inactive fees are reported as
// domain.ErrNotFound.
func (s *Service) GetActiveFee(ctx context.Context, id int64) (*domain.Fee, error) {
	f, err := s.fees.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fee.GetActiveFee: %w", err)
	}
	if !f.Active {
		return nil, fmt.Errorf("fee.GetActiveFee: fee %d is inactive: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

// ListFees returns active fees, or every fee when showAll is set.
func (s *Service) ListFees(ctx context.Context, showAll bool) ([]domain.Fee, error) {
	return s.list(ctx, "fee.ListFees", domain.FeeFilter{ActiveOnly: !showAll})
}

// ListByType returns active fees of the given type.
func (s *Service) ListByType(ctx context.Context, t domain.FeeType) ([]domain.Fee, error) {
	if !t.IsValid() {
		return nil, domain.NewValidationError("type", "must be MANDATORY or VOLUNTARY")
	}
	return s.list(ctx, "fee.ListByType", domain.FeeFilter{Type: &t, ActiveOnly: true})
}

// ListByDueDateRange returns active fees due within r, both ends inclusive.
func (s *Service) ListByDueDateRange(ctx context.Context, r domain.DateRange) ([]domain.Fee, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	r = r.Normalize()
	return s.list(ctx, "fee.ListByDueDateRange", domain.FeeFilter{DueFrom: &r.Start, DueTo: &r.End, ActiveOnly: true})
}

// ListOverdue returns active fees due strictly before today. A fee due today
// is not overdue.
func (s *Service) ListOverdue(ctx context.Context) ([]domain.Fee, error) {
	today := domain.DateOf(s.now())
	return s.list(ctx, "fee.ListOverdue", domain.FeeFilter{DueBefore: &today, ActiveOnly: true})
}

func (s *Service) list(ctx context.Context, op string, filter domain.FeeFilter) ([]domain.Fee, error) {
	fees, err := s.fees.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return fees, nil
}

// PurgeInactive permanently removes fees that have been inactive for longer
// than olderThan, together with their payments.
func (s *Service) PurgeInactive(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, domain.NewValidationError("older_than", "must not be negative")
	}

	n, err := s.fees.PurgeInactive(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("fee.PurgeInactive: %w", err)
	}

	s.log.InfoContext(ctx, "inactive fees purged", slog.Int64("count", n))
	return n, nil
}
