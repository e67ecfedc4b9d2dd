package household

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// GetHousehold returns a household in any state.
func (s *Service) GetHousehold(ctx context.Context, id int64) (*domain.Household, error) {
	h, err := s.households.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("household.GetHousehold: %w", err)
	}
	return h, nil
}

// ListHouseholds returns active households, or every household when showAll
// is set.
func (s *Service) ListHouseholds(ctx context.Context, showAll bool) ([]domain.Household, error) {
	return s.Search(ctx, domain.HouseholdFilter{ActiveOnly: !showAll})
}

// Search matches owner name and address as case-insensitive substrings.
// Blank criteria are ignored.
func (s *Service) Search(ctx context.Context, filter domain.HouseholdFilter) ([]domain.Household, error) {
	filter.OwnerName = blankToNil(filter.OwnerName)
	filter.Address = blankToNil(filter.Address)

	households, err := s.households.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("household.Search: %w", err)
	}
	return households, nil
}

// PurgeInactive permanently removes households that have been inactive for
// longer than olderThan, together with their payments.
func (s *Service) PurgeInactive(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan < 0 {
		return 0, domain.NewValidationError("older_than", "must not be negative")
	}

	n, err := s.households.PurgeInactive(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("household.PurgeInactive: %w", err)
	}

	s.log.InfoContext(ctx, "inactive households purged", slog.Int64("count", n))
	return n, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
