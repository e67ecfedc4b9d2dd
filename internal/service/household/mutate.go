package household

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/notification"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

// CreateHousehold registers a household with the submitted active flag and
// notifies the administrator.
func (s *Service) CreateHousehold(ctx context.Context, input HouseholdInput) (*domain.Household, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created domain.Household
		stored  *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.households.Create(txCtx, input.apply(domain.Household{}))
		if err != nil {
			return err
		}
		created = h

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeHousehold,
			EntityID:   h.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"owner_name": h.OwnerName,
				"address":    h.Address,
				"active":     h.Active,
			},
		}); err != nil {
			return err
		}

		stored, err = s.notifier.NotifyInTx(txCtx, notification.HouseholdCreated(h))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("household.CreateHousehold: %w", err)
	}

	s.notifier.NotifyAfterCommit(ctx, notification.HouseholdCreated(created), stored)
	s.record(domain.AuditActionCreate)
	s.log.InfoContext(ctx, "household created", slog.Int64("household_id", created.ID))
	return &created, nil
}

// UpdateHousehold overwrites every field of a household in any state,
// including the active flag.
func (s *Service) UpdateHousehold(ctx context.Context, id int64, input HouseholdInput) (*domain.Household, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Household
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.households.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		h, err := s.households.Update(txCtx, input.apply(*current))
		if err != nil {
			return err
		}
		updated = h

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeHousehold,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    householdChanges(*current, h),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("household.UpdateHousehold: %w", err)
	}

	s.record(domain.AuditActionUpdate)
	s.log.InfoContext(ctx, "household updated", slog.Int64("household_id", id))
	return &updated, nil
}

// ActivateHousehold sets the household active regardless of its state.
func (s *Service) ActivateHousehold(ctx context.Context, id int64) (*domain.Household, error) {
	return s.setActive(ctx, "household.ActivateHousehold", id, true)
}

// DeactivateHousehold sets the household inactive regardless of its state.
func (s *Service) DeactivateHousehold(ctx context.Context, id int64) (*domain.Household, error) {
	return s.setActive(ctx, "household.DeactivateHousehold", id, false)
}

func (s *Service) setActive(ctx context.Context, op string, id int64, active bool) (*domain.Household, error) {
	action := domain.AuditActionDeactivate
	if active {
		action = domain.AuditActionActivate
	}

	var updated domain.Household
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.households.SetActive(txCtx, id, active)
		if err != nil {
			return err
		}
		updated = h

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeHousehold,
			EntityID:   id,
			Action:     action,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.record(action)
	s.log.InfoContext(ctx, "household status changed",
		slog.Int64("household_id", id),
		slog.Bool("active", active),
	)
	return &updated, nil
}

// DeleteHousehold advances the household one step along its lifecycle: an
// active household becomes inactive, an inactive one is removed together with
// its payments. It returns the new state.
func (s *Service) DeleteHousehold(ctx context.Context, id int64) (domain.LifecycleState, error) {
	var (
		next   domain.LifecycleState
		action domain.AuditAction
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.households.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		next = current.State().NextOnDelete()
		action = domain.AuditActionDelete
		if next == domain.LifecycleInactive {
			action = domain.AuditActionDeactivate
			if _, err := s.households.SetActive(txCtx, id, false); err != nil {
				return err
			}
		} else if err := s.households.Delete(txCtx, id); err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeHousehold,
			EntityID:   id,
			Action:     action,
			Changes:    map[string]any{"state": next.String()},
		})
	})
	if err != nil {
		return "", fmt.Errorf("household.DeleteHousehold: %w", err)
	}

	s.record(action)
	s.log.InfoContext(ctx, "household deleted",
		slog.Int64("household_id", id),
		slog.String("state", next.String()),
	)
	return next, nil
}

func actor(ctx context.Context) *int64 {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}
