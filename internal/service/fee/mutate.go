package fee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/notification"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

// CreateFee stores a fee with the submitted active flag and notifies the
// administrator.
func (s *Service) CreateFee(ctx context.Context, input FeeInput) (*domain.Fee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created domain.Fee
		stored  *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := s.fees.Create(txCtx, input.apply(domain.Fee{}))
		if err != nil {
			return err
		}
		created = f

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeFee,
			EntityID:   f.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":   f.Name,
				"type":   f.Type.String(),
				"amount": f.Amount,
				"active": f.Active,
			},
		}); err != nil {
			return err
		}

		stored, err = s.notifier.NotifyInTx(txCtx, notification.FeeCreated(f))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fee.CreateFee: %w", err)
	}

	s.notifier.NotifyAfterCommit(ctx, notification.FeeCreated(created), stored)
	s.record(domain.AuditActionCreate)
	s.log.InfoContext(ctx, "fee created",
		slog.Int64("fee_id", created.ID),
		slog.String("type", created.Type.String()),
	)
	return &created, nil
}

// UpdateFee overwrites every field of an active fee, including the active
// flag. An inactive or missing fee fails with domain.ErrNotFound.
func (s *Service) UpdateFee(ctx context.Context, id int64, input FeeInput) (*domain.Fee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Fee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.fees.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !current.Active {
			return fmt.Errorf("fee %d is inactive: %w", id, domain.ErrNotFound)
		}

		f, err := s.fees.Update(txCtx, input.apply(*current))
		if err != nil {
			return err
		}
		updated = f

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeFee,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    feeChanges(*current, f),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fee.UpdateFee: %w", err)
	}

	s.record(domain.AuditActionUpdate)
	s.log.InfoContext(ctx, "fee updated", slog.Int64("fee_id", id))
	return &updated, nil
}

// ActivateFee sets the fee active regardless of its current state.
func (s *Service) ActivateFee(ctx context.Context, id int64) (*domain.Fee, error) {
	return s.setActive(ctx, id, true)
}

// DeactivateFee sets the fee inactive regardless of its current state.
func (s *Service) DeactivateFee(ctx context.Context, id int64) (*domain.Fee, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(ctx context.Context, id int64, active bool) (*domain.Fee, error) {
	op, action := "fee.DeactivateFee", domain.AuditActionDeactivate
	if active {
		op, action = "fee.ActivateFee", domain.AuditActionActivate
	}

	var updated domain.Fee
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := s.fees.SetActive(txCtx, id, active)
		if err != nil {
			return err
		}
		updated = f

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeFee,
			EntityID:   id,
			Action:     action,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.record(action)
	s.log.InfoContext(ctx, "fee status changed",
		slog.Int64("fee_id", id),
		slog.Bool("active", active),
	)
	return &updated, nil
}

// DeleteFee advances the fee one step along its lifecycle: an active fee
// becomes inactive, an inactive fee is removed. It returns the new state.
func (s *Service) DeleteFee(ctx context.Context, id int64) (domain.LifecycleState, error) {
	var (
		next   domain.LifecycleState
		action domain.AuditAction
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.fees.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		next = current.State().NextOnDelete()
		action = domain.AuditActionDelete
		if next == domain.LifecycleInactive {
			action = domain.AuditActionDeactivate
			if _, err := s.fees.SetActive(txCtx, id, false); err != nil {
				return err
			}
		} else if err := s.fees.Delete(txCtx, id); err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypeFee,
			EntityID:   id,
			Action:     action,
			Changes:    map[string]any{"state": next.String()},
		})
	})
	if err != nil {
		return "", fmt.Errorf("fee.DeleteFee: %w", err)
	}

	s.record(action)
	s.log.InfoContext(ctx, "fee deleted",
		slog.Int64("fee_id", id),
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
