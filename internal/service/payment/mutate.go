package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/notification"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

// CreatePayment records a payment of a household against a fee, filling the
// payment date, amount and amount paid when absent, and notifies the
// administrator. A missing household or fee fails with domain.ErrNotFound.
func (s *Service) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created   domain.Payment
		household *domain.Household
		stored    *domain.Notification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		h, err := s.households.GetByID(txCtx, input.HouseholdID)
		if err != nil {
			return err
		}
		household = h

		f, err := s.fees.GetByID(txCtx, input.FeeID)
		if err != nil {
			return err
		}

		p := domain.Payment{
			HouseholdID: input.HouseholdID,
			FeeID:       input.FeeID,
			PaymentDate: s.today(),
			Amount:      f.Amount,
			Verified:    input.Verified,
			Notes:       input.Notes,
		}
		if input.PaymentDate != nil {
			p.PaymentDate = domain.DateOf(*input.PaymentDate)
		}
		if input.Amount != nil {
			p.Amount = *input.Amount
		}
		p.AmountPaid = p.Amount
		if input.AmountPaid != nil {
			p.AmountPaid = *input.AmountPaid
		}

		p, err = s.payments.Create(txCtx, p)
		if err != nil {
			return err
		}
		created = p

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypePayment,
			EntityID:   p.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"household_id": p.HouseholdID,
				"fee_id":       p.FeeID,
				"amount":       p.Amount,
				"amount_paid":  p.AmountPaid,
			},
		}); err != nil {
			return err
		}

		stored, err = s.notifier.NotifyInTx(txCtx, notification.PaymentReceived(p, h))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("payment.CreatePayment: %w", err)
	}

	s.notifier.NotifyAfterCommit(ctx, notification.PaymentReceived(created, household), stored)
	s.record(domain.AuditActionCreate)
	s.log.InfoContext(ctx, "payment created",
		slog.Int64("payment_id", created.ID),
		slog.Int64("household_id", created.HouseholdID),
		slog.Int64("fee_id", created.FeeID),
	)
	return &created, nil
}

// UpdatePayment applies a partial update. Amount and notes are always
// replaced; the other fields only when set in the patch.
func (s *Service) UpdatePayment(ctx context.Context, id int64, patch domain.PaymentPatch) (*domain.Payment, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var updated domain.Payment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.payments.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		next := current.Apply(patch)
		if next.HouseholdID != current.HouseholdID {
			if _, err := s.households.GetByID(txCtx, next.HouseholdID); err != nil {
				return err
			}
		}
		if next.FeeID != current.FeeID {
			if _, err := s.fees.GetByID(txCtx, next.FeeID); err != nil {
				return err
			}
		}

		p, err := s.payments.Update(txCtx, next)
		if err != nil {
			return err
		}
		updated = p

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypePayment,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    paymentChanges(*current, p),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("payment.UpdatePayment: %w", err)
	}

	s.record(domain.AuditActionUpdate)
	s.log.InfoContext(ctx, "payment updated", slog.Int64("payment_id", id))
	return &updated, nil
}

// VerifyPayment marks a payment verified. Verifying a verified payment
// succeeds without change.
func (s *Service) VerifyPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.setVerified(ctx, "payment.VerifyPayment", id, true)
}

// UnverifyPayment clears the verified flag.
func (s *Service) UnverifyPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.setVerified(ctx, "payment.UnverifyPayment", id, false)
}

func (s *Service) setVerified(ctx context.Context, op string, id int64, verified bool) (*domain.Payment, error) {
	action := domain.AuditActionUnverify
	if verified {
		action = domain.AuditActionVerify
	}

	var updated domain.Payment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.payments.SetVerified(txCtx, id, verified)
		if err != nil {
			return err
		}
		updated = p

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypePayment,
			EntityID:   id,
			Action:     action,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.record(action)
	s.log.InfoContext(ctx, "payment verification changed",
		slog.Int64("payment_id", id),
		slog.Bool("verified", verified),
	)
	return &updated, nil
}

// DeletePayment permanently removes a payment.
func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.payments.Delete(txCtx, id); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actor(ctx),
			EntityType: domain.EntityTypePayment,
			EntityID:   id,
			Action:     domain.AuditActionDelete,
		})
	})
	if err != nil {
		return fmt.Errorf("payment.DeletePayment: %w", err)
	}

	s.record(domain.AuditActionDelete)
	s.log.InfoContext(ctx, "payment deleted", slog.Int64("payment_id", id))
	return nil
}

func actor(ctx context.Context) *int64 {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}
