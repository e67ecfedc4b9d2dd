package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/metrics"
)

// NotifyInTx addresses ev to the administrator and stores it within the
// caller's transaction. In Strict mode any failure, including a missing
// administrator, is returned so the caller rolls back. In BestEffort mode it
// does nothing and returns nil.
func (s *Service) NotifyInTx(ctx context.Context, ev domain.Notification) (*domain.Notification, error) {
	if s.mode != Strict {
		return nil, nil
	}

	n, err := s.address(ctx, ev)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// NotifyAfterCommit completes dispatch once the mutation is durable. stored is
// the result of NotifyInTx. In Strict mode it only publishes stored; in
// BestEffort mode it addresses and stores ev first. Failures are logged and
// counted, never returned.
func (s *Service) NotifyAfterCommit(ctx context.Context, ev domain.Notification, stored *domain.Notification) {
	if s.mode == Strict {
		if stored != nil {
			s.publish(ctx, *stored)
		}
		return
	}

	n, err := s.address(context.WithoutCancel(ctx), ev)
	if err != nil {
		s.log.WarnContext(ctx, "notification dispatch failed",
			slog.String("entity_type", ev.EntityType.String()),
			slog.Int64("entity_id", ev.EntityID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.publish(ctx, *n)
}

// address resolves the administrator and stores the notification.
func (s *Service) address(ctx context.Context, ev domain.Notification) (*domain.Notification, error) {
	admin, err := s.admins.FindAdmin(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPreconditionFailed) {
			s.record(metrics.OutcomeNoAdmin)
		} else {
			s.record(metrics.OutcomeFailed)
		}
		return nil, fmt.Errorf("notification addressee: %w", err)
	}

	n, err := s.store(ctx, CreateInput{
		Title:      ev.Title,
		Message:    truncate(ev.Message, domain.MaxNotificationMessageLen),
		EntityType: ev.EntityType,
		EntityID:   ev.EntityID,
		UserID:     &admin.ID,
	})
	if err != nil {
		s.record(metrics.OutcomeFailed)
		return nil, err
	}

	s.record(metrics.OutcomeDelivered)
	return &n, nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
