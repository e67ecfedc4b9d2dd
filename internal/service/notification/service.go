package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/metrics"
)

type notificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (domain.Notification, error)
	ListUnread(ctx context.Context) ([]domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) (domain.Notification, error)
}

// adminResolver returns the addressee for ledger notifications.
// It fails with domain.ErrPreconditionFailed when no ADMIN exists.
type adminResolver interface {
	FindAdmin(ctx context.Context) (*domain.User, error)
}

type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

type dispatchRecorder interface {
	NotificationDispatched(outcome string)
}

// Mode selects when ledger notifications are written.
type Mode int

const (
	// Strict writes the notification inside the mutation transaction; a missing
	// addressee aborts the mutation.
	Strict Mode = iota
	// BestEffort writes the notification after commit; failures are logged.
	BestEffort
)

// Service is the notification dispatcher.
type Service struct {
	notifications notificationRepo
	admins        adminResolver
	bus           publisher
	metrics       dispatchRecorder
	mode          Mode
	log           *slog.Logger
}

// NewService creates a notification dispatcher. bus may be nil.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
	admins adminResolver,
	bus publisher,
	metrics dispatchRecorder,
	mode Mode,
) *Service {
	return &Service{
		notifications: notifications,
		admins:        admins,
		bus:           bus,
		metrics:       metrics,
		mode:          mode,
		log:           log.With("service", "notification"),
	}
}

// Mode reports the configured dispatch mode.
func (s *Service) Mode() Mode {
	return s.mode
}

// Create stores a notification for input.UserID. Creation time and read state
// are assigned by the store; caller values for CreatedAt and Read are ignored.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Notification, error) {
	n, err := s.store(ctx, input)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, n)
	return &n, nil
}

// store validates input and writes it through the repository.
func (s *Service) store(ctx context.Context, input CreateInput) (domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return domain.Notification{}, err
	}

	n, err := s.notifications.Create(ctx, domain.Notification{
		Title:      input.Title,
		Message:    input.Message,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		UserID:     input.UserID,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("store notification: %w", err)
	}
	return n, nil
}

func (s *Service) publish(ctx context.Context, n domain.Notification) {
	if s.bus == nil {
		return
	}
	// The mutation context may already be winding down; the fan-out is independent.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := s.bus.Publish(pubCtx, n); err != nil {
		s.record(metrics.OutcomeDropped)
		s.log.WarnContext(ctx, "notification publish failed",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.record(metrics.OutcomePublished)
}

func (s *Service) record(outcome string) {
	if s.metrics != nil {
		s.metrics.NotificationDispatched(outcome)
	}
}
