package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type paymentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Payment, error)
	FindFirstByPair(ctx context.Context, householdID, feeID int64) (*domain.Payment, error)
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	Aggregate(ctx context.Context, filter domain.PaymentFilter) (domain.PaymentAggregate, error)
	Create(ctx context.Context, p domain.Payment) (domain.Payment, error)
	Update(ctx context.Context, p domain.Payment) (domain.Payment, error)
	SetVerified(ctx context.Context, id int64, verified bool) (domain.Payment, error)
	Delete(ctx context.Context, id int64) error
}

type householdLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Household, error)
}

type feeLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Fee, error)
}

type notifier interface {
	NotifyInTx(ctx context.Context, ev domain.Notification) (*domain.Notification, error)
	NotifyAfterCommit(ctx context.Context, ev domain.Notification, stored *domain.Notification)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type mutationRecorder interface {
	LedgerMutation(entity domain.EntityType, action domain.AuditAction)
}

// Service implements payment reconciliation and totals.
type Service struct {
	log        *slog.Logger
	payments   paymentRepo
	households householdLookup
	fees       feeLookup
	notifier   notifier
	audit      auditLogger
	tx         txManager
	metrics    mutationRecorder
	now        func() time.Time
}

// NewService creates a new payment service instance. metrics may be nil.
func NewService(
	logger *slog.Logger,
	payments paymentRepo,
	households householdLookup,
	fees feeLookup,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	metrics mutationRecorder,
) *Service {
	return &Service{
		log:        logger.With("service", "payment"),
		payments:   payments,
		households: households,
		fees:       fees,
		notifier:   notifier,
		audit:      audit,
		tx:         tx,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (s *Service) record(action domain.AuditAction) {
	if s.metrics != nil {
		s.metrics.LedgerMutation(domain.EntityTypePayment, action)
	}
}

// today is the current calendar date.
func (s *Service) today() time.Time {
	return domain.DateOf(s.now())
}
