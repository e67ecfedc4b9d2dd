package fee

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type feeRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Fee, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Fee, error)
	List(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error)
	Create(ctx context.Context, f domain.Fee) (domain.Fee, error)
	Update(ctx context.Context, f domain.Fee) (domain.Fee, error)
	SetActive(ctx context.Context, id int64, active bool) (domain.Fee, error)
	Delete(ctx context.Context, id int64) error
	PurgeInactive(ctx context.Context, cutoff time.Time) (int64, error)
}

// notifier addresses ledger notifications. NotifyInTx runs inside the
// mutation transaction; NotifyAfterCommit runs once it is durable.
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

// Service implements the fee lifecycle.
type Service struct {
	log      *slog.Logger
	fees     feeRepo
	notifier notifier
	audit    auditLogger
	tx       txManager
	metrics  mutationRecorder
	now      func() time.Time
}

// NewService creates a new fee service instance. metrics may be nil.
func NewService(
	logger *slog.Logger,
	fees feeRepo,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	metrics mutationRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "fee"),
		fees:     fees,
		notifier: notifier,
		audit:    audit,
		tx:       tx,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (s *Service) record(action domain.AuditAction) {
	if s.metrics != nil {
		s.metrics.LedgerMutation(domain.EntityTypeFee, action)
	}
}
