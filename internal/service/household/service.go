package household

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type householdRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Household, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Household, error)
	List(ctx context.Context, filter domain.HouseholdFilter) ([]domain.Household, error)
	Create(ctx context.Context, h domain.Household) (domain.Household, error)
	Update(ctx context.Context, h domain.Household) (domain.Household, error)
	SetActive(ctx context.Context, id int64, active bool) (domain.Household, error)
	Delete(ctx context.Context, id int64) error
	PurgeInactive(ctx context.Context, cutoff time.Time) (int64, error)
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

// Service implements the household registry.
type Service struct {
	log        *slog.Logger
	households householdRepo
	notifier   notifier
	audit      auditLogger
	tx         txManager
	metrics    mutationRecorder
	now        func() time.Time
}

// NewService creates a new household service instance. metrics may be nil.
func NewService(
	logger *slog.Logger,
	households householdRepo,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	metrics mutationRecorder,
) *Service {
	return &Service{
		log:        logger.With("service", "household"),
		households: households,
		notifier:   notifier,
		audit:      audit,
		tx:         tx,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (s *Service) record(action domain.AuditAction) {
	if s.metrics != nil {
		s.metrics.LedgerMutation(domain.EntityTypeHousehold, action)
	}
}
