package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	FindFirstAdmin(ctx context.Context) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user management and administrator lookup.
type Service struct {
	log      *slog.Logger
	users    userRepo
	audit    auditLogger
	tx       txManager
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt cost
// used for new passwords.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditLogger,
	tx txManager,
	hashCost int,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		audit:    audit,
		tx:       tx,
		hashCost: hashCost,
	}
}
