package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/auth"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/user"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// accountManager owns user creation and password changes.
type accountManager interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}

type jwtManager interface {
	GenerateAccessToken(userID int64, username, role string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements login, registration and token checks.
type Service struct {
	log      *slog.Logger
	users    userRepo
	accounts accountManager
	jwt      jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	accounts accountManager,
	jwt jwtManager,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		accounts: accounts,
		jwt:      jwt,
	}
}
