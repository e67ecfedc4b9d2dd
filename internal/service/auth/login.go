package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/user"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

// Login authenticates a user by username and password and issues an access
// token. Unknown users, wrong passwords and disabled accounts fail with
// domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Enabled {
		return nil, fmt.Errorf("account disabled: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Username, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", u.ID))

	return &LoginResult{Token: token, Username: u.Username, Role: u.Role}, nil
}

// Register creates a USER account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	u, err := s.accounts.CreateUser(ctx, user.CreateUserInput{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     domain.UserRoleUser,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	return u, nil
}

// ChangePassword changes the authenticated caller's password.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.accounts.ChangePassword(ctx, userID, input.OldPassword, input.NewPassword)
}

// Check resolves an access token to the current principal. The role and
// enabled flag are read from the store, so a demoted or disabled user loses
// access before the token expires.
func (s *Service) Check(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrUnauthorized
		}
		return domain.Principal{}, fmt.Errorf("auth.Check: %w", err)
	}
	if !u.Enabled {
		return domain.Principal{}, fmt.Errorf("account disabled: %w", domain.ErrUnauthorized)
	}

	return domain.Principal{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Enabled:  u.Enabled,
	}, nil
}
