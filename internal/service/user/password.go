package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// ChangePassword replaces the user's password after checking the old one.
// A mismatched old password fails with domain.ErrInvalidCredential.
func (s *Service) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if errs := validatePassword("new_password", newPassword); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return fmt.Errorf("old password is incorrect: %w", domain.ErrInvalidCredential)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("user.ChangePassword hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", id))
	return nil
}

// FindAdmin returns the first enabled ADMIN user. It fails with
// domain.ErrPreconditionFailed when none exists.
func (s *Service) FindAdmin(ctx context.Context) (*domain.User, error) {
	admin, err := s.users.FindFirstAdmin(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no enabled ADMIN user: %w", domain.ErrPreconditionFailed)
		}
		return nil, fmt.Errorf("user.FindAdmin: %w", err)
	}
	return admin, nil
}
