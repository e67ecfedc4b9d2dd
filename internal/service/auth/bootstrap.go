package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/internal/service/user"
)

// Bootstrap seeds a default administrator and a default user when the store
// holds no users. It reports whether anything was created.
func (s *Service) Bootstrap(ctx context.Context, cfg config.BootstrapConfig) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("auth.Bootstrap count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	seeds := []user.CreateUserInput{
		{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
			Email:    cfg.AdminEmail,
			FullName: "Administrator",
			Role:     domain.UserRoleAdmin,
		},
		{
			Username: cfg.UserUsername,
			Password: cfg.UserPassword,
			Email:    cfg.UserEmail,
			FullName: "Default User",
			Role:     domain.UserRoleUser,
		},
	}
	for _, seed := range seeds {
		u, err := s.accounts.CreateUser(ctx, seed)
		if err != nil {
			return false, fmt.Errorf("auth.Bootstrap create %s: %w", seed.Username, err)
		}
		s.log.InfoContext(ctx, "default user seeded",
			slog.Int64("user_id", u.ID),
			slog.String("username", u.Username),
			slog.String("role", u.Role.String()),
		)
	}
	return true, nil
}
