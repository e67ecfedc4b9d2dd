package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
	"github.com/heartmarshall/bluemoon-fees/pkg/ctxutil"
)

// GetUser returns a user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// ListUsers returns every user ordered by id.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// CreateUser registers a user with a bcrypt-hashed password. A taken username
// or email fails with domain.ErrConflict.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser hash password: %w", err)
	}

	var created domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureAvailable(txCtx, input.Username, input.Email); err != nil {
			return err
		}

		u, err := s.users.Create(txCtx, domain.User{
			Username:     input.Username,
			PasswordHash: string(hash),
			Role:         input.Role,
			Email:        input.Email,
			FullName:     input.FullName,
			Enabled:      true,
		})
		if err != nil {
			return conflictOr(err)
		}
		created = u

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeUser,
			EntityID:   u.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"username": u.Username,
				"role":     u.Role.String(),
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", created.ID),
		slog.String("role", created.Role.String()),
	)
	return &created, nil
}

// UpdateUser replaces a user's username, email, full name, role and enabled
// flag. Changing the username or email to one held by another user fails with
// domain.ErrConflict.
func (s *Service) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		username, email := "", ""
		if input.Username != current.Username {
			username = input.Username
		}
		if input.Email != current.Email {
			email = input.Email
		}
		if err := s.ensureAvailable(txCtx, username, email); err != nil {
			return err
		}

		next := *current
		next.Username = input.Username
		next.Email = input.Email
		next.FullName = input.FullName
		next.Role = input.Role
		next.Enabled = input.Enabled

		u, err := s.users.Update(txCtx, next)
		if err != nil {
			return conflictOr(err)
		}
		updated = u

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    userChanges(*current, u),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.Int64("user_id", id))
	return &updated, nil
}

// SetRole changes the role of a user.
func (s *Service) SetRole(ctx context.Context, id int64, role domain.UserRole) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be ADMIN or USER")
	}
	return s.patch(ctx, "user.SetRole", id, func(u *domain.User) { u.Role = role })
}

// SetEnabled enables or disables a user. Disabled users cannot log in.
func (s *Service) SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error) {
	return s.patch(ctx, "user.SetEnabled", id, func(u *domain.User) { u.Enabled = enabled })
}

func (s *Service) patch(ctx context.Context, op string, id int64, apply func(*domain.User)) (*domain.User, error) {
	var updated domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		next := *current
		apply(&next)

		u, err := s.users.Update(txCtx, next)
		if err != nil {
			return err
		}
		updated = u

		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Action:     domain.AuditActionUpdate,
			Changes:    userChanges(*current, u),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.Int64("user_id", id),
		slog.String("role", updated.Role.String()),
		slog.Bool("enabled", updated.Enabled),
	)
	return &updated, nil
}

// DeleteUser removes a user. Notifications addressed to the user are kept
// with no addressee.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Delete(txCtx, id); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ActorID:    actorFromCtx(ctx),
			EntityType: domain.EntityTypeUser,
			EntityID:   id,
			Action:     domain.AuditActionDelete,
		})
	})
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}

// CountUsers returns the number of users.
func (s *Service) CountUsers(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}

// ensureAvailable fails with domain.ErrConflict when username or email is
// already taken. Empty values are not checked.
func (s *Service) ensureAvailable(ctx context.Context, username, email string) error {
	if username != "" {
		taken, err := s.users.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("username %q already exists: %w", username, domain.ErrConflict)
		}
	}
	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("email %q already exists: %w", email, domain.ErrConflict)
		}
	}
	return nil
}

// conflictOr turns a unique violation lost to a concurrent writer into a
// conflict; other errors pass through.
func conflictOr(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	}
	return err
}

func actorFromCtx(ctx context.Context) *int64 {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}

func userChanges(before, after domain.User) map[string]any {
	changes := map[string]any{}
	if before.Username != after.Username {
		changes["username"] = map[string]any{"old": before.Username, "new": after.Username}
	}
	if before.Email != after.Email {
		changes["email"] = map[string]any{"old": before.Email, "new": after.Email}
	}
	if before.FullName != after.FullName {
		changes["full_name"] = map[string]any{"old": before.FullName, "new": after.FullName}
	}
	if before.Role != after.Role {
		changes["role"] = map[string]any{"old": before.Role.String(), "new": after.Role.String()}
	}
	if before.Enabled != after.Enabled {
		changes["enabled"] = map[string]any{"old": before.Enabled, "new": after.Enabled}
	}
	return changes
}
