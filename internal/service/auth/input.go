package auth

import (
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// LoginInput holds credentials for a password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds the fields of a self-service registration.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// ChangePasswordInput holds the caller's old and new password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string
	Username string
	Role     domain.UserRole
}
