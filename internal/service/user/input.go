package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

const (
	maxUsernameLen = 50
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt input limit
)

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Role     domain.UserRole
}

// Normalize trims whitespace and lowercases the email.
func (i CreateUserInput) Normalize() CreateUserInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FullName = strings.TrimSpace(i.FullName)
	if i.Role == "" {
		i.Role = domain.UserRoleUser
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validatePassword("password", i.Password)...)
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or USER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput replaces a user's profile. The password is not touched.
type UpdateUserInput struct {
	Username string
	Email    string
	FullName string
	Role     domain.UserRole
	Enabled  bool
}

// Normalize trims whitespace and lowercases the email.
func (i UpdateUserInput) Normalize() UpdateUserInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FullName = strings.TrimSpace(i.FullName)
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateUsername(i.Username)...)
	errs = append(errs, validateEmail(i.Email)...)
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or USER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateUsername(username string) []domain.FieldError {
	switch {
	case username == "":
		return []domain.FieldError{{Field: "username", Message: "required"}}
	case len(username) > maxUsernameLen:
		return []domain.FieldError{{Field: "username", Message: "too long"}}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}

func validatePassword(field, password string) []domain.FieldError {
	switch {
	case len(password) < minPasswordLen:
		return []domain.FieldError{{Field: field, Message: "must be at least 6 characters"}}
	case len(password) > maxPasswordLen:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}
