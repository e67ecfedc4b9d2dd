package notification

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// CreateInput holds the parameters for storing a notification.
type CreateInput struct {
	Title      string
	Message    string
	EntityType domain.EntityType
	EntityID   int64
	UserID     *int64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(i.Message) > domain.MaxNotificationMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 1000 characters"})
	}
	if !i.EntityType.IsNotifiable() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "must be FEE, HOUSEHOLD or PAYMENT"})
	}
	if i.UserID == nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
