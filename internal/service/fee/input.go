package fee

import (
	"strings"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

const maxNameLen = 255

// FeeInput carries every field of a fee for create and update.
type FeeInput struct {
	Name        string
	Type        domain.FeeType
	Amount      float64
	DueDate     time.Time
	Description *string
	Active      bool
}

// Validate checks all fields and collects all errors.
func (i FeeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be MANDATORY or VOLUNTARY"})
	}
	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply writes the input onto f.
func (i FeeInput) apply(f domain.Fee) domain.Fee {
	f.Name = strings.TrimSpace(i.Name)
	f.Type = i.Type
	f.Amount = i.Amount
	f.DueDate = domain.DateOf(i.DueDate)
	f.Description = i.Description
	f.Active = i.Active
	return f
}

func feeChanges(before, after domain.Fee) map[string]any {
	changes := map[string]any{}
	if before.Name != after.Name {
		changes["name"] = map[string]any{"old": before.Name, "new": after.Name}
	}
	if before.Type != after.Type {
		changes["type"] = map[string]any{"old": before.Type.String(), "new": after.Type.String()}
	}
	if before.Amount != after.Amount {
		changes["amount"] = map[string]any{"old": before.Amount, "new": after.Amount}
	}
	if !before.DueDate.Equal(after.DueDate) {
		changes["due_date"] = map[string]any{
			"old": before.DueDate.Format(time.DateOnly),
			"new": after.DueDate.Format(time.DateOnly),
		}
	}
	if before.Active != after.Active {
		changes["active"] = map[string]any{"old": before.Active, "new": after.Active}
	}
	return changes
}
