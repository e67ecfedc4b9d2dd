package household

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

const (
	maxOwnerLen   = 255
	maxAddressLen = 500
	maxPhoneLen   = 20
)

// HouseholdInput carries every field of a household for create and update.
type HouseholdInput struct {
	OwnerName   string
	Address     string
	NumMembers  int
	PhoneNumber *string
	Email       *string
	Active      bool
}

// Validate checks all fields and collects all errors.
func (i HouseholdInput) Validate() error {
	var errs []domain.FieldError

	owner := strings.TrimSpace(i.OwnerName)
	if owner == "" {
		errs = append(errs, domain.FieldError{Field: "owner_name", Message: "required"})
	} else if len(owner) > maxOwnerLen {
		errs = append(errs, domain.FieldError{Field: "owner_name", Message: "too long"})
	}

	address := strings.TrimSpace(i.Address)
	if address == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "required"})
	} else if len(address) > maxAddressLen {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}

	if i.NumMembers < 0 {
		errs = append(errs, domain.FieldError{Field: "num_members", Message: "must not be negative"})
	}
	if i.PhoneNumber != nil && len(*i.PhoneNumber) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phone_number", Message: "too long"})
	}
	if i.Email != nil && *i.Email != "" {
		if _, err := mail.ParseAddress(*i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i HouseholdInput) apply(h domain.Household) domain.Household {
	h.OwnerName = strings.TrimSpace(i.OwnerName)
	h.Address = strings.TrimSpace(i.Address)
	h.NumMembers = i.NumMembers
	h.PhoneNumber = i.PhoneNumber
	h.Email = i.Email
	h.Active = i.Active
	return h
}

func householdChanges(before, after domain.Household) map[string]any {
	changes := map[string]any{}
	if before.OwnerName != after.OwnerName {
		changes["owner_name"] = map[string]any{"old": before.OwnerName, "new": after.OwnerName}
	}
	if before.Address != after.Address {
		changes["address"] = map[string]any{"old": before.Address, "new": after.Address}
	}
	if before.NumMembers != after.NumMembers {
		changes["num_members"] = map[string]any{"old": before.NumMembers, "new": after.NumMembers}
	}
	if before.Active != after.Active {
		changes["active"] = map[string]any{"old": before.Active, "new": after.Active}
	}
	return changes
}
