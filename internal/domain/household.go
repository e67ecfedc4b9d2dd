package domain

import (
	"fmt"
	"time"
)

// Household is a registered residence that owes fees.
type Household struct {
	ID          int64
	OwnerName   string
	Address     string
	NumMembers  int
	PhoneNumber *string
	Email       *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// State returns the household's lifecycle state.
func (h *Household) State() LifecycleState {
	return LifecycleOf(h.Active)
}

// DisplayName names the household by owner, falling back to its id.
func (h *Household) DisplayName() string {
	if h.OwnerName != "" {
		return h.OwnerName
	}
	return fmt.Sprintf("household #%d", h.ID)
}

// HouseholdFilter selects households for listing and search.
// Owner name and address match case-insensitively as substrings.
type HouseholdFilter struct {
	OwnerName  *string
	Address    *string
	ActiveOnly bool
}
