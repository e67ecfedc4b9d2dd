package domain

import "time"

// Fee is a charge households owe, either mandatory or voluntary.
type Fee struct {
	ID          int64
	Name        string
	Type        FeeType
	Amount      float64
	DueDate     time.Time
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// State returns the fee's lifecycle state.
func (f *Fee) State() LifecycleState {
	return LifecycleOf(f.Active)
}

// IsOverdue reports whether the fee's due date is strictly before today's date.
// A fee due today is not overdue.
func (f *Fee) IsOverdue(today time.Time) bool {
	return DateOf(f.DueDate).Before(DateOf(today))
}

// FeeFilter selects fees for listing. Zero value lists every fee.
type FeeFilter struct {
	Type       *FeeType
	DueFrom    *time.Time
	DueTo      *time.Time
	DueBefore  *time.Time // strict upper bound, used for overdue
	ActiveOnly bool
}
