package domain

// LifecycleState is the soft-delete state shared by households and fees.
// Removed is never stored: it is realised as row deletion.
type LifecycleState string

const (
	LifecycleActive   LifecycleState = "ACTIVE"
	LifecycleInactive LifecycleState = "INACTIVE"
	LifecycleRemoved  LifecycleState = "REMOVED"
)

func (s LifecycleState) String() string { return string(s) }

// LifecycleOf maps a stored active flag onto its lifecycle state.
func LifecycleOf(active bool) LifecycleState {
	if active {
		return LifecycleActive
	}
	return LifecycleInactive
}

// NextOnDelete returns the state a record moves to when a delete is requested:
// Active becomes Inactive, Inactive becomes Removed. Removed stays Removed.
func (s LifecycleState) NextOnDelete() LifecycleState {
	switch s {
	case LifecycleActive:
		return LifecycleInactive
	default:
		return LifecycleRemoved
	}
}
