package domain

import "time"

// MaxNotificationMessageLen is the storage limit for a notification message.
const MaxNotificationMessageLen = 1000

// Notification is an administrative message produced by a ledger mutation.
// CreatedAt and Read are owned by the store: CreatedAt is stamped on insert,
// Read starts false.
type Notification struct {
	ID         int64
	Title      string
	Message    string
	EntityType EntityType
	EntityID   int64
	CreatedAt  time.Time
	Read       bool
	UserID     *int64
}

// AuditRecord logs a mutation event on a ledger entity.
type AuditRecord struct {
	ID         int64
	ActorID    *int64
	EntityType EntityType
	EntityID   int64
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
