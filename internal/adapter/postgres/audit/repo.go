// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

type row struct {
	ID         int64          `db:"id"`
	ActorID    *int64         `db:"actor_id"`
	EntityType string         `db:"entity_type"`
	EntityID   int64          `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         r.ID,
		ActorID:    r.ActorID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	b := postgres.Builder().Insert("audit_log").
		Columns("actor_id", "entity_type", "entity_id", "action", "changes").
		Values(record.ActorID, string(record.EntityType), record.EntityID, string(record.Action), changes).
		Suffix("RETURNING id, actor_id, entity_type, entity_id, action, changes, created_at")

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.EntityID)
	}
	return out.toDomain(), nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, newest first,
// limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	b := postgres.Builder().Select(columns...).From("audit_log").
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		records[i] = rw.toDomain()
	}
	return records, nil
}
