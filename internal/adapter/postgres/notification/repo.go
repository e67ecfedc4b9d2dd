// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

var columns = []string{
	"id", "title", "message", "entity_type", "entity_id", "created_at", "is_read", "user_id",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Message    string    `db:"message"`
	EntityType string    `db:"entity_type"`
	EntityID   *int64    `db:"entity_id"`
	CreatedAt  time.Time `db:"created_at"`
	IsRead     bool      `db:"is_read"`
	UserID     *int64    `db:"user_id"`
}

func (r row) toDomain() domain.Notification {
	n := domain.Notification{
		ID:         r.ID,
		Title:      r.Title,
		Message:    r.Message,
		EntityType: domain.EntityType(r.EntityType),
		CreatedAt:  r.CreatedAt,
		Read:       r.IsRead,
		UserID:     r.UserID,
	}
	if r.EntityID != nil {
		n.EntityID = *r.EntityID
	}
	return n
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores a notification. created_at and is_read come from column defaults.
func (r *Repo) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	b := postgres.Builder().Insert("notifications").
		Columns("title", "message", "entity_type", "entity_id", "user_id").
		Values(n.Title, n.Message, string(n.EntityType), n.EntityID, n.UserID).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Notification{}, postgres.MapError(err, "notification", 0)
	}
	return out.toDomain(), nil
}

// GetByID returns a notification by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	b := postgres.Builder().Select(columns...).From("notifications").Where(sq.Eq{"id": id})

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	n := out.toDomain()
	return &n, nil
}

// ListUnread returns unread notifications, newest first.
func (r *Repo) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	return r.list(ctx, sq.Eq{"is_read": false}, 0)
}

// ListByUser returns notifications addressed to the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, 0)
}

// ListRecent returns up to limit notifications, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Notification, error) {
	return r.list(ctx, nil, limit)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, limit int) ([]domain.Notification, error) {
	b := postgres.Builder().Select(columns...).From("notifications").OrderBy("created_at DESC", "id DESC")
	if where != nil {
		b = b.Where(where)
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]domain.Notification, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountUnread returns the number of unread notifications.
func (r *Repo) CountUnread(ctx context.Context) (int, error) {
	b := postgres.Builder().Select("count(*)").From("notifications").Where(sq.Eq{"is_read": false})

	var n int
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, b); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// MarkRead flags a notification as read. Marking twice is a no-op.
func (r *Repo) MarkRead(ctx context.Context, id int64) (domain.Notification, error) {
	b := postgres.Builder().Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Notification{}, postgres.MapError(err, "notification", id)
	}
	return out.toDomain(), nil
}

// MarkAllRead flags every unread notification as read and returns the count.
func (r *Repo) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Update("notifications").Set("is_read", true).Where(sq.Eq{"is_read": false}))
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

// Delete removes a notification.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("notifications").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if n == 0 {
		return fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
