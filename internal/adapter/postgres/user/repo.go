// Package user implements the User repository using PostgreSQL.
package user

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
	"id", "username", "password_hash", "role", "email", "full_name",
	"enabled", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Enabled      bool      `db:"enabled"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		Email:        r.Email,
		FullName:     r.FullName,
		Enabled:      r.Enabled,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by login name.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, 0)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, 0)
}

// FindFirstAdmin returns the enabled ADMIN with the lowest id.
func (r *Repo) FindFirstAdmin(ctx context.Context) (*domain.User, error) {
	b := postgres.Builder().Select(columns...).From("users").
		Where(sq.Eq{"role": string(domain.UserRoleAdmin), "enabled": true}).
		OrderBy("id").
		Limit(1)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "admin user", 0)
	}

	u := out.toDomain()
	return &u, nil
}

func (r *Repo) getBy(ctx context.Context, where sq.Eq, id int64) (*domain.User, error) {
	b := postgres.Builder().Select(columns...).From("users").Where(where)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := out.toDomain()
	return &u, nil
}

// List returns every user ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	b := postgres.Builder().Select(columns...).From("users").OrderBy("id")

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ExistsByUsername reports whether a user with the login name exists.
func (r *Repo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, sq.Eq{"username": username})
}

// ExistsByEmail reports whether a user with the email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, sq.Eq{"email": email})
}

func (r *Repo) exists(ctx context.Context, where sq.Eq) (bool, error) {
	b := postgres.Builder().Select("count(*) > 0").From("users").Where(where)

	var ok bool
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &ok, b); err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return ok, nil
}

// Count returns the number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &n,
		postgres.Builder().Select("count(*)").From("users")); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a user and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	b := postgres.Builder().Insert("users").
		Columns("username", "password_hash", "role", "email", "full_name", "enabled").
		Values(u.Username, u.PasswordHash, string(u.Role), u.Email, u.FullName, u.Enabled).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.User{}, postgres.MapError(err, "user", 0)
	}
	return out.toDomain(), nil
}

// Update overwrites profile, role and enabled flag. The password hash is untouched.
func (r *Repo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	b := postgres.Builder().Update("users").
		Set("username", u.Username).
		Set("email", u.Email).
		Set("full_name", u.FullName).
		Set("role", string(u.Role)).
		Set("enabled", u.Enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": u.ID}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.ID)
	}
	return out.toDomain(), nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Update("users").
			Set("password_hash", hash).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a user. Notifications addressed to the user keep a NULL addressee.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("users").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
