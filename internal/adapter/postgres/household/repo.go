// Package household implements the Household repository using PostgreSQL.
package household

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
	"id", "owner_name", "address", "num_members", "phone_number", "email",
	"active", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// row mirrors the households table for scany.
type row struct {
	ID          int64     `db:"id"`
	OwnerName   string    `db:"owner_name"`
	Address     string    `db:"address"`
	NumMembers  int       `db:"num_members"`
	PhoneNumber *string   `db:"phone_number"`
	Email       *string   `db:"email"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Household {
	return domain.Household{
		ID:          r.ID,
		OwnerName:   r.OwnerName,
		Address:     r.Address,
		NumMembers:  r.NumMembers,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides household persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new household repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a household by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Household, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a household and locks its row until the enclosing
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Household, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.Household, error) {
	b := postgres.Builder().Select(columns...).From("households").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "household", id)
	}

	h := out.toDomain()
	return &h, nil
}

// GetByIDs returns the households with the given ids. Missing ids are absent
// from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Household, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	b := postgres.Builder().Select(columns...).From("households").Where(sq.Eq{"id": ids})

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("get households by ids: %w", err)
	}

	out := make([]domain.Household, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// List returns households matching the filter, ordered by id.
func (r *Repo) List(ctx context.Context, filter domain.HouseholdFilter) ([]domain.Household, error) {
	b := postgres.Builder().Select(columns...).From("households").OrderBy("id")

	if filter.ActiveOnly {
		b = b.Where(sq.Eq{"active": true})
	}
	if filter.OwnerName != nil {
		b = b.Where(sq.ILike{"owner_name": postgres.Contains(*filter.OwnerName)})
	}
	if filter.Address != nil {
		b = b.Where(sq.ILike{"address": postgres.Contains(*filter.Address)})
	}

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}

	out := make([]domain.Household, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts a household and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, h domain.Household) (domain.Household, error) {
	b := postgres.Builder().Insert("households").
		Columns("owner_name", "address", "num_members", "phone_number", "email", "active").
		Values(h.OwnerName, h.Address, h.NumMembers, h.PhoneNumber, h.Email, h.Active).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Household{}, postgres.MapError(err, "household", 0)
	}
	return out.toDomain(), nil
}

// Update overwrites every mutable field of h.ID, including the active flag.
func (r *Repo) Update(ctx context.Context, h domain.Household) (domain.Household, error) {
	b := postgres.Builder().Update("households").
		Set("owner_name", h.OwnerName).
		Set("address", h.Address).
		Set("num_members", h.NumMembers).
		Set("phone_number", h.PhoneNumber).
		Set("email", h.Email).
		Set("active", h.Active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": h.ID}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Household{}, postgres.MapError(err, "household", h.ID)
	}
	return out.toDomain(), nil
}

// SetActive sets the active flag unconditionally and returns the stored record.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool) (domain.Household, error) {
	b := postgres.Builder().Update("households").
		Set("active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Household{}, postgres.MapError(err, "household", id)
	}
	return out.toDomain(), nil
}

// Delete removes the household row. Its payments go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("households").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "household", id)
	}
	if n == 0 {
		return fmt.Errorf("household %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// PurgeInactive hard-deletes inactive households last modified before cutoff and
// returns the count.
func (r *Repo) PurgeInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("households").
			Where(sq.Eq{"active": false}).
			Where(sq.Lt{"updated_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("purge inactive households: %w", err)
	}
	return n, nil
}

// CountActive returns the number of active households.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	b := postgres.Builder().Select("count(*)").From("households").Where(sq.Eq{"active": true})

	var n int
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, b); err != nil {
		return 0, fmt.Errorf("count active households: %w", err)
	}
	return n, nil
}
