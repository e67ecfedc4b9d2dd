// Package fee implements the Fee repository using PostgreSQL.
package fee

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
	"id", "name", "type", "amount", "due_date", "description",
	"active", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	DueDate     time.Time `db:"due_date"`
	Description *string   `db:"description"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Fee {
	return domain.Fee{
		ID:          r.ID,
		Name:        r.Name,
		Type:        domain.FeeType(r.Type),
		Amount:      r.Amount,
		DueDate:     domain.DateOf(r.DueDate),
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides fee persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new fee repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a fee by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Fee, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a fee and locks its row for the enclosing transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Fee, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.Fee, error) {
	b := postgres.Builder().Select(columns...).From("fees").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "fee", id)
	}

	f := out.toDomain()
	return &f, nil
}

// GetByIDs returns the fees with the given ids. Missing ids are absent
// from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Fee, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	b := postgres.Builder().Select(columns...).From("fees").Where(sq.Eq{"id": ids})

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("get fees by ids: %w", err)
	}

	out := make([]domain.Fee, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// List returns fees matching the filter, ordered by due date then id.
func (r *Repo) List(ctx context.Context, filter domain.FeeFilter) ([]domain.Fee, error) {
	b := applyFilter(postgres.Builder().Select(columns...).From("fees"), filter).
		OrderBy("due_date", "id")

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}

	out := make([]domain.Fee, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Count returns the number of fees matching the filter.
func (r *Repo) Count(ctx context.Context, filter domain.FeeFilter) (int, error) {
	b := applyFilter(postgres.Builder().Select("count(*)").From("fees"), filter)

	var n int
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, b); err != nil {
		return 0, fmt.Errorf("count fees: %w", err)
	}
	return n, nil
}

func applyFilter(b sq.SelectBuilder, filter domain.FeeFilter) sq.SelectBuilder {
	if filter.ActiveOnly {
		b = b.Where(sq.Eq{"active": true})
	}
	if filter.Type != nil {
		b = b.Where(sq.Eq{"type": string(*filter.Type)})
	}
	if filter.DueFrom != nil {
		b = b.Where(sq.GtOrEq{"due_date": domain.DateOf(*filter.DueFrom)})
	}
	if filter.DueTo != nil {
		b = b.Where(sq.LtOrEq{"due_date": domain.DateOf(*filter.DueTo)})
	}
	if filter.DueBefore != nil {
		b = b.Where(sq.Lt{"due_date": domain.DateOf(*filter.DueBefore)})
	}
	return b
}

// Create inserts a fee and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, f domain.Fee) (domain.Fee, error) {
	b := postgres.Builder().Insert("fees").
		Columns("name", "type", "amount", "due_date", "description", "active").
		Values(f.Name, string(f.Type), f.Amount, domain.DateOf(f.DueDate), f.Description, f.Active).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Fee{}, postgres.MapError(err, "fee", 0)
	}
	return out.toDomain(), nil
}

// Update overwrites every mutable field of f.ID, including the active flag.
func (r *Repo) Update(ctx context.Context, f domain.Fee) (domain.Fee, error) {
	b := postgres.Builder().Update("fees").
		Set("name", f.Name).
		Set("type", string(f.Type)).
		Set("amount", f.Amount).
		Set("due_date", domain.DateOf(f.DueDate)).
		Set("description", f.Description).
		Set("active", f.Active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": f.ID}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Fee{}, postgres.MapError(err, "fee", f.ID)
	}
	return out.toDomain(), nil
}

// SetActive sets the active flag unconditionally and returns the stored record.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool) (domain.Fee, error) {
	b := postgres.Builder().Update("fees").
		Set("active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Fee{}, postgres.MapError(err, "fee", id)
	}
	return out.toDomain(), nil
}

// Delete removes the fee row together with its payments.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("fees").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "fee", id)
	}
	if n == 0 {
		return fmt.Errorf("fee %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// PurgeInactive hard-deletes inactive fees last modified before cutoff and
// returns the count.
func (r *Repo) PurgeInactive(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("fees").
			Where(sq.Eq{"active": false}).
			Where(sq.Lt{"updated_at": cutoff}))
	if err != nil {
		return 0, fmt.Errorf("purge inactive fees: %w", err)
	}
	return n, nil
}
