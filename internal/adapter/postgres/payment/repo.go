// Package payment implements the Payment repository using PostgreSQL.
package payment

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
	"id", "household_id", "fee_id", "payment_date", "amount", "amount_paid",
	"verified", "notes", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// qualified returns columns prefixed with the payments alias.
func qualified() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = "p." + c
	}
	return out
}

type row struct {
	ID          int64     `db:"id"`
	HouseholdID int64     `db:"household_id"`
	FeeID       int64     `db:"fee_id"`
	PaymentDate time.Time `db:"payment_date"`
	Amount      float64   `db:"amount"`
	AmountPaid  float64   `db:"amount_paid"`
	Verified    bool      `db:"verified"`
	Notes       *string   `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Payment {
	return domain.Payment{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		FeeID:       r.FeeID,
		PaymentDate: domain.DateOf(r.PaymentDate),
		Amount:      r.Amount,
		AmountPaid:  r.AmountPaid,
		Verified:    r.Verified,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type aggregateRow struct {
	Count         int     `db:"cnt"`
	VerifiedCount int     `db:"verified_cnt"`
	Total         float64 `db:"total"`
	Collected     float64 `db:"collected"`
}

// Repo provides payment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new payment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a payment by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a payment and locks its row for the enclosing transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.Payment, error) {
	b := postgres.Builder().Select(columns...).From("payments").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "payment", id)
	}

	p := out.toDomain()
	return &p, nil
}

// FindFirstByPair returns the lowest-id payment for the household and fee.
func (r *Repo) FindFirstByPair(ctx context.Context, householdID, feeID int64) (*domain.Payment, error) {
	b := postgres.Builder().Select(columns...).From("payments").
		Where(sq.Eq{"household_id": householdID, "fee_id": feeID}).
		OrderBy("id").
		Limit(1)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, fmt.Errorf("household %d, fee %d: %w", householdID, feeID, postgres.MapError(err, "payment", 0))
	}

	p := out.toDomain()
	return &p, nil
}

// List returns payments matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	b := applyFilter(postgres.Builder().Select(qualified()...).From("payments p"), filter)
	b = applyOrder(b, filter)

	var rows []row
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	out := make([]domain.Payment, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Aggregate returns the count and sums over payments matching the filter.
// Ordering and limit in the filter are ignored.
func (r *Repo) Aggregate(ctx context.Context, filter domain.PaymentFilter) (domain.PaymentAggregate, error) {
	b := applyFilter(postgres.Builder().Select(
		"count(*) AS cnt",
		"count(*) FILTER (WHERE p.verified) AS verified_cnt",
		"COALESCE(sum(p.amount), 0) AS total",
		"COALESCE(sum(p.amount_paid), 0) AS collected",
	).From("payments p"), filter)

	var out aggregateRow
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.PaymentAggregate{}, fmt.Errorf("aggregate payments: %w", err)
	}

	return domain.PaymentAggregate{
		Count:         out.Count,
		VerifiedCount: out.VerifiedCount,
		Total:         out.Total,
		Collected:     out.Collected,
	}, nil
}

func applyFilter(b sq.SelectBuilder, filter domain.PaymentFilter) sq.SelectBuilder {
	if filter.HouseholdID != nil {
		b = b.Where(sq.Eq{"p.household_id": *filter.HouseholdID})
	}
	if filter.FeeID != nil {
		b = b.Where(sq.Eq{"p.fee_id": *filter.FeeID})
	}
	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"p.payment_date": domain.DateOf(*filter.From)})
	}
	if filter.To != nil {
		b = b.Where(sq.LtOrEq{"p.payment_date": domain.DateOf(*filter.To)})
	}
	if filter.Verified != nil {
		b = b.Where(sq.Eq{"p.verified": *filter.Verified})
	}
	if filter.FeeType != nil {
		b = b.Where(sq.Expr("p.fee_id IN (SELECT id FROM fees WHERE type = ?)", string(*filter.FeeType)))
	}
	return b
}

func applyOrder(b sq.SelectBuilder, filter domain.PaymentFilter) sq.SelectBuilder {
	if filter.OrderNewest {
		b = b.OrderBy("p.payment_date DESC", "p.id DESC")
	} else {
		b = b.OrderBy("p.id")
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	return b
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a payment and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	b := postgres.Builder().Insert("payments").
		Columns("household_id", "fee_id", "payment_date", "amount", "amount_paid", "verified", "notes").
		Values(p.HouseholdID, p.FeeID, domain.DateOf(p.PaymentDate), p.Amount, p.AmountPaid, p.Verified, p.Notes).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Payment{}, postgres.MapError(err, "payment", 0)
	}
	return out.toDomain(), nil
}

// Update overwrites every mutable column of p.ID.
func (r *Repo) Update(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	b := postgres.Builder().Update("payments").
		Set("household_id", p.HouseholdID).
		Set("fee_id", p.FeeID).
		Set("payment_date", domain.DateOf(p.PaymentDate)).
		Set("amount", p.Amount).
		Set("amount_paid", p.AmountPaid).
		Set("verified", p.Verified).
		Set("notes", p.Notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Payment{}, postgres.MapError(err, "payment", p.ID)
	}
	return out.toDomain(), nil
}

// SetVerified sets the verified flag unconditionally.
func (r *Repo) SetVerified(ctx context.Context, id int64, verified bool) (domain.Payment, error) {
	b := postgres.Builder().Update("payments").
		Set("verified", verified).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return domain.Payment{}, postgres.MapError(err, "payment", id)
	}
	return out.toDomain(), nil
}

// Delete hard-deletes a payment.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.ExecAffected(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder().Delete("payments").Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "payment", id)
	}
	if n == 0 {
		return fmt.Errorf("payment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
