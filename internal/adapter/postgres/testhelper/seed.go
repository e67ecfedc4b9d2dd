package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an enabled USER account with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an enabled ADMIN account.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Username:     "user-" + suffix,
		PasswordHash: "$2a$04$seedseedseedseedseedseOq0ZxVZ8lM8bQJ6qH8n3b6m2q9G1u.",
		Role:         role,
		Email:        "user-" + suffix + "@example.com",
		FullName:     "Test User " + suffix,
		Enabled:      true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash, role, email, full_name, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		user.Username, user.PasswordHash, string(user.Role), user.Email, user.FullName, user.Enabled,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return user
}

// SeedHousehold creates an active household with 3 members.
func SeedHousehold(t *testing.T, pool *pgxpool.Pool) domain.Household {
	t.Helper()

	suffix := uniqueSuffix()
	h := domain.Household{
		OwnerName:  "Owner " + suffix,
		Address:    "Apt " + suffix,
		NumMembers: 3,
		Active:     true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO households (owner_name, address, num_members, active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		h.OwnerName, h.Address, h.NumMembers, h.Active,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed household: %v", err)
	}

	return h
}

// SeedFee creates an active MANDATORY fee with the given amount, due in 30 days.
func SeedFee(t *testing.T, pool *pgxpool.Pool, amount float64) domain.Fee {
	t.Helper()
	return SeedFeeDue(t, pool, amount, domain.DateOf(time.Now()).AddDate(0, 0, 30))
}

// SeedFeeDue creates an active MANDATORY fee with an explicit due date.
func SeedFeeDue(t *testing.T, pool *pgxpool.Pool, amount float64, due time.Time) domain.Fee {
	t.Helper()

	f := domain.Fee{
		Name:    "Fee " + uniqueSuffix(),
		Type:    domain.FeeTypeMandatory,
		Amount:  amount,
		DueDate: domain.DateOf(due),
		Active:  true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO fees (name, type, amount, due_date, active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		f.Name, string(f.Type), f.Amount, f.DueDate, f.Active,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed fee: %v", err)
	}

	return f
}

// SeedPayment creates an unverified payment of amount for the pair, dated today.
func SeedPayment(t *testing.T, pool *pgxpool.Pool, householdID, feeID int64, amount float64) domain.Payment {
	t.Helper()

	p := domain.Payment{
		HouseholdID: householdID,
		FeeID:       feeID,
		PaymentDate: domain.DateOf(time.Now()),
		Amount:      amount,
		AmountPaid:  amount,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO payments (household_id, fee_id, payment_date, amount, amount_paid, verified)
		 VALUES ($1, $2, $3, $4, $5, FALSE)
		 RETURNING id, created_at, updated_at`,
		p.HouseholdID, p.FeeID, p.PaymentDate, p.Amount, p.AmountPaid,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: seed payment: %v", err)
	}

	return p
}
