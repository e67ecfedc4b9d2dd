package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/internal/config"
	"github.com/heartmarshall/bluemoon-fees/migrations"
)

// dsnEnv points the tests at an existing database instead of a container.
const dsnEnv = "TEST_DATABASE_DSN"

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a migrated ledger database shared by every
// test in the process. The database is TEST_DATABASE_DSN when set, otherwise
// a PostgreSQL container started on first use. The pool is closed via
// t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = prepareDatabase()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             sharedDSN,
		MaxConns:        8,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		t.Fatalf("testhelper: failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		ctr, err := tcpostgres.Run(ctx, "postgres:17-alpine",
			tcpostgres.WithDatabase("ledger"),
			tcpostgres.WithUsername("ledger"),
			tcpostgres.WithPassword("ledger"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			return "", fmt.Errorf("start postgres container: %w", err)
		}
		if dsn, err = ctr.ConnectionString(ctx, "sslmode=disable"); err != nil {
			return "", fmt.Errorf("container dsn: %w", err)
		}
	}

	if _, err := postgres.MigrateUp(ctx, dsn, migrations.FS); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}
