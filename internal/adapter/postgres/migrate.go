package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// MigrationResult describes one applied or pending migration.
type MigrationResult struct {
	Version int64
	Source  string
	Applied bool
}

// newProvider opens a database/sql handle (goose requires *sql.DB) and builds
// a goose provider over migrations. The caller closes the returned db.
func newProvider(dsn string, migrations fs.FS) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, db, nil
}

// MigrateUp applies all pending migrations and returns the applied versions.
func MigrateUp(ctx context.Context, dsn string, migrations fs.FS) ([]MigrationResult, error) {
	provider, db, err := newProvider(dsn, migrations)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	out := make([]MigrationResult, 0, len(results))
	for _, r := range results {
		out = append(out, MigrationResult{
			Version: r.Source.Version,
			Source:  r.Source.Path,
			Applied: true,
		})
	}
	return out, nil
}

// MigrationStatus reports every known migration and whether it is applied.
func MigrationStatus(ctx context.Context, dsn string, migrations fs.FS) ([]MigrationResult, error) {
	provider, db, err := newProvider(dsn, migrations)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	out := make([]MigrationResult, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationResult{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
