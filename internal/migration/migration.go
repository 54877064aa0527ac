package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"cedralab/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createReportsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create statistics_reports table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createReportsTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS statistics_reports (
			id TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			length INTEGER NOT NULL,
			bins INTEGER NOT NULL,
			chi_squared DOUBLE PRECISION NOT NULL,
			discrepancy DOUBLE PRECISION NOT NULL,
			payload JSONB NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_reports_fingerprint ON statistics_reports(fingerprint)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_computed_at ON statistics_reports(computed_at DESC)`,
	}

	for _, idx := range indexes {
		if _, err := db.ExecContext(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
