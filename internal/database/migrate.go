package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations for one dialect
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator builds a goose provider over the embedded migrations of the dialect
func NewMigrator(db *sql.DB, dialect string) (*Migrator, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(migrationFiles, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration
func (m *Migrator) Up(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"direction", r.Direction,
			"duration", r.Duration)
	}
	return results, err
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) (*goose.MigrationResult, error) {
	return m.provider.Down(ctx)
}

// Status reports every known migration and whether it is applied
func (m *Migrator) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return m.provider.Status(ctx)
}

// Migrate brings the schema of db up to date
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	m, err := NewMigrator(db, dialect)
	if err != nil {
		return err
	}
	_, err = m.Up(ctx)
	return err
}
