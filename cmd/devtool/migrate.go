package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/database"
	"github.com/osse101/ValleyCompanion_Go/internal/database/sqlite"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage catalog schema migrations (up, down, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, dialect, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := database.NewMigrator(db, dialect)
	if err != nil {
		return err
	}

	switch args[0] {
	case "up":
		results, err := m.Up(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			PrintSuccess("Schema is up to date")
			return nil
		}
		for _, r := range results {
			PrintSuccess("Applied %d (%s)", r.Source.Version, r.Duration.Round(time.Millisecond))
		}
		return nil
	case "down":
		r, err := m.Down(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Rolled back %d", r.Source.Version)
		return nil
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader(fmt.Sprintf("Migrations (%s)", dialect))
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("  %5d  %-8s %s\n", s.Source.Version, s.State, applied)
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// openDatabase opens the configured catalog database without migrating it
func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, string, error) {
	var (
		db      *sql.DB
		dialect string
		err     error
	)
	switch cfg.CatalogBackend {
	case config.BackendPostgres:
		dialect = database.DialectPostgres
		PrintInfo("Connecting to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
		db, err = sql.Open("pgx", cfg.GetDBConnString())
	case config.BackendSQLite:
		dialect = database.DialectSQLite
		PrintInfo("Opening %s", cfg.SQLitePath)
		db, err = sql.Open(sqlite.DriverName, cfg.SQLitePath)
	default:
		return nil, "", fmt.Errorf("CATALOG_BACKEND=%s has no database; use %s or %s",
			cfg.CatalogBackend, config.BackendPostgres, config.BackendSQLite)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("%s: %w", database.ErrMsgFailedToPingDatabase, err)
	}
	return db, dialect, nil
}
