package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/database"
)

type CreateDBCommand struct{}

func (c *CreateDBCommand) Name() string {
	return "create-db"
}

func (c *CreateDBCommand) Description() string {
	return "Create the postgres catalog database if missing and migrate it"
}

func (c *CreateDBCommand) Run(ctx context.Context, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.CatalogBackend != config.BackendPostgres {
		return fmt.Errorf("create-db needs CATALOG_BACKEND=%s, got %s", config.BackendPostgres, cfg.CatalogBackend)
	}

	// The maintenance database always exists
	adminConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, adminConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
	} else {
		PrintInfo("Creating database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database created")
	}

	db, dialect, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, dialect); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}
