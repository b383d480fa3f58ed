package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/ValleyCompanion_Go/internal/bootstrap"
	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Replace the catalog database contents with a data directory [dir]"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.CatalogBackend == config.BackendMemory {
		return fmt.Errorf("CATALOG_BACKEND=%s is loaded from files on start; nothing to seed", cfg.CatalogBackend)
	}

	dir := cfg.DataDir
	if len(args) > 0 {
		dir = args[0]
	}

	// Seeding is explicit here, not a side effect of opening
	cfg.SeedOnStart = false
	cat, err := bootstrap.OpenCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer cat.Close()

	PrintInfo("Seeding %s catalog from %s...", cfg.CatalogBackend, dir)
	if err := bootstrap.SyncCatalog(ctx, cat.Writer, dir); err != nil {
		return err
	}
	PrintSuccess("Catalog seeded")
	return nil
}

type ValidateDataCommand struct{}

func (c *ValidateDataCommand) Name() string {
	return "validate-data"
}

func (c *ValidateDataCommand) Description() string {
	return "Check a data directory against the catalog schemas [dir]"
}

func (c *ValidateDataCommand) Run(ctx context.Context, args []string) error {
	dir := config.DefaultDataDir
	if len(args) > 0 {
		dir = args[0]
	}

	PrintHeader("Validating " + dir)
	snap, err := dataset.NewLoader().LoadDir(ctx, dir)
	if err != nil {
		return err
	}

	counts := snap.Counts()
	for _, entity := range slices.Sorted(maps.Keys(counts)) {
		PrintInfo("%-17s %d", entity, counts[entity])
	}
	PrintSuccess("Data is valid")
	return nil
}
