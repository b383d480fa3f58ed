package main

import (
	"context"
	"fmt"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps, config, data, db)"
}

func (c *DoctorCommand) Run(ctx context.Context, _ []string) error {
	PrintHeader("Running Doctor...")

	hasError := false
	check := func(name string, err error) {
		if err != nil {
			PrintError("%s check failed: %v", name, err)
			hasError = true
			return
		}
		PrintSuccess("%s OK", name)
	}

	check("Dependencies", (&CheckDepsCommand{}).Run(ctx, nil))

	cfg, err := loadConfig()
	check("Configuration", err)
	if err != nil {
		return fmt.Errorf("doctor found issues")
	}

	warnings, err := config.ValidateEnvWithWarnings(cfg.CatalogBackend)
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	check("Environment", err)

	check("Data", (&ValidateDataCommand{}).Run(ctx, []string{cfg.DataDir}))

	if cfg.CatalogBackend != config.BackendMemory {
		db, _, err := openDatabase(ctx, cfg)
		if err == nil {
			db.Close()
		}
		check("Database", err)
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
