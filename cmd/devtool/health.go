package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

const slowResponseThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running API [url] (default $API_URL)"
}

func (c *HealthCheckCommand) Run(ctx context.Context, args []string) error {
	url := ""
	if len(args) > 0 {
		url = args[0]
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		url = cfg.APIURL
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", url))

	api := client.NewAPIClient(url)
	api.MaxRetries = 0

	start := time.Now()
	if err := api.Health(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	duration := time.Since(start)

	version, err := api.Version(ctx)
	if err != nil {
		return fmt.Errorf("version check failed: %w", err)
	}
	PrintInfo("Version %s, catalog backend %s", version.Version, version.Backend)

	if duration > slowResponseThreshold {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}
