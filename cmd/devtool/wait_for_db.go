package main

import (
	"context"
	"fmt"
	"time"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct {
	// interval overrides waitRetryInterval in tests
	interval time.Duration
}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for the catalog database to accept connections (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interval := c.interval
	if interval == 0 {
		interval = waitRetryInterval
	}

	for i := 0; i < waitMaxRetries; i++ {
		db, _, err := openDatabase(ctx, cfg)
		if err == nil {
			db.Close()
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}
