package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ValleyCompanion_Go/internal/bootstrap"
	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closeLog, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings(cfg.CatalogBackend)
	if err != nil {
		// Defaults cover every variable, so a missing one is only worth a warning
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.OpenCatalog(ctx, cfg)
	if err != nil {
		_ = closeLog()
		return err
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		Backend:        cfg.CatalogBackend,
	}, catalog.NewService(cat.Repo), cat.Pinger)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Closers: []bootstrap.Closer{
			{Name: "log file", Close: closeLog},
			{Name: "catalog", Close: cat.Close},
		},
	})

	return err
}
