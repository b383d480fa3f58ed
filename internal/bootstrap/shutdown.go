package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component that drains in-flight work before returning
type Stopper interface {
	Stop(ctx context.Context) error
}

// Closer is a named resource released after the server has stopped
type Closer struct {
	Name  string
	Close func() error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  Stopper
	Closers []Closer
}

// GracefulShutdown stops the HTTP server first so no new request reaches a
// closed store, then releases resources in reverse order of acquisition.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgClosingResources)
	for i := len(components.Closers) - 1; i >= 0; i-- {
		c := components.Closers[i]
		if c.Close == nil {
			continue
		}
		if err := c.Close(); err != nil {
			slog.Error(c.Name+LogMsgCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
