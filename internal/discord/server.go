package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer exposes the bot's health endpoint for container probes
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bot: bot,
	}

	mux.HandleFunc("GET "+PathHealth, srv.HandleHealth)
	return srv
}

// Handler returns the routed handler
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start serves in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord health server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord health server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord health server shutdown failed", "error", err)
	}
}
