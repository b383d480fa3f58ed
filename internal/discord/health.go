package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	n := lastCommandNano.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// HandleHealth reports gateway connectivity and API reachability
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		apiReachable = h.bot.Client.Health(ctx) == nil
		cancel()
	}

	health := HealthStatus{
		Status:           HealthStatusHealthy,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
		APIReachable:     apiReachable,
	}

	code := http.StatusOK
	if !connected || !apiReachable {
		health.Status = HealthStatusDegraded
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(health)
}
