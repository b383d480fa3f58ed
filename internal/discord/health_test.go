package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
)

func TestHandleHealth(t *testing.T) {
	tc := SetupTestContext(t)

	tests := []struct {
		name      string
		dataReady bool
		client    *client.APIClient
		code      int
		status    string
	}{
		{"healthy", true, tc.APIClient, http.StatusOK, HealthStatusHealthy},
		{"gateway down", false, tc.APIClient, http.StatusServiceUnavailable, HealthStatusDegraded},
		{"api unreachable", true, client.NewAPIClient("http://127.0.0.1:1"), http.StatusServiceUnavailable, HealthStatusDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := discordgo.New("Bot test-token")
			require.NoError(t, err)
			session.DataReady = tt.dataReady
			tt.client.MaxRetries = 0

			srv := NewHTTPServer("0", &Bot{Session: session, Client: tt.client})
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, PathHealth, nil))

			assert.Equal(t, tt.code, rec.Code)
			var body HealthStatus
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.dataReady, body.Connected)
		})
	}
}
