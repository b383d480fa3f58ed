package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
	"github.com/osse101/ValleyCompanion_Go/internal/repository/repositorytest"
	"github.com/osse101/ValleyCompanion_Go/internal/server"
)

// MockRoundTripper implements http.RoundTripper for intercepting Discord API calls
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a command handler to a fixture-backed API and a Discord
// session whose HTTP calls are captured instead of sent.
type TestContext struct {
	Server    *httptest.Server
	APIClient *client.APIClient
	Session   *discordgo.Session

	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	store := dataset.NewStore(repositorytest.Fixture())
	srv := httptest.NewServer(server.NewRouter(server.Options{}, catalog.NewService(store), store))
	t.Cleanup(srv.Close)

	c := client.NewAPIClient(srv.URL)
	c.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	tc := &TestContext{Server: srv, APIClient: c, Session: session}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: tc.capture}}
	return tc
}

func (tc *TestContext) capture(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if req.Body != nil {
		switch req.Method {
		case http.MethodPost:
			var body discordgo.InteractionResponse
			if json.NewDecoder(req.Body).Decode(&body) == nil {
				tc.responses = append(tc.responses, &body)
			}
		case http.MethodPatch:
			var body discordgo.WebhookEdit
			if json.NewDecoder(req.Body).Decode(&body) == nil {
				tc.edits = append(tc.edits, &body)
			}
		}
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEdit returns the final edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.edits) == 0 {
		t.Fatal("no response edit captured")
	}
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the single embed of the final edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	if edit.Embeds == nil || len(*edit.Embeds) != 1 {
		t.Fatalf("expected one embed, got %+v", edit)
	}
	return (*edit.Embeds)[0]
}

// Interaction builds a slash command interaction with string options
func Interaction(name string, opts map[string]string) *discordgo.InteractionCreate {
	var options []*discordgo.ApplicationCommandInteractionDataOption
	for k, v := range opts {
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  k,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: v,
		})
	}
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}
