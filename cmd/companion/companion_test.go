package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/planner"
	"github.com/osse101/ValleyCompanion_Go/internal/repository/repositorytest"
	"github.com/osse101/ValleyCompanion_Go/internal/server"
	"github.com/osse101/ValleyCompanion_Go/internal/storage"
)

// newTestApp wires the CLI to the fixture catalog and an in-memory state store
func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	store := dataset.NewStore(repositorytest.Fixture())
	srv := httptest.NewServer(server.NewRouter(server.Options{Backend: "memory"}, catalog.NewService(store), store))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	a := newApp(out)
	a.cfg = &config.Config{}
	a.api = client.NewAPIClient(srv.URL)
	a.api.RetryDelay = time.Millisecond
	a.kv = storage.NewMemoryKV()
	return a, out
}

func execute(a *app, out *bytes.Buffer, args ...string) (string, error) {
	out.Reset()
	root := newRootCmd(a)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLookupCommands(t *testing.T) {
	a, out := newTestApp(t)

	t.Run("crops table", func(t *testing.T) {
		got, err := execute(a, out, "crops", "--season", "Summer")
		require.NoError(t, err)
		assert.Contains(t, got, "Corn")
		assert.Contains(t, got, "Ancient Fruit")
		assert.NotContains(t, got, "Parsnip")
	})

	t.Run("crop json", func(t *testing.T) {
		got, err := execute(a, out, "crop", "parsnip", "-o", "json")
		require.NoError(t, err)

		var crop domain.Crop
		require.NoError(t, json.Unmarshal([]byte(got), &crop))
		assert.Equal(t, "Parsnip", crop.Name)
		require.NotNil(t, crop.SellPrice)
		assert.Equal(t, 35, *crop.SellPrice)
	})

	t.Run("unknown crop", func(t *testing.T) {
		_, err := execute(a, out, "crop", "starfruit")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
	})

	t.Run("fish yaml uses api field names", func(t *testing.T) {
		got, err := execute(a, out, "fish", "--weather", "Rain", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, got, "name: Catfish")
		assert.Contains(t, got, "name: Eel")
		assert.NotContains(t, got, "Pufferfish")
	})

	t.Run("npc by name", func(t *testing.T) {
		got, err := execute(a, out, "npcs", "--name", "ABIGAIL", "-o", "json")
		require.NoError(t, err)

		var npc domain.NPC
		require.NoError(t, json.Unmarshal([]byte(got), &npc))
		assert.Equal(t, "abigail", npc.ID)
	})

	t.Run("unknown npc", func(t *testing.T) {
		_, err := execute(a, out, "npcs", "--name", "nobody")
		assert.ErrorIs(t, err, domain.ErrNPCNotFound)
	})

	t.Run("bundles by room", func(t *testing.T) {
		got, err := execute(a, out, "bundles", "--room", "Vault")
		require.NoError(t, err)
		assert.Contains(t, got, "2,500g Bundle")
		assert.NotContains(t, got, "Spring Crops Bundle")
	})

	t.Run("empty result", func(t *testing.T) {
		got, err := execute(a, out, "recipes", "--category", "Lunch")
		require.NoError(t, err)
		assert.Contains(t, got, "No results.")
	})

	t.Run("search", func(t *testing.T) {
		got, err := execute(a, out, "search", "eel")
		require.NoError(t, err)
		assert.Contains(t, got, "Spicy Eel")
		assert.Contains(t, got, "Eel")
	})

	t.Run("mining", func(t *testing.T) {
		got, err := execute(a, out, "mining", "-o", "json")
		require.NoError(t, err)

		var locations []domain.MiningLocation
		require.NoError(t, json.Unmarshal([]byte(got), &locations))
		assert.Len(t, locations, 2)
	})

	t.Run("bad output format", func(t *testing.T) {
		_, err := execute(a, out, "crops", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown output format "xml"`)
	})
}

func TestPlanCommands(t *testing.T) {
	a, out := newTestApp(t)

	_, err := execute(a, out, "plan", "add", "parsnip", "--qty", "3")
	require.NoError(t, err)

	got, err := execute(a, out, "plan", "add", "ancient-fruit")
	require.NoError(t, err)
	assert.Contains(t, got, "Planned 1 x Ancient Fruit")

	got, err = execute(a, out, "plan", "show", "-o", "json")
	require.NoError(t, err)

	var summary planner.Summary
	require.NoError(t, json.Unmarshal([]byte(got), &summary))
	require.Len(t, summary.Items, 2)
	assert.Equal(t, "parsnip", summary.Items[0].CropID)
	assert.Equal(t, 3, summary.Items[0].Quantity)
	assert.Equal(t, planner.Totals{Investment: 60, Revenue: 655, NetProfit: 595}, summary.Totals)

	t.Run("remote pricing matches local", func(t *testing.T) {
		got, err := execute(a, out, "plan", "show", "--remote", "-o", "json")
		require.NoError(t, err)

		var remote planner.Summary
		require.NoError(t, json.Unmarshal([]byte(got), &remote))
		assert.Equal(t, summary.Totals, remote.Totals)
	})

	t.Run("table footer", func(t *testing.T) {
		got, err := execute(a, out, "plan", "show")
		require.NoError(t, err)
		assert.Contains(t, got, "Net profit 595g")
	})

	t.Run("set and remove", func(t *testing.T) {
		_, err := execute(a, out, "plan", "set", "parsnip", "10")
		require.NoError(t, err)

		got, err := execute(a, out, "plan", "set", "corn", "2")
		require.NoError(t, err)
		assert.Contains(t, got, "corn is not in the plan")

		_, err = execute(a, out, "plan", "remove", "ancient-fruit")
		require.NoError(t, err)

		p, err := planner.NewRepository(a.kv).Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, p.Len())
		assert.Equal(t, 10, p.Quantity("parsnip"))
	})

	t.Run("invalid quantity", func(t *testing.T) {
		_, err := execute(a, out, "plan", "set", "parsnip", "lots")
		assert.Error(t, err)

		_, err = execute(a, out, "plan", "add", "parsnip", "--qty", "0")
		assert.Error(t, err)
	})

	t.Run("unknown crop is not added", func(t *testing.T) {
		_, err := execute(a, out, "plan", "add", "starfruit")
		assert.ErrorIs(t, err, domain.ErrCropNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		_, err := execute(a, out, "plan", "clear")
		require.NoError(t, err)

		got, err := execute(a, out, "plan", "show")
		require.NoError(t, err)
		assert.Contains(t, got, "No results.")
	})
}

func TestFavoritesCommands(t *testing.T) {
	a, out := newTestApp(t)

	got, err := execute(a, out, "favorites", "toggle", "spicy-eel")
	require.NoError(t, err)
	assert.Contains(t, got, "Added spicy-eel to favorites")

	_, err = execute(a, out, "fav", "toggle", "toast")
	require.NoError(t, err)

	got, err = execute(a, out, "favorites", "toggle", "toast", "-o", "json")
	require.NoError(t, err)
	var res toggleResult
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	assert.Equal(t, toggleResult{RecipeID: "toast", Favorite: false}, res)

	got, err = execute(a, out, "favorites", "list", "-o", "json")
	require.NoError(t, err)
	var recipes []domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(got), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "spicy-eel", recipes[0].ID)

	got, err = execute(a, out, "recipes", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, got, "Spicy Eel")
	assert.NotContains(t, got, "Fried Egg")
}
