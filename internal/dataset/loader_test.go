package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// writeDataset writes all six data files into a temp dir; files not named in
// overrides are written as empty arrays
func writeDataset(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := []string{
		config.DataFileCrops, config.DataFileFish, config.DataFileNPCs,
		config.DataFileRecipes, config.DataFileMining, config.DataFileBundles,
	}
	for _, name := range files {
		content, ok := overrides[name]
		if !ok {
			content = "[]"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoader_LoadDir_ShippedData(t *testing.T) {
	snap, err := NewLoader().LoadDir(context.Background(), filepath.Join("..", "..", "data"))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		domain.EntityCrop:           13,
		domain.EntityFish:           12,
		domain.EntityNPC:            8,
		domain.EntityRecipe:         9,
		domain.EntityMiningLocation: 3,
		domain.EntityBundle:         10,
	}, snap.Counts())

	var ghost *domain.Fish
	for i := range snap.Fish {
		if snap.Fish[i].Name == "Ghostfish" {
			ghost = &snap.Fish[i]
		}
	}
	require.NotNil(t, ghost)
	assert.Equal(t, domain.DefaultFishSeason, ghost.Season)
	assert.Equal(t, domain.DefaultFishWeather, ghost.Weather)
	assert.Equal(t, "The Mines", ghost.Location)
	require.NotNil(t, ghost.Time)
	assert.Equal(t, domain.DefaultFishTime, *ghost.Time)
	require.NotNil(t, ghost.Difficulty)
	assert.Equal(t, DefaultFishDifficulty, *ghost.Difficulty)

	for _, b := range snap.Bundles {
		if b.Name == "Blacksmith's Bundle" {
			assert.Equal(t, "boiler-room-blacksmiths-bundle", b.ID)
		}
	}
}

func TestLoader_LoadDir_Normalization(t *testing.T) {
	dir := writeDataset(t, map[string]string{
		config.DataFileCrops: `[
			{"name": "Parsnip", "season": "Spring", "growthTime": 4, "sellPrice": 35, "seedPrice": 20},
			{"name": "", "season": "Spring", "growthTime": 1}
		]`,
		config.DataFileFish: `[
			{"name": "Carp", "description": "A common pond fish."},
			{"name": "Mystery", "description": ""},
			{"description": "Nameless"}
		]`,
		config.DataFileRecipes: `[
			{"name": "Fried Egg", "category": "Breakfast", "ingredients": [{"item": "Egg", "quantity": 1}], "buffs": [], "source": "Starter"},
			{"name": "Toast", "ingredients": [{"item": "Bread", "quantity": 1}]}
		]`,
		config.DataFileNPCs: `[{"name": "Linus", "birthday": "Winter 3", "location": "Tent"}]`,
	})

	snap, err := NewLoader().LoadDir(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, snap.Crops, 1)
	assert.Equal(t, "parsnip", snap.Crops[0].ID)
	require.NotNil(t, snap.Crops[0].Description)
	assert.Equal(t, "", *snap.Crops[0].Description)

	require.Len(t, snap.Fish, 1)
	carp := snap.Fish[0]
	assert.Equal(t, "carp", carp.ID)
	assert.Equal(t, "All", carp.Season)
	assert.Equal(t, "Any", carp.Weather)
	assert.Equal(t, "Ocean", carp.Location)

	require.Len(t, snap.Recipes, 2)
	assert.Equal(t, "Breakfast", *snap.Recipes[0].Description)
	assert.Nil(t, snap.Recipes[0].Buffs)
	assert.Equal(t, "", *snap.Recipes[1].Description)

	require.Len(t, snap.NPCs, 1)
	assert.NotNil(t, snap.NPCs[0].Loves)
	assert.Empty(t, snap.NPCs[0].Loves)
}

func TestLoader_LoadDir_Errors(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		dir := writeDataset(t, map[string]string{
			config.DataFileCrops: `[
				{"name": "Corn", "season": "Summer", "growthTime": 14},
				{"id": "corn", "name": "Corn (Giant)", "season": "Fall", "growthTime": 14}
			]`,
		})
		_, err := NewLoader().LoadDir(context.Background(), dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateID))
		assert.Contains(t, err.Error(), `"corn"`)
	})

	t.Run("schema violation", func(t *testing.T) {
		dir := writeDataset(t, map[string]string{
			config.DataFileCrops: `[{"name": "Corn", "season": "Summer", "growthTime": "fourteen"}]`,
		})
		_, err := NewLoader().LoadDir(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
		assert.Contains(t, err.Error(), config.DataFileCrops)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := writeDataset(t, nil)
		require.NoError(t, os.Remove(filepath.Join(dir, config.DataFileBundles)))

		_, err := NewLoader().LoadDir(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}
