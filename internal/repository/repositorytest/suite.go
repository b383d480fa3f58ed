package repositorytest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
)

// Store is what the suite needs from an implementation under test
type Store interface {
	repository.Catalog
	repository.CatalogWriter
}

// RunCatalogSuite seeds newStore() with Fixture and checks filter semantics,
// lookups and round-trip fidelity. newStore must return an empty, migrated store.
func RunCatalogSuite(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	seeded := func(t *testing.T) Store {
		t.Helper()
		s := newStore(t)
		require.NoError(t, s.ReplaceAll(ctx, Fixture()))
		return s
	}

	t.Run("round trip", func(t *testing.T) {
		s := seeded(t)
		want := Fixture()
		opts := cmpopts.EquateEmpty()

		crops, err := s.ListCrops(ctx, domain.CropFilter{})
		require.NoError(t, err)
		if diff := cmp.Diff(want.Crops, crops, opts); diff != "" {
			t.Errorf("crops mismatch (-want +got):\n%s", diff)
		}

		fish, err := s.ListFish(ctx, domain.FishFilter{})
		require.NoError(t, err)
		if diff := cmp.Diff(want.Fish, fish, opts); diff != "" {
			t.Errorf("fish mismatch (-want +got):\n%s", diff)
		}

		npcs, err := s.ListNPCs(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want.NPCs, npcs, opts); diff != "" {
			t.Errorf("npcs mismatch (-want +got):\n%s", diff)
		}

		recipes, err := s.ListRecipes(ctx, domain.RecipeFilter{})
		require.NoError(t, err)
		if diff := cmp.Diff(want.Recipes, recipes, opts); diff != "" {
			t.Errorf("recipes mismatch (-want +got):\n%s", diff)
		}

		mining, err := s.ListMiningLocations(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(want.MiningLocations, mining, opts); diff != "" {
			t.Errorf("mining mismatch (-want +got):\n%s", diff)
		}

		bundles, err := s.ListBundles(ctx, domain.BundleFilter{})
		require.NoError(t, err)
		if diff := cmp.Diff(want.Bundles, bundles, opts); diff != "" {
			t.Errorf("bundles mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("crop season containment", func(t *testing.T) {
		s := seeded(t)

		crops, err := s.ListCrops(ctx, domain.NewCropFilter("Fall"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"corn", "ancient-fruit"}, cropIDs(crops))

		crops, err = s.ListCrops(ctx, domain.NewCropFilter(domain.AllSeasons))
		require.NoError(t, err)
		assert.Len(t, crops, 3)

		crops, err = s.ListCrops(ctx, domain.NewCropFilter("fall"))
		require.NoError(t, err)
		assert.Empty(t, crops, "season match is case-sensitive")

		crops, err = s.ListCrops(ctx, domain.NewCropFilter("%"))
		require.NoError(t, err)
		assert.Empty(t, crops, "wildcard characters match literally")
	})

	t.Run("fish filters compose", func(t *testing.T) {
		s := seeded(t)

		fish, err := s.ListFish(ctx, domain.NewFishFilter("Fall", "Rain", "Ocean"))
		require.NoError(t, err)
		require.Len(t, fish, 1)
		assert.Equal(t, "eel", fish[0].ID)

		fish, err = s.ListFish(ctx, domain.NewFishFilter(domain.AllSeasons, domain.AnyWeather, "River"))
		require.NoError(t, err)
		require.Len(t, fish, 1)
		assert.Equal(t, "catfish", fish[0].ID)

		fish, err = s.ListFish(ctx, domain.NewFishFilter("Winter", "", ""))
		require.NoError(t, err)
		assert.Empty(t, fish)
	})

	t.Run("npc lookup ignores case", func(t *testing.T) {
		s := seeded(t)

		npc, err := s.GetNPCByName(ctx, "ABIGAIL")
		require.NoError(t, err)
		assert.Equal(t, "abigail", npc.ID)
		assert.Equal(t, []string{"Amethyst", "Pufferfish"}, npc.Loves)

		_, err = s.GetNPCByName(ctx, "Abi")
		assert.True(t, errors.Is(err, domain.ErrNPCNotFound), "partial names do not match")
	})

	t.Run("npc lookup folds non-ascii names", func(t *testing.T) {
		s := newStore(t)
		snap := Fixture()
		snap.NPCs = append(snap.NPCs, domain.NPC{ID: "evelyn", Name: "Évelyn", Loves: []string{"Beet"}})
		require.NoError(t, s.ReplaceAll(ctx, snap))

		for _, name := range []string{"Évelyn", "évelyn", "ÉVELYN", "éVELYN"} {
			npc, err := s.GetNPCByName(ctx, name)
			require.NoError(t, err, name)
			assert.Equal(t, "evelyn", npc.ID, name)
		}

		_, err := s.GetNPCByName(ctx, "Evelyn")
		assert.True(t, errors.Is(err, domain.ErrNPCNotFound), "accents are not stripped")
	})

	t.Run("crop by id", func(t *testing.T) {
		s := seeded(t)

		crop, err := s.GetCropByID(ctx, "corn")
		require.NoError(t, err)
		assert.Equal(t, 150, crop.SeedPriceOrZero())

		_, err = s.GetCropByID(ctx, "starfruit")
		assert.True(t, errors.Is(err, domain.ErrCropNotFound))
	})

	t.Run("recipe category", func(t *testing.T) {
		s := seeded(t)

		recipes, err := s.ListRecipes(ctx, domain.NewRecipeFilter("Dinner"))
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "spicy-eel", recipes[0].ID)

		recipes, err = s.ListRecipes(ctx, domain.NewRecipeFilter(domain.AllCategories))
		require.NoError(t, err)
		assert.Len(t, recipes, 3)
	})

	t.Run("bundle room is exact", func(t *testing.T) {
		s := seeded(t)

		bundles, err := s.ListBundles(ctx, domain.NewBundleFilter("Pantry"))
		require.NoError(t, err)
		require.Len(t, bundles, 1)
		assert.Equal(t, "pantry-spring-crops-bundle", bundles[0].ID)

		bundles, err = s.ListBundles(ctx, domain.NewBundleFilter(domain.AllRooms))
		require.NoError(t, err)
		assert.Len(t, bundles, 3)
	})

	t.Run("replace all discards previous data", func(t *testing.T) {
		s := seeded(t)

		smaller := Fixture()
		smaller.Crops = smaller.Crops[:1]
		smaller.Bundles = nil
		require.NoError(t, s.ReplaceAll(ctx, smaller))

		crops, err := s.ListCrops(ctx, domain.CropFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"parsnip"}, cropIDs(crops))

		bundles, err := s.ListBundles(ctx, domain.BundleFilter{})
		require.NoError(t, err)
		assert.Empty(t, bundles)
	})
}

func cropIDs(crops []domain.Crop) []string {
	ids := make([]string, len(crops))
	for i, c := range crops {
		ids[i] = c.ID
	}
	return ids
}
