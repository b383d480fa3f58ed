package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/repository/repositorytest"
)

func newFixtureService() Service {
	return NewService(dataset.NewStore(repositorytest.Fixture()))
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = name(item)
	}
	return out
}

func TestService_ListsAreSorted(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	crops, err := svc.ListCrops(ctx, domain.CropFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ancient Fruit", "Corn", "Parsnip"}, names(crops, func(c domain.Crop) string { return c.Name }))

	fish, err := svc.ListFish(ctx, domain.FishFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Catfish", "Eel", "Pufferfish"}, names(fish, func(f domain.Fish) string { return f.Name }))

	recipes, err := svc.ListRecipes(ctx, domain.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fried Egg", "Spicy Eel", "Toast"}, names(recipes, func(r domain.Recipe) string { return r.Name }))

	mining, err := svc.ListMiningLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Skull Cavern", "The Mines"}, names(mining, func(m domain.MiningLocation) string { return m.Location }))
	require.Len(t, mining[1].Sections, 2)

	bundles, err := svc.ListBundles(ctx, domain.BundleFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pantry", "Pantry Room", "Vault"}, names(bundles, func(b domain.Bundle) string { return b.Room }))
}

func TestService_FiltersPassThrough(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	crops, err := svc.ListCrops(ctx, domain.NewCropFilter("Summer"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ancient Fruit", "Corn"}, names(crops, func(c domain.Crop) string { return c.Name }))

	fish, err := svc.ListFish(ctx, domain.NewFishFilter("Fall", "", "Ocean"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Eel"}, names(fish, func(f domain.Fish) string { return f.Name }))

	bundles, err := svc.ListBundles(ctx, domain.NewBundleFilter("Pantry"))
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "Spring Crops Bundle", bundles[0].Name)
}

func TestService_SortUsesLocaleCollation(t *testing.T) {
	snap := &domain.Snapshot{NPCs: []domain.NPC{
		{ID: "zed", Name: "Zed"},
		{ID: "evelyn", Name: "Évelyn"},
		{ID: "abigail", Name: "abigail"},
		{ID: "emily", Name: "Emily"},
	}}
	svc := NewService(dataset.NewStore(snap))

	npcs, err := svc.ListNPCs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"abigail", "Emily", "Évelyn", "Zed"}, names(npcs, func(n domain.NPC) string { return n.Name }))
}

func TestService_SortIsStableForEqualKeys(t *testing.T) {
	snap := &domain.Snapshot{Bundles: []domain.Bundle{
		{ID: "b2", Room: "Vault", Name: "Same"},
		{ID: "b1", Room: "Vault", Name: "Same"},
	}}
	svc := NewService(dataset.NewStore(snap))

	bundles, err := svc.ListBundles(context.Background(), domain.BundleFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b1"}, names(bundles, func(b domain.Bundle) string { return b.ID }))
}

func TestService_DoesNotReorderRepositorySlice(t *testing.T) {
	repo := new(MockRepository)
	shared := []domain.Crop{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}
	repo.On("ListCrops", mock.Anything, domain.CropFilter{}).Return(shared, nil)

	crops, err := NewService(repo).ListCrops(context.Background(), domain.CropFilter{})
	require.NoError(t, err)
	assert.Equal(t, "A", crops[0].Name)
	assert.Equal(t, "B", shared[0].Name)
}

func TestService_GetNPC(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	lower, err := svc.GetNPC(ctx, "abigail")
	require.NoError(t, err)
	upper, err := svc.GetNPC(ctx, "ABIGAIL")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)

	_, err = svc.GetNPC(ctx, "doesnotexist")
	assert.ErrorIs(t, err, domain.ErrNPCNotFound)
}

func TestService_GetCrop(t *testing.T) {
	svc := newFixtureService()

	crop, err := svc.GetCrop(context.Background(), "corn")
	require.NoError(t, err)
	assert.Equal(t, "Corn", crop.Name)

	_, err = svc.GetCrop(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

func TestService_PropagatesStoreErrors(t *testing.T) {
	repo := new(MockRepository)
	decodeErr := fmt.Errorf("%w: mining_locations.sections", domain.ErrDecode)
	repo.On("ListMiningLocations", mock.Anything).Return(nil, decodeErr)
	repo.On("ListRecipes", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)

	svc := NewService(repo)

	locations, err := svc.ListMiningLocations(context.Background())
	assert.Nil(t, locations)
	assert.ErrorIs(t, err, domain.ErrDecode)

	_, err = svc.ListRecipes(context.Background(), domain.RecipeFilter{})
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	repo.AssertExpectations(t)
}

func TestService_Search(t *testing.T) {
	svc := newFixtureService()
	ctx := context.Background()

	results, err := svc.Search(ctx, " EEL ")
	require.NoError(t, err)
	dinner := "Dinner"
	assert.Equal(t, []SearchResult{
		{ID: "spicy-eel", Name: "Spicy Eel", Type: ResultTypeRecipe, Category: &dinner},
		{ID: "eel", Name: "Eel", Type: ResultTypeFish},
	}, results)
}

func TestService_SearchShortQuery(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	for _, q := range []string{"", " ", "e", " e "} {
		results, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, results, q)
		assert.Empty(t, results, q)
	}
	repo.AssertNotCalled(t, "ListRecipes", mock.Anything, mock.Anything)
}

func TestService_SearchCapsEachGroup(t *testing.T) {
	snap := &domain.Snapshot{}
	for i := 7; i >= 1; i-- {
		snap.Crops = append(snap.Crops, domain.Crop{ID: fmt.Sprintf("crop-%d", i), Name: fmt.Sprintf("Crop %d", i)})
	}
	snap.Fish = []domain.Fish{{ID: "cropfish", Name: "Cropfish"}}
	svc := NewService(dataset.NewStore(snap))

	results, err := svc.Search(context.Background(), "crop")
	require.NoError(t, err)
	require.Len(t, results, 1+MaxResultsPerType)
	assert.Equal(t, ResultTypeFish, results[0].Type)
	assert.Equal(t, []string{"Crop 1", "Crop 2", "Crop 3", "Crop 4", "Crop 5"},
		names(results[1:], func(r SearchResult) string { return r.Name }))
}

func TestService_SearchFailsWhenAGroupFails(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRecipes", mock.Anything, mock.Anything).Return([]domain.Recipe{}, nil)
	repo.On("ListFish", mock.Anything, mock.Anything).Return(nil, domain.ErrDatabaseError)

	_, err := NewService(repo).Search(context.Background(), "eel")
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
}
