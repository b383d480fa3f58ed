package catalog

import (
	"context"
	"errors"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
	"github.com/osse101/ValleyCompanion_Go/internal/metrics"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
)

// Service defines the read operations over the game catalog.
// Every list is sorted by name with English collation (mining locations by
// location, bundles by room then name). Not-found lookups return
// domain.ErrNPCNotFound or domain.ErrCropNotFound.
type Service interface {
	ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error)
	GetCrop(ctx context.Context, id string) (*domain.Crop, error)
	ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error)
	ListNPCs(ctx context.Context) ([]domain.NPC, error)
	GetNPC(ctx context.Context, name string) (*domain.NPC, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error)
	ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type service struct {
	repo repository.Catalog
}

// NewService creates a catalog service over any repository.Catalog
func NewService(repo repository.Catalog) Service {
	return &service{repo: repo}
}

// observe records the outcome of one repository call and logs failures.
// Not-found is an expected outcome and is not logged.
func observe(ctx context.Context, entity string, err error) {
	metrics.RecordCatalogQuery(entity, err)
	if err == nil || errors.Is(err, domain.ErrNPCNotFound) || errors.Is(err, domain.ErrCropNotFound) {
		return
	}
	log := logger.FromContext(ctx)
	if errors.Is(err, domain.ErrDecode) {
		log.Error(LogMsgDecodeFailed, "entity", entity, "error", err)
		return
	}
	log.Error(LogMsgQueryFailed, "entity", entity, "error", err)
}

func (s *service) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	crops, err := s.repo.ListCrops(ctx, filter)
	observe(ctx, domain.EntityCrop, err)
	if err != nil {
		return nil, err
	}
	// Results may be shared with a cache; sort a private copy
	crops = cloneSlice(crops)
	sortByName(crops, func(c domain.Crop) string { return c.Name })
	return crops, nil
}

func (s *service) GetCrop(ctx context.Context, id string) (*domain.Crop, error) {
	crop, err := s.repo.GetCropByID(ctx, id)
	observe(ctx, domain.EntityCrop, err)
	return crop, err
}

func (s *service) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	fish, err := s.repo.ListFish(ctx, filter)
	observe(ctx, domain.EntityFish, err)
	if err != nil {
		return nil, err
	}
	fish = cloneSlice(fish)
	sortByName(fish, func(f domain.Fish) string { return f.Name })
	return fish, nil
}

func (s *service) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	npcs, err := s.repo.ListNPCs(ctx)
	observe(ctx, domain.EntityNPC, err)
	if err != nil {
		return nil, err
	}
	npcs = cloneSlice(npcs)
	sortByName(npcs, func(n domain.NPC) string { return n.Name })
	return npcs, nil
}

func (s *service) GetNPC(ctx context.Context, name string) (*domain.NPC, error) {
	npc, err := s.repo.GetNPCByName(ctx, name)
	observe(ctx, domain.EntityNPC, err)
	return npc, err
}

func (s *service) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	recipes, err := s.repo.ListRecipes(ctx, filter)
	observe(ctx, domain.EntityRecipe, err)
	if err != nil {
		return nil, err
	}
	recipes = cloneSlice(recipes)
	sortByName(recipes, func(r domain.Recipe) string { return r.Name })
	return recipes, nil
}

func (s *service) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	locations, err := s.repo.ListMiningLocations(ctx)
	observe(ctx, domain.EntityMiningLocation, err)
	if err != nil {
		return nil, err
	}
	locations = cloneSlice(locations)
	sortByName(locations, func(m domain.MiningLocation) string { return m.Location })
	return locations, nil
}

func (s *service) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	bundles, err := s.repo.ListBundles(ctx, filter)
	observe(ctx, domain.EntityBundle, err)
	if err != nil {
		return nil, err
	}
	bundles = cloneSlice(bundles)
	sortByName(bundles,
		func(b domain.Bundle) string { return b.Room },
		func(b domain.Bundle) string { return b.Name })
	return bundles, nil
}
