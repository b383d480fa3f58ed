package repository

import (
	"context"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// Catalog defines the read interface over the game data collections.
// Filters carry field-specific matching rules (see domain filter types) and every
// implementation must apply them the same way. Ordering of results is not part of
// this contract; the catalog service sorts.
type Catalog interface {
	ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error)
	GetCropByID(ctx context.Context, id string) (*domain.Crop, error)
	ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error)
	ListNPCs(ctx context.Context) ([]domain.NPC, error)
	GetNPCByName(ctx context.Context, name string) (*domain.NPC, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error)
	ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error)
	ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error)
}

// CatalogWriter replaces the stored catalog. Only seeding tooling uses it.
type CatalogWriter interface {
	ReplaceAll(ctx context.Context, snapshot *domain.Snapshot) error
}

// Pinger is implemented by stores that can report connectivity for readiness checks
type Pinger interface {
	Ping(ctx context.Context) error
}
