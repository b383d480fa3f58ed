package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// MockCatalogService is a mock implementation of catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCatalogService) GetCrop(ctx context.Context, id string) (*domain.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockCatalogService) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fish), args.Error(1)
}

func (m *MockCatalogService) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NPC), args.Error(1)
}

func (m *MockCatalogService) GetNPC(ctx context.Context, name string) (*domain.NPC, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NPC), args.Error(1)
}

func (m *MockCatalogService) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockCatalogService) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MiningLocation), args.Error(1)
}

func (m *MockCatalogService) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bundle), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query string) ([]catalog.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchResult), args.Error(1)
}
