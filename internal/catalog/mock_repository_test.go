package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Catalog
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockRepository) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockRepository) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fish), args.Error(1)
}

func (m *MockRepository) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NPC), args.Error(1)
}

func (m *MockRepository) GetNPCByName(ctx context.Context, name string) (*domain.NPC, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NPC), args.Error(1)
}

func (m *MockRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRepository) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MiningLocation), args.Error(1)
}

func (m *MockRepository) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bundle), args.Error(1)
}
