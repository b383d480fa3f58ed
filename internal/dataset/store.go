package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// Store serves the catalog from memory. It implements repository.Catalog,
// repository.CatalogWriter and repository.Pinger.
//
// Every List call returns a freshly allocated slice; nested slices are shared
// and must be treated as read-only.
type Store struct {
	mu   sync.RWMutex
	snap *domain.Snapshot
}

// NewStore wraps a loaded snapshot. A nil snapshot yields an empty catalog.
func NewStore(snap *domain.Snapshot) *Store {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	return &Store{snap: snap}
}

// Ping always succeeds; the data is already in memory
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// ReplaceAll swaps the whole catalog atomically
func (s *Store) ReplaceAll(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgStoreReplaced, "counts", snap.Counts())
	return nil
}

func (s *Store) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.Crops, filter.Matches)
}

func (s *Store) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.snap.Crops {
		if s.snap.Crops[i].ID == id {
			crop := s.snap.Crops[i]
			return &crop, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrCropNotFound, id)
}

func (s *Store) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.Fish, filter.Matches)
}

func (s *Store) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.NPCs, nil)
}

// GetNPCByName matches the whole name case-insensitively; the first match in
// file order wins
func (s *Store) GetNPCByName(ctx context.Context, name string) (*domain.NPC, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FindNPCByName(s.snap.NPCs, name)
}

func (s *Store) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.Recipes, filter.Matches)
}

func (s *Store) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.MiningLocations, nil)
}

func (s *Store) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterSlice(ctx, s.snap.Bundles, filter.Matches)
}

// filterSlice copies the elements accepted by keep; a nil keep copies everything
func filterSlice[T any](ctx context.Context, in []T, keep func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
