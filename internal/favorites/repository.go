package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/ValleyCompanion_Go/internal/storage"
)

// StorageKey is the key favorites are saved under, as a JSON array of ids
const StorageKey = "favorites"

// Repository loads and saves a Set through a storage.KV
type Repository struct {
	kv storage.KV
}

// NewRepository creates a repository over kv
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Load reads the saved favorites. Nothing saved yields an empty set.
func (r *Repository) Load(ctx context.Context) (*Set, error) {
	data, err := r.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return NewSet(ids...), nil
}

// Save replaces the saved favorites
func (r *Repository) Save(ctx context.Context, s *Set) error {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Toggle flips one id and saves the result in a single step
func (r *Repository) Toggle(ctx context.Context, id string) (bool, error) {
	s, err := r.Load(ctx)
	if err != nil {
		return false, err
	}
	on := s.Toggle(id)
	if err := r.Save(ctx, s); err != nil {
		return false, err
	}
	return on, nil
}
