package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/ValleyCompanion_Go/internal/storage"
)

// StorageKey is the key the plan is saved under
const StorageKey = "planner"

// Repository saves a planner as a JSON array of entries
type Repository struct {
	kv storage.KV
}

// NewRepository creates a repository over kv
func NewRepository(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// Load reads the saved plan. A plan that was never saved loads empty.
func (r *Repository) Load(ctx context.Context) (*Planner, error) {
	data, err := r.kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return FromEntries(entries), nil
}

// Save replaces the saved plan
func (r *Repository) Save(ctx context.Context, p *Planner) error {
	entries := p.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// Clear deletes the saved plan
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear plan: %w", err)
	}
	return nil
}
