package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/metrics"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
)

// cachedEntry wraps a query result with version metadata for cache invalidation
type cachedEntry struct {
	Version  string    `json:"version"`
	Value    any       `json:"value"`
	CachedAt time.Time `json:"cached_at"`
}

// CachedCatalog is a read-through cache in front of a repository.Catalog.
// Successful results are cached per query key with a TTL; errors never are.
// Cached slices are shared between callers and must not be modified.
type CachedCatalog struct {
	inner repository.Catalog
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedCatalog creates a cache holding at most size query results for ttl.
// A zero ttl keeps entries until they are evicted.
func NewCachedCatalog(inner repository.Catalog, size int, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// WithCache wraps repo in a CachedCatalog unless size is zero
func WithCache(repo repository.Catalog, size int, ttl time.Duration) repository.Catalog {
	if size <= 0 {
		slog.Info(LogMsgCacheDisabled)
		return repo
	}
	slog.Info(LogMsgCacheEnabled, "size", size, "ttl", ttl)
	return NewCachedCatalog(repo, size, ttl)
}

// get returns the cached value for key, dropping entries from an older schema version
func (c *CachedCatalog) get(key string) (any, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Value, true
}

func (c *CachedCatalog) set(key string, value any) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries from the cache
func (c *CachedCatalog) Clear() {
	c.lru.Purge()
}

// Len reports the number of cached query results
func (c *CachedCatalog) Len() int {
	return c.lru.Len()
}

func readThrough[T any](c *CachedCatalog, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.get(key); ok {
		if typed, ok := v.(T); ok {
			metrics.RecordCacheLookup(true)
			return typed, nil
		}
	}
	metrics.RecordCacheLookup(false)

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.set(key, value)
	return value, nil
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

func filterKey(f domain.TextFilter) string {
	if !f.Active() {
		return "*"
	}
	return "=" + f.Value()
}

func (c *CachedCatalog) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	return readThrough(c, cacheKey(domain.EntityCrop, filterKey(filter.Season)), func() ([]domain.Crop, error) {
		return c.inner.ListCrops(ctx, filter)
	})
}

func (c *CachedCatalog) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	crop, err := readThrough(c, cacheKey(domain.EntityCrop, "id", id), func() (*domain.Crop, error) {
		return c.inner.GetCropByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := *crop
	return &out, nil
}

func (c *CachedCatalog) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	key := cacheKey(domain.EntityFish, filterKey(filter.Season), filterKey(filter.Weather), filterKey(filter.Location))
	return readThrough(c, key, func() ([]domain.Fish, error) {
		return c.inner.ListFish(ctx, filter)
	})
}

func (c *CachedCatalog) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	return readThrough(c, cacheKey(domain.EntityNPC), func() ([]domain.NPC, error) {
		return c.inner.ListNPCs(ctx)
	})
}

func (c *CachedCatalog) GetNPCByName(ctx context.Context, name string) (*domain.NPC, error) {
	npc, err := readThrough(c, cacheKey(domain.EntityNPC, "name", name), func() (*domain.NPC, error) {
		return c.inner.GetNPCByName(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	out := *npc
	return &out, nil
}

func (c *CachedCatalog) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	return readThrough(c, cacheKey(domain.EntityRecipe, filterKey(filter.Category)), func() ([]domain.Recipe, error) {
		return c.inner.ListRecipes(ctx, filter)
	})
}

func (c *CachedCatalog) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	return readThrough(c, cacheKey(domain.EntityMiningLocation), func() ([]domain.MiningLocation, error) {
		return c.inner.ListMiningLocations(ctx)
	})
}

func (c *CachedCatalog) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	return readThrough(c, cacheKey(domain.EntityBundle, filterKey(filter.Room)), func() ([]domain.Bundle, error) {
		return c.inner.ListBundles(ctx, filter)
	})
}

// Ping delegates to the wrapped store when it supports readiness checks
func (c *CachedCatalog) Ping(ctx context.Context) error {
	if p, ok := c.inner.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// ReplaceAll writes through to the wrapped store and empties the cache
func (c *CachedCatalog) ReplaceAll(ctx context.Context, snapshot *domain.Snapshot) error {
	w, ok := c.inner.(repository.CatalogWriter)
	if !ok {
		return domain.ErrStoreReadOnly
	}
	defer c.Clear()
	return w.ReplaceAll(ctx, snapshot)
}
