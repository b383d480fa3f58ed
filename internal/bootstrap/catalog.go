package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/database"
	"github.com/osse101/ValleyCompanion_Go/internal/database/postgres"
	"github.com/osse101/ValleyCompanion_Go/internal/database/sqlite"
	"github.com/osse101/ValleyCompanion_Go/internal/dataset"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
)

// store is what every catalog backend provides
type store interface {
	repository.Catalog
	repository.CatalogWriter
	repository.Pinger
}

// Catalog holds the opened catalog store. Repo is the read path used by the
// service (cache-wrapped when enabled); Writer replaces the stored data and
// invalidates the cache.
type Catalog struct {
	Backend string
	Repo    repository.Catalog
	Writer  repository.CatalogWriter
	Pinger  repository.Pinger

	close func() error
}

// Close releases the backing connection or file
func (c *Catalog) Close() error {
	if c.close == nil {
		return nil
	}
	err := c.close()
	slog.Info(LogMsgCatalogClosed, "backend", c.Backend)
	return err
}

// OpenCatalog opens the backend chosen by cfg.CatalogBackend.
// The memory backend is filled from cfg.DataDir. Database backends are migrated
// on open and, with cfg.SeedOnStart, reloaded from cfg.DataDir.
func OpenCatalog(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	s, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := catalog.WithCache(s, cfg.CacheSize, cfg.CacheTTL)
	writer, ok := repo.(repository.CatalogWriter)
	if !ok {
		writer = s
	}

	c := &Catalog{
		Backend: cfg.CatalogBackend,
		Repo:    repo,
		Writer:  writer,
		Pinger:  s,
		close:   closeFn,
	}

	if cfg.SeedOnStart && cfg.CatalogBackend != config.BackendMemory {
		if err := SyncCatalog(ctx, c.Writer, cfg.DataDir); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	slog.Info(LogMsgCatalogOpened, "backend", cfg.CatalogBackend)
	return c, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store, func() error, error) {
	switch cfg.CatalogBackend {
	case config.BackendMemory:
		snap, err := dataset.NewLoader().LoadDir(ctx, cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadData, err)
		}
		return dataset.NewStore(snap), nil, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		return sqlite.NewCatalogRepository(db), db.Close, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxConnLife)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		db := stdlib.OpenDBFromPool(pool)
		closeFn := func() error {
			err := db.Close()
			pool.Close()
			return err
		}
		if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		return postgres.NewCatalogRepository(pool), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.CatalogBackend)
	}
}

// SyncCatalog loads the data files in dir and replaces the stored catalog with them
func SyncCatalog(ctx context.Context, w repository.CatalogWriter, dir string) error {
	if w == nil {
		return errors.New(ErrMsgStoreNotWritable)
	}

	slog.Info(LogMsgSyncingCatalog, "dir", dir)
	snap, err := dataset.NewLoader().LoadDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadData, err)
	}

	if err := w.ReplaceAll(ctx, snap); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncStore, err)
	}

	logCounts(snap)
	return nil
}

func logCounts(snap *domain.Snapshot) {
	args := make([]any, 0, 12)
	for entity, n := range snap.Counts() {
		args = append(args, entity, n)
	}
	slog.Info(LogMsgCatalogSynced, args...)
}
