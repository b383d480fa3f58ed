package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ValleyCompanion_Go/internal/database"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// CatalogRepository implements repository.Catalog and repository.CatalogWriter on PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Ping checks connectivity for the readiness probe
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func wrapQueryErr(entity string, err error) error {
	if errors.Is(err, domain.ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: query %s: %w", domain.ErrDatabaseError, entity, err)
}

func scanCrop(row pgx.Row) (domain.Crop, error) {
	var c domain.Crop
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Season, &c.GrowthTime,
		&c.RegrowthTime, &c.SellPrice, &c.SeedPrice, &c.Image)
	return c, err
}

func (r *CatalogRepository) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	rows, err := r.db.Query(ctx, queryListCrops, filter.Season.Value())
	if err != nil {
		return nil, wrapQueryErr(domain.EntityCrop, err)
	}
	crops, err := collect(rows, func(rows pgx.Rows) (domain.Crop, error) { return scanCrop(rows) })
	if err != nil {
		return nil, wrapQueryErr(domain.EntityCrop, err)
	}
	return crops, nil
}

func (r *CatalogRepository) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	c, err := scanCrop(r.db.QueryRow(ctx, queryGetCrop, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCropNotFound, id)
	}
	if err != nil {
		return nil, wrapQueryErr(domain.EntityCrop, err)
	}
	return &c, nil
}

func (r *CatalogRepository) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	rows, err := r.db.Query(ctx, queryListFish,
		filter.Season.Value(), filter.Weather.Value(), filter.Location.Value())
	if err != nil {
		return nil, wrapQueryErr(domain.EntityFish, err)
	}
	fish, err := collect(rows, func(rows pgx.Rows) (domain.Fish, error) {
		var f domain.Fish
		err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Season, &f.Weather,
			&f.Location, &f.Time, &f.Difficulty, &f.Image)
		return f, err
	})
	if err != nil {
		return nil, wrapQueryErr(domain.EntityFish, err)
	}
	return fish, nil
}

func scanNPC(row pgx.Row) (domain.NPC, error) {
	var (
		n                   domain.NPC
		loves, likes, hates []byte
	)
	if err := row.Scan(&n.ID, &n.Name, &n.Birthday, &n.Location, &loves, &likes, &hates, &n.Image); err != nil {
		return n, err
	}
	if err := database.DecodeJSON(domain.EntityNPC, "loves", loves, &n.Loves); err != nil {
		return n, err
	}
	if err := database.DecodeJSON(domain.EntityNPC, "likes", likes, &n.Likes); err != nil {
		return n, err
	}
	if err := database.DecodeJSON(domain.EntityNPC, "hates", hates, &n.Hates); err != nil {
		return n, err
	}
	return n, nil
}

func (r *CatalogRepository) ListNPCs(ctx context.Context) ([]domain.NPC, error) {
	rows, err := r.db.Query(ctx, queryListNPCs)
	if err != nil {
		return nil, wrapQueryErr(domain.EntityNPC, err)
	}
	npcs, err := collect(rows, func(rows pgx.Rows) (domain.NPC, error) { return scanNPC(rows) })
	if err != nil {
		return nil, wrapQueryErr(domain.EntityNPC, err)
	}
	return npcs, nil
}

// GetNPCByName folds in Go so the result does not depend on the database collation
func (r *CatalogRepository) GetNPCByName(ctx context.Context, name string) (*domain.NPC, error) {
	npcs, err := r.ListNPCs(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FindNPCByName(npcs, name)
}

func (r *CatalogRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, queryListRecipes, filter.Category.Value())
	if err != nil {
		return nil, wrapQueryErr(domain.EntityRecipe, err)
	}
	recipes, err := collect(rows, func(rows pgx.Rows) (domain.Recipe, error) {
		var (
			rec                domain.Recipe
			ingredients, buffs []byte
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &ingredients, &buffs, &rec.Source, &rec.Image); err != nil {
			return rec, err
		}
		if err := database.DecodeJSON(domain.EntityRecipe, "ingredients", ingredients, &rec.Ingredients); err != nil {
			return rec, err
		}
		if err := database.DecodeJSON(domain.EntityRecipe, "buffs", buffs, &rec.Buffs); err != nil {
			return rec, err
		}
		return rec, nil
	})
	if err != nil {
		return nil, wrapQueryErr(domain.EntityRecipe, err)
	}
	return recipes, nil
}

func (r *CatalogRepository) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	rows, err := r.db.Query(ctx, queryListMining)
	if err != nil {
		return nil, wrapQueryErr(domain.EntityMiningLocation, err)
	}
	locations, err := collect(rows, func(rows pgx.Rows) (domain.MiningLocation, error) {
		var (
			m        domain.MiningLocation
			sections []byte
		)
		if err := rows.Scan(&m.ID, &m.Location, &m.Description, &m.Floors, &sections); err != nil {
			return m, err
		}
		if err := database.DecodeJSON(domain.EntityMiningLocation, "sections", sections, &m.Sections); err != nil {
			return m, err
		}
		return m, nil
	})
	if err != nil {
		return nil, wrapQueryErr(domain.EntityMiningLocation, err)
	}
	return locations, nil
}

func (r *CatalogRepository) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	rows, err := r.db.Query(ctx, queryListBundles, filter.Room.Value())
	if err != nil {
		return nil, wrapQueryErr(domain.EntityBundle, err)
	}
	bundles, err := collect(rows, func(rows pgx.Rows) (domain.Bundle, error) {
		var (
			b     domain.Bundle
			items []byte
		)
		if err := rows.Scan(&b.ID, &b.Room, &b.Name, &b.Reward, &items); err != nil {
			return b, err
		}
		if err := database.DecodeJSON(domain.EntityBundle, "items", items, &b.Items); err != nil {
			return b, err
		}
		return b, nil
	})
	if err != nil {
		return nil, wrapQueryErr(domain.EntityBundle, err)
	}
	return bundles, nil
}

// ReplaceAll truncates every catalog table and inserts the snapshot in one transaction
func (r *CatalogRepository) ReplaceAll(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", domain.ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryTruncateCatalog); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	batch, err := buildInsertBatch(snap)
	if err != nil {
		return err
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert catalog: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogReplaced, "counts", snap.Counts())
	return nil
}

func buildInsertBatch(snap *domain.Snapshot) (*pgx.Batch, error) {
	batch := &pgx.Batch{}

	for i, c := range snap.Crops {
		batch.Queue(queryInsertCrop, c.ID, i, c.Name, c.Description, c.Season, c.GrowthTime,
			c.RegrowthTime, c.SellPrice, c.SeedPrice, c.Image)
	}
	for i, f := range snap.Fish {
		batch.Queue(queryInsertFish, f.ID, i, f.Name, f.Description, f.Season, f.Weather,
			f.Location, f.Time, f.Difficulty, f.Image)
	}
	for i, n := range snap.NPCs {
		lists := make([]any, 0, 3)
		for _, l := range [][]string{n.Loves, n.Likes, n.Hates} {
			enc, err := database.EncodeJSON(l, false)
			if err != nil {
				return nil, fmt.Errorf("encode npc %s: %w", n.ID, err)
			}
			lists = append(lists, enc)
		}
		batch.Queue(queryInsertNPC, n.ID, i, n.Name, n.Birthday, n.Location,
			lists[0], lists[1], lists[2], n.Image)
	}
	for i, rec := range snap.Recipes {
		ingredients, err := database.EncodeJSON(rec.Ingredients, false)
		if err != nil {
			return nil, fmt.Errorf("encode recipe %s: %w", rec.ID, err)
		}
		buffs, err := database.EncodeJSON(rec.Buffs, true)
		if err != nil {
			return nil, fmt.Errorf("encode recipe %s: %w", rec.ID, err)
		}
		batch.Queue(queryInsertRecipe, rec.ID, i, rec.Name, rec.Description, ingredients, buffs, rec.Source, rec.Image)
	}
	for i, m := range snap.MiningLocations {
		sections, err := database.EncodeJSON(m.Sections, false)
		if err != nil {
			return nil, fmt.Errorf("encode mining location %s: %w", m.ID, err)
		}
		batch.Queue(queryInsertMining, m.ID, i, m.Location, m.Description, m.Floors, sections)
	}
	for i, b := range snap.Bundles {
		items, err := database.EncodeJSON(b.Items, false)
		if err != nil {
			return nil, fmt.Errorf("encode bundle %s: %w", b.ID, err)
		}
		batch.Queue(queryInsertBundle, b.ID, i, b.Room, b.Name, b.Reward, items)
	}

	return batch, nil
}
