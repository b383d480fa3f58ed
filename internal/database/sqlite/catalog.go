package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/ValleyCompanion_Go/internal/database"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// CatalogRepository implements repository.Catalog and repository.CatalogWriter
// on a SQLite file. Nested fields are JSON text columns.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Ping checks connectivity for the readiness probe
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func wrapQueryErr(entity string, err error) error {
	if errors.Is(err, domain.ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: query %s: %w", domain.ErrDatabaseError, entity, err)
}

// query runs a list query and scans every row, closing rows on every path
func query[T any](ctx context.Context, db *sql.DB, entity, q string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryErr(entity, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrapQueryErr(entity, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(entity, err)
	}
	return out, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// value unwraps an optional field into a driver argument; nil becomes NULL
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func scanCrop(row scanner) (domain.Crop, error) {
	var (
		c                                  domain.Crop
		description, image                 sql.NullString
		regrowthTime, sellPrice, seedPrice sql.NullInt64
	)
	if err := row.Scan(&c.ID, &c.Name, &description, &c.Season, &c.GrowthTime,
		&regrowthTime, &sellPrice, &seedPrice, &image); err != nil {
		return c, err
	}
	c.Description = stringPtr(description)
	c.RegrowthTime = intPtr(regrowthTime)
	c.SellPrice = intPtr(sellPrice)
	c.SeedPrice = intPtr(seedPrice)
	c.Image = stringPtr(image)
	return c, nil
}

func (r *CatalogRepository) ListCrops(ctx context.Context, filter domain.CropFilter) ([]domain.Crop, error) {
	return query(ctx, r.db, domain.EntityCrop, queryListCrops, scanCrop, filter.Season.Value())
}

func (r *CatalogRepository) GetCropByID(ctx context.Context, id string) (*domain.Crop, error) {
	c, err := scanCrop(r.db.QueryRowContext(ctx, queryGetCrop, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCropNotFound, id)
	}
	if err != nil {
		return nil, wrapQueryErr(domain.EntityCrop, err)
	}
	return &c, nil
}

func scanFish(row scanner) (domain.Fish, error) {
	var (
		f                       domain.Fish
		description, tod, image sql.NullString
		difficulty              sql.NullInt64
	)
	if err := row.Scan(&f.ID, &f.Name, &description, &f.Season, &f.Weather,
		&f.Location, &tod, &difficulty, &image); err != nil {
		return f, err
	}
	f.Description = stringPtr(description)
	f.Time = stringPtr(tod)
	f.Difficulty = intPtr(difficulty)
	f.Image = stringPtr(image)
	return f, nil
}

func (r *CatalogRepository) ListFish(ctx context.Context, filter domain.FishFilter) ([]domain.Fish, error) {
	return query(ctx, r.db, domain.EntityFish, queryListFish, scanFish,
		filter.Season.Value(), filter.Weather.Value(), filter.Location.Value())
}

func scanNPC(row scanner) (domain.NPC, error) {
	var (
		n                   domain.NPC
		loves, likes, hates []byte
		image               sql.NullString
	)
	if err := row.Scan(&n.ID, &n.Name, &n.Birthday, &n.Location, &loves, &likes, &hates, &image); err != nil {
		return n, err
	}
	n.Image = stringPtr(image)
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
	return query(ctx, r.db, domain.EntityNPC, queryListNPCs, scanNPC)
}

// GetNPCByName compares in Go because SQLite's lower() only folds ASCII
func (r *CatalogRepository) GetNPCByName(ctx context.Context, name string) (*domain.NPC, error) {
	npcs, err := r.ListNPCs(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FindNPCByName(npcs, name)
}

func scanRecipe(row scanner) (domain.Recipe, error) {
	var (
		rec                domain.Recipe
		description, image sql.NullString
		ingredients, buffs []byte
	)
	if err := row.Scan(&rec.ID, &rec.Name, &description, &ingredients, &buffs, &rec.Source, &image); err != nil {
		return rec, err
	}
	rec.Description = stringPtr(description)
	rec.Image = stringPtr(image)
	if err := database.DecodeJSON(domain.EntityRecipe, "ingredients", ingredients, &rec.Ingredients); err != nil {
		return rec, err
	}
	if err := database.DecodeJSON(domain.EntityRecipe, "buffs", buffs, &rec.Buffs); err != nil {
		return rec, err
	}
	return rec, nil
}

func (r *CatalogRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, error) {
	return query(ctx, r.db, domain.EntityRecipe, queryListRecipes, scanRecipe, filter.Category.Value())
}

func scanMining(row scanner) (domain.MiningLocation, error) {
	var (
		m        domain.MiningLocation
		sections []byte
	)
	if err := row.Scan(&m.ID, &m.Location, &m.Description, &m.Floors, &sections); err != nil {
		return m, err
	}
	if err := database.DecodeJSON(domain.EntityMiningLocation, "sections", sections, &m.Sections); err != nil {
		return m, err
	}
	return m, nil
}

func (r *CatalogRepository) ListMiningLocations(ctx context.Context) ([]domain.MiningLocation, error) {
	return query(ctx, r.db, domain.EntityMiningLocation, queryListMining, scanMining)
}

func scanBundle(row scanner) (domain.Bundle, error) {
	var (
		b     domain.Bundle
		items []byte
	)
	if err := row.Scan(&b.ID, &b.Room, &b.Name, &b.Reward, &items); err != nil {
		return b, err
	}
	if err := database.DecodeJSON(domain.EntityBundle, "items", items, &b.Items); err != nil {
		return b, err
	}
	return b, nil
}

func (r *CatalogRepository) ListBundles(ctx context.Context, filter domain.BundleFilter) ([]domain.Bundle, error) {
	return query(ctx, r.db, domain.EntityBundle, queryListBundles, scanBundle, filter.Room.Value())
}

// ReplaceAll clears every catalog table and inserts the snapshot in one transaction
func (r *CatalogRepository) ReplaceAll(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", domain.ErrInvalidInput)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.FromContext(ctx).Error(database.ErrMsgFailedToRollbackTransaction, "error", err)
		}
	}()

	for _, stmt := range clearCatalogStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	if err := insertSnapshot(ctx, tx, snap); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogReplaced, "counts", snap.Counts())
	return nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, snap *domain.Snapshot) error {
	exec := func(entity, id, q string, args ...any) error {
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", entity, id, err)
		}
		return nil
	}
	encode := func(entity, id string, v any, nullable bool) (any, error) {
		enc, err := database.EncodeJSON(v, nullable)
		if err != nil {
			return nil, fmt.Errorf("encode %s %q: %w", entity, id, err)
		}
		return enc, nil
	}

	for i, c := range snap.Crops {
		if err := exec(domain.EntityCrop, c.ID, queryInsertCrop, c.ID, i, c.Name, value(c.Description), c.Season,
			c.GrowthTime, value(c.RegrowthTime), value(c.SellPrice), value(c.SeedPrice), value(c.Image)); err != nil {
			return err
		}
	}

	for i, f := range snap.Fish {
		if err := exec(domain.EntityFish, f.ID, queryInsertFish, f.ID, i, f.Name, value(f.Description), f.Season,
			f.Weather, f.Location, value(f.Time), value(f.Difficulty), value(f.Image)); err != nil {
			return err
		}
	}

	for i, n := range snap.NPCs {
		loves, err := encode(domain.EntityNPC, n.ID, n.Loves, false)
		if err != nil {
			return err
		}
		likes, err := encode(domain.EntityNPC, n.ID, n.Likes, false)
		if err != nil {
			return err
		}
		hates, err := encode(domain.EntityNPC, n.ID, n.Hates, false)
		if err != nil {
			return err
		}
		if err := exec(domain.EntityNPC, n.ID, queryInsertNPC, n.ID, i, n.Name, n.Birthday, n.Location,
			loves, likes, hates, value(n.Image)); err != nil {
			return err
		}
	}

	for i, rec := range snap.Recipes {
		ingredients, err := encode(domain.EntityRecipe, rec.ID, rec.Ingredients, false)
		if err != nil {
			return err
		}
		buffs, err := encode(domain.EntityRecipe, rec.ID, rec.Buffs, true)
		if err != nil {
			return err
		}
		if err := exec(domain.EntityRecipe, rec.ID, queryInsertRecipe, rec.ID, i, rec.Name, value(rec.Description),
			ingredients, buffs, rec.Source, value(rec.Image)); err != nil {
			return err
		}
	}

	for i, m := range snap.MiningLocations {
		sections, err := encode(domain.EntityMiningLocation, m.ID, m.Sections, false)
		if err != nil {
			return err
		}
		if err := exec(domain.EntityMiningLocation, m.ID, queryInsertMining, m.ID, i, m.Location,
			m.Description, m.Floors, sections); err != nil {
			return err
		}
	}

	for i, b := range snap.Bundles {
		items, err := encode(domain.EntityBundle, b.ID, b.Items, false)
		if err != nil {
			return err
		}
		if err := exec(domain.EntityBundle, b.ID, queryInsertBundle, b.ID, i, b.Room, b.Name, b.Reward, items); err != nil {
			return err
		}
	}

	return nil
}
