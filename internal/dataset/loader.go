package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
	"github.com/osse101/ValleyCompanion_Go/internal/validation"
)

// fishRecord mirrors the scraped fish file, where most fields may be missing
type fishRecord struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Season      *string `json:"season"`
	Weather     *string `json:"weather"`
	Location    *string `json:"location"`
	Time        *string `json:"time"`
	Difficulty  *int    `json:"difficulty"`
	Image       *string `json:"image"`
}

// recipeRecord carries the category label that becomes Recipe.Description
type recipeRecord struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    *string             `json:"category"`
	Ingredients []domain.Ingredient `json:"ingredients"`
	Buffs       []domain.Buff       `json:"buffs"`
	Source      string              `json:"source"`
	Image       *string             `json:"image"`
}

// Loader reads the catalog data files from a directory
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader validating against the embedded schemas
func NewLoader() *Loader {
	return &Loader{schemaValidator: validation.NewSchemaValidator()}
}

// LoadDir reads, validates and normalizes all six data files in dir
func (l *Loader) LoadDir(ctx context.Context, dir string) (*domain.Snapshot, error) {
	log := logger.FromContext(ctx)

	crops, err := readFile[domain.Crop](l, filepath.Join(dir, config.DataFileCrops), validation.CropsSchema)
	if err != nil {
		return nil, err
	}
	fish, err := readFile[fishRecord](l, filepath.Join(dir, config.DataFileFish), validation.FishSchema)
	if err != nil {
		return nil, err
	}
	npcs, err := readFile[domain.NPC](l, filepath.Join(dir, config.DataFileNPCs), validation.NPCsSchema)
	if err != nil {
		return nil, err
	}
	recipes, err := readFile[recipeRecord](l, filepath.Join(dir, config.DataFileRecipes), validation.RecipesSchema)
	if err != nil {
		return nil, err
	}
	mining, err := readFile[domain.MiningLocation](l, filepath.Join(dir, config.DataFileMining), validation.MiningSchema)
	if err != nil {
		return nil, err
	}
	bundles, err := readFile[domain.Bundle](l, filepath.Join(dir, config.DataFileBundles), validation.BundlesSchema)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		Crops:           normalizeCrops(ctx, crops),
		Fish:            normalizeFish(ctx, fish),
		NPCs:            normalizeNPCs(ctx, npcs),
		Recipes:         normalizeRecipes(ctx, recipes),
		MiningLocations: normalizeMining(mining),
		Bundles:         normalizeBundles(bundles),
	}

	if err := checkUniqueIDs(snap); err != nil {
		return nil, err
	}

	log.Info(LogMsgDatasetLoaded, "dir", dir, "counts", snap.Counts())
	return snap, nil
}

func readFile[T any](l *Loader, path, schemaName string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFile, path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, schemaName); err != nil {
		return nil, fmt.Errorf(ErrFmtValidateFile, path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf(ErrFmtParseFile, path, err)
	}
	return records, nil
}

func dropRecord(ctx context.Context, entity string, index int) {
	logger.FromContext(ctx).Warn(LogMsgDroppedRecord, "entity", entity, "index", index)
}

func normalizeCrops(ctx context.Context, in []domain.Crop) []domain.Crop {
	out := make([]domain.Crop, 0, len(in))
	for i, c := range in {
		if c.Name == "" {
			dropRecord(ctx, domain.EntityCrop, i)
			continue
		}
		if c.ID == "" {
			c.ID = Slug(c.Name)
		}
		if c.Description == nil {
			c.Description = strPtr("")
		}
		out = append(out, c)
	}
	return out
}

// normalizeFish drops entries without a name or description and fills the
// remaining gaps with the catch-anywhere defaults
func normalizeFish(ctx context.Context, in []fishRecord) []domain.Fish {
	out := make([]domain.Fish, 0, len(in))
	for i, r := range in {
		name := deref(r.Name)
		if name == "" || deref(r.Description) == "" {
			dropRecord(ctx, domain.EntityFish, i)
			continue
		}
		difficulty := DefaultFishDifficulty
		if r.Difficulty != nil {
			difficulty = *r.Difficulty
		}
		f := domain.Fish{
			ID:          r.ID,
			Name:        name,
			Description: r.Description,
			Season:      orDefault(r.Season, domain.DefaultFishSeason),
			Weather:     orDefault(r.Weather, domain.DefaultFishWeather),
			Location:    orDefault(r.Location, domain.DefaultFishLocation),
			Time:        strPtr(orDefault(r.Time, domain.DefaultFishTime)),
			Difficulty:  &difficulty,
			Image:       r.Image,
		}
		if f.ID == "" {
			f.ID = Slug(f.Name)
		}
		out = append(out, f)
	}
	return out
}

func normalizeNPCs(ctx context.Context, in []domain.NPC) []domain.NPC {
	out := make([]domain.NPC, 0, len(in))
	for i, n := range in {
		if n.Name == "" {
			dropRecord(ctx, domain.EntityNPC, i)
			continue
		}
		if n.ID == "" {
			n.ID = Slug(n.Name)
		}
		n.Loves = nonNil(n.Loves)
		n.Likes = nonNil(n.Likes)
		n.Hates = nonNil(n.Hates)
		out = append(out, n)
	}
	return out
}

func normalizeRecipes(ctx context.Context, in []recipeRecord) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(in))
	for i, r := range in {
		if r.Name == "" {
			dropRecord(ctx, domain.EntityRecipe, i)
			continue
		}
		rec := domain.Recipe{
			ID:          r.ID,
			Name:        r.Name,
			Description: strPtr(deref(r.Category)),
			Ingredients: r.Ingredients,
			Source:      r.Source,
			Image:       r.Image,
		}
		if len(r.Buffs) > 0 {
			rec.Buffs = r.Buffs
		}
		if rec.ID == "" {
			rec.ID = Slug(rec.Name)
		}
		out = append(out, rec)
	}
	return out
}

func normalizeMining(in []domain.MiningLocation) []domain.MiningLocation {
	out := make([]domain.MiningLocation, 0, len(in))
	for _, m := range in {
		if m.ID == "" {
			m.ID = Slug(m.Location)
		}
		if m.Sections == nil {
			m.Sections = []domain.Section{}
		}
		out = append(out, m)
	}
	return out
}

func normalizeBundles(in []domain.Bundle) []domain.Bundle {
	out := make([]domain.Bundle, 0, len(in))
	for _, b := range in {
		if b.ID == "" {
			b.ID = Slug(b.Room, b.Name)
		}
		b.Items = nonNil(b.Items)
		out = append(out, b)
	}
	return out
}

func checkUniqueIDs(snap *domain.Snapshot) error {
	check := func(entity string, ids []string) error {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf(ErrFmtDuplicateID, domain.ErrDuplicateID, entity, id)
			}
			seen[id] = struct{}{}
		}
		return nil
	}

	groups := []struct {
		entity string
		ids    []string
	}{
		{domain.EntityCrop, collectIDs(snap.Crops, func(c domain.Crop) string { return c.ID })},
		{domain.EntityFish, collectIDs(snap.Fish, func(f domain.Fish) string { return f.ID })},
		{domain.EntityNPC, collectIDs(snap.NPCs, func(n domain.NPC) string { return n.ID })},
		{domain.EntityRecipe, collectIDs(snap.Recipes, func(r domain.Recipe) string { return r.ID })},
		{domain.EntityMiningLocation, collectIDs(snap.MiningLocations, func(m domain.MiningLocation) string { return m.ID })},
		{domain.EntityBundle, collectIDs(snap.Bundles, func(b domain.Bundle) string { return b.ID })},
	}
	for _, g := range groups {
		if err := check(g.entity, g.ids); err != nil {
			return err
		}
	}
	return nil
}

func collectIDs[T any](items []T, id func(T) string) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = id(item)
	}
	return ids
}

func strPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s *string, def string) string {
	if v := deref(s); v != "" {
		return v
	}
	return def
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
