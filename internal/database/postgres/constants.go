package postgres

// Catalog queries. Substring filters use strpos so the match is case-sensitive
// and free of LIKE wildcards; an empty parameter disables the filter.
const (
	queryListCrops = `
SELECT id, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image
FROM crops
WHERE ($1 = '' OR strpos(season, $1) > 0)
ORDER BY position`

	queryGetCrop = `
SELECT id, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image
FROM crops
WHERE id = $1`

	queryListFish = `
SELECT id, name, description, season, weather, location, time, difficulty, image
FROM fish
WHERE ($1 = '' OR strpos(season, $1) > 0)
  AND ($2 = '' OR strpos(weather, $2) > 0)
  AND ($3 = '' OR strpos(location, $3) > 0)
ORDER BY position`

	queryListNPCs = `
SELECT id, name, birthday, location, loves, likes, hates, image
FROM npcs
ORDER BY position`

	queryListRecipes = `
SELECT id, name, description, ingredients, buffs, source, image
FROM recipes
WHERE ($1 = '' OR description = $1)
ORDER BY position`

	queryListMining = `
SELECT id, location, description, floors, sections
FROM mining_locations
ORDER BY location, position`

	queryListBundles = `
SELECT id, room, name, reward, items
FROM bundles
WHERE ($1 = '' OR room = $1)
ORDER BY position`
)

// Seeding statements
const (
	queryTruncateCatalog = `TRUNCATE crops, fish, npcs, recipes, mining_locations, bundles`

	queryInsertCrop = `
INSERT INTO crops (id, position, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queryInsertFish = `
INSERT INTO fish (id, position, name, description, season, weather, location, time, difficulty, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	queryInsertNPC = `
INSERT INTO npcs (id, position, name, birthday, location, loves, likes, hates, image)
VALUES ($1, $2, $3, $4, $5, $6::text::jsonb, $7::text::jsonb, $8::text::jsonb, $9)`

	queryInsertRecipe = `
INSERT INTO recipes (id, position, name, description, ingredients, buffs, source, image)
VALUES ($1, $2, $3, $4, $5::text::jsonb, $6::text::jsonb, $7, $8)`

	queryInsertMining = `
INSERT INTO mining_locations (id, position, location, description, floors, sections)
VALUES ($1, $2, $3, $4, $5, $6::text::jsonb)`

	queryInsertBundle = `
INSERT INTO bundles (id, position, room, name, reward, items)
VALUES ($1, $2, $3, $4, $5, $6::text::jsonb)`
)

// Log messages
const (
	LogMsgCatalogReplaced = "Catalog replaced"
)
