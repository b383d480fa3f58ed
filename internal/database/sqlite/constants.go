package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Catalog queries. Numbered parameters let one argument feed both the
// "disabled" check and the instr() match.
const (
	queryListCrops = `
SELECT id, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image
FROM crops
WHERE (?1 = '' OR instr(season, ?1) > 0)
ORDER BY position`

	queryGetCrop = `
SELECT id, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image
FROM crops
WHERE id = ?1`

	queryListFish = `
SELECT id, name, description, season, weather, location, time, difficulty, image
FROM fish
WHERE (?1 = '' OR instr(season, ?1) > 0)
  AND (?2 = '' OR instr(weather, ?2) > 0)
  AND (?3 = '' OR instr(location, ?3) > 0)
ORDER BY position`

	queryListNPCs = `
SELECT id, name, birthday, location, loves, likes, hates, image
FROM npcs
ORDER BY position`

	queryListRecipes = `
SELECT id, name, description, ingredients, buffs, source, image
FROM recipes
WHERE (?1 = '' OR description = ?1)
ORDER BY position`

	queryListMining = `
SELECT id, location, description, floors, sections
FROM mining_locations
ORDER BY location, position`

	queryListBundles = `
SELECT id, room, name, reward, items
FROM bundles
WHERE (?1 = '' OR room = ?1)
ORDER BY position`
)

// Seeding statements
var clearCatalogStatements = []string{
	`DELETE FROM crops`,
	`DELETE FROM fish`,
	`DELETE FROM npcs`,
	`DELETE FROM recipes`,
	`DELETE FROM mining_locations`,
	`DELETE FROM bundles`,
}

const (
	queryInsertCrop = `
INSERT INTO crops (id, position, name, description, season, growth_time, regrowth_time, sell_price, seed_price, image)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryInsertFish = `
INSERT INTO fish (id, position, name, description, season, weather, location, time, difficulty, image)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryInsertNPC = `
INSERT INTO npcs (id, position, name, birthday, location, loves, likes, hates, image)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryInsertRecipe = `
INSERT INTO recipes (id, position, name, description, ingredients, buffs, source, image)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryInsertMining = `
INSERT INTO mining_locations (id, position, location, description, floors, sections)
VALUES (?, ?, ?, ?, ?, ?)`

	queryInsertBundle = `
INSERT INTO bundles (id, position, room, name, reward, items)
VALUES (?, ?, ?, ?, ?, ?)`
)

// Log messages
const (
	LogMsgCatalogReplaced = "Catalog replaced"
	LogMsgOpened          = "Opened SQLite catalog"
)
