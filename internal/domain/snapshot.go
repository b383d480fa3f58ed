package domain

// Snapshot is a complete copy of the catalog, as loaded from data files or
// written by the seeding tool
type Snapshot struct {
	Crops           []Crop
	Fish            []Fish
	NPCs            []NPC
	Recipes         []Recipe
	MiningLocations []MiningLocation
	Bundles         []Bundle
}

// Counts returns the number of records per entity, keyed by entity name
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		EntityCrop:           len(s.Crops),
		EntityFish:           len(s.Fish),
		EntityNPC:            len(s.NPCs),
		EntityRecipe:         len(s.Recipes),
		EntityMiningLocation: len(s.MiningLocations),
		EntityBundle:         len(s.Bundles),
	}
}
