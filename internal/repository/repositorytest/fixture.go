// Package repositorytest holds a shared fixture and a behavioural suite that
// every repository.Catalog implementation runs in its own tests.
package repositorytest

import "github.com/osse101/ValleyCompanion_Go/internal/domain"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Fixture returns a small catalog covering every filter edge case the suite checks
func Fixture() *domain.Snapshot {
	return &domain.Snapshot{
		Crops: []domain.Crop{
			{ID: "parsnip", Name: "Parsnip", Description: strPtr("A spring tuber."), Season: "Spring", GrowthTime: 4,
				SellPrice: intPtr(35), SeedPrice: intPtr(20), Image: strPtr("/images/crops/parsnip.png")},
			{ID: "corn", Name: "Corn", Description: strPtr(""), Season: "Summer, Fall", GrowthTime: 14,
				RegrowthTime: intPtr(4), SellPrice: intPtr(50), SeedPrice: intPtr(150)},
			{ID: "ancient-fruit", Name: "Ancient Fruit", Season: "Spring, Summer, Fall", GrowthTime: 28,
				RegrowthTime: intPtr(7), SellPrice: intPtr(550)},
		},
		Fish: []domain.Fish{
			{ID: "pufferfish", Name: "Pufferfish", Description: strPtr("Inflates when threatened."), Season: "Summer",
				Weather: "Sunny", Location: "Ocean", Time: strPtr("12pm - 4pm"), Difficulty: intPtr(80)},
			{ID: "catfish", Name: "Catfish", Season: "Spring, Fall", Weather: "Rain",
				Location: "River (Town+Forest), Secret Woods", Time: strPtr("6am - 12am"), Difficulty: intPtr(75)},
			{ID: "eel", Name: "Eel", Season: "Spring, Fall", Weather: "Rain", Location: "Ocean",
				Time: strPtr("4pm - 2am"), Difficulty: intPtr(70)},
		},
		NPCs: []domain.NPC{
			{ID: "abigail", Name: "Abigail", Birthday: "Fall 13", Location: "Pierre's General Store",
				Loves: []string{"Amethyst", "Pufferfish"}, Likes: []string{"Quartz"}, Hates: []string{"Clay"}},
			{ID: "linus", Name: "Linus", Birthday: "Winter 3", Location: "Tent",
				Loves: []string{"Yam"}, Likes: []string{}, Hates: []string{}},
		},
		Recipes: []domain.Recipe{
			{ID: "spicy-eel", Name: "Spicy Eel", Description: strPtr("Dinner"),
				Ingredients: []domain.Ingredient{{Item: "Eel", Quantity: 1}, {Item: "Hot Pepper", Quantity: 1}},
				Buffs:       []domain.Buff{{Type: "Luck", Value: "+1"}, {Type: "Speed", Value: "+1"}},
				Source:      "George (Mail - 7+ hearts)"},
			{ID: "fried-egg", Name: "Fried Egg", Description: strPtr("Breakfast"),
				Ingredients: []domain.Ingredient{{Item: "Egg", Quantity: 1}}, Source: "Starter recipe"},
			{ID: "toast", Name: "Toast", Ingredients: []domain.Ingredient{{Item: "Bread", Quantity: 1}}},
		},
		MiningLocations: []domain.MiningLocation{
			{ID: "skull-cavern", Location: "Skull Cavern", Description: "Desert cavern.", Floors: "1+",
				Sections: []domain.Section{{Name: "Cavern", Floors: "1+", Ores: []string{"Iridium Ore"}}}},
			{ID: "the-mines", Location: "The Mines", Description: "North of town.", Floors: "1-120",
				Sections: []domain.Section{
					{Name: "Earth Area", Floors: "1-39", Monsters: []string{"Green Slime"}, Gems: []string{"Amethyst"}},
					{Name: "Frozen Area", Floors: "40-79", Geodes: []string{"Frozen Geode"}, Notes: "Cold."},
				}},
		},
		Bundles: []domain.Bundle{
			{ID: "pantry-spring-crops-bundle", Room: "Pantry", Name: "Spring Crops Bundle", Reward: "Speed-Gro (20)",
				Items: []string{"Parsnip", "Green Bean"}},
			{ID: "pantry-room-odd-bundle", Room: "Pantry Room", Name: "Odd Bundle", Items: []string{"Rock"}},
			{ID: "vault-2-500g-bundle", Room: "Vault", Name: "2,500g Bundle", Reward: "Chocolate Cake (3)",
				Items: []string{"2,500g"}},
		},
	}
}
