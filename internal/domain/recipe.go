package domain

// Ingredient is a single item requirement of a recipe
type Ingredient struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Buff is a temporary effect granted by eating a dish
type Buff struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Recipe is a cooking recipe. Description carries the category label (e.g. "Dinner").
// Buffs is nil when the dish grants none.
type Recipe struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Buffs       []Buff       `json:"buffs"`
	Source      string       `json:"source"`
	Image       *string      `json:"image"`
}
