package domain

// Crop is a plantable crop. Season may name several seasons in one string.
type Crop struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Season       string  `json:"season"`
	GrowthTime   int     `json:"growthTime"`
	RegrowthTime *int    `json:"regrowthTime"`
	SellPrice    *int    `json:"sellPrice"`
	SeedPrice    *int    `json:"seedPrice"`
	Image        *string `json:"image"`
}

// SellPriceOrZero returns the sell price, treating a missing price as zero
func (c Crop) SellPriceOrZero() int {
	if c.SellPrice == nil {
		return 0
	}
	return *c.SellPrice
}

// SeedPriceOrZero returns the seed price, treating a missing price as zero
func (c Crop) SeedPriceOrZero() int {
	if c.SeedPrice == nil {
		return 0
	}
	return *c.SeedPrice
}
