package planner

// ItemSummary is the per-crop line of a Summary
type ItemSummary struct {
	CropID     string `json:"cropId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	SellPrice  *int   `json:"sellPrice"`
	SeedPrice  *int   `json:"seedPrice"`
	Investment int    `json:"investment"`
	Revenue    int    `json:"revenue"`
	Profit     int    `json:"profit"`
}

// Summary is the full financial breakdown of a plan
type Summary struct {
	Items  []ItemSummary `json:"items"`
	Totals Totals        `json:"totals"`
}

// Summarize computes per-item figures and totals for entries, in order
func Summarize(entries []Entry) Summary {
	items := make([]ItemSummary, 0, len(entries))
	for _, e := range entries {
		items = append(items, ItemSummary{
			CropID:     e.Crop.ID,
			Name:       e.Crop.Name,
			Quantity:   e.Quantity,
			SellPrice:  e.Crop.SellPrice,
			SeedPrice:  e.Crop.SeedPrice,
			Investment: InvestmentOf(e),
			Revenue:    RevenueOf(e),
			Profit:     ProfitOf(e),
		})
	}
	return Summary{Items: items, Totals: totalsOf(entries)}
}

// Summary summarizes the planner's current entries
func (p *Planner) Summary() Summary {
	return Summarize(p.entries)
}
