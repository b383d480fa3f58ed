package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

func intPtr(i int) *int { return &i }

func crop(id string, sell, seed *int) domain.Crop {
	return domain.Crop{ID: id, Name: id, SellPrice: sell, SeedPrice: seed}
}

func TestPlanner_AddCropTwiceIncrements(t *testing.T) {
	p := New()
	a := crop("a", intPtr(10), intPtr(5))

	p.AddCrop(a)
	p.AddCrop(a)

	require.Equal(t, 1, p.Len())
	assert.Equal(t, 2, p.Quantity("a"))
}

func TestPlanner_KeepsInsertionOrder(t *testing.T) {
	p := New()
	p.AddCrop(crop("b", nil, nil))
	p.AddCrop(crop("a", nil, nil))
	p.AddCrop(crop("b", nil, nil))

	entries := p.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Crop.ID)
	assert.Equal(t, "a", entries[1].Crop.ID)
}

func TestPlanner_RemoveCrop(t *testing.T) {
	p := New()
	p.AddCrop(crop("a", nil, nil))
	p.AddCrop(crop("b", nil, nil))

	p.RemoveCrop("a")
	p.RemoveCrop("missing")

	require.Equal(t, 1, p.Len())
	assert.Equal(t, "b", p.Entries()[0].Crop.ID)
}

func TestPlanner_SetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		quantity int
		wantLen  int
		wantQty  int
	}{
		{"sets quantity", "a", 7, 1, 7},
		{"zero removes", "a", 0, 0, 0},
		{"negative removes", "a", -3, 0, 0},
		{"unknown id is ignored", "zzz", 4, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.AddCrop(crop("a", nil, nil))

			p.SetQuantity(tt.id, tt.quantity)

			assert.Equal(t, tt.wantLen, p.Len())
			assert.Equal(t, tt.wantQty, p.Quantity("a"))
			assert.Equal(t, 0, p.Quantity("zzz"))
		})
	}
}

func TestPlanner_Totals(t *testing.T) {
	p := New()
	first := crop("first", intPtr(100), intPtr(20))
	second := crop("second", intPtr(50), intPtr(10))
	p.AddCrop(first)
	p.SetQuantity("first", 3)
	p.AddCrop(second)
	p.SetQuantity("second", 2)

	assert.Equal(t, Totals{Investment: 80, Revenue: 400, NetProfit: 320}, p.Totals())
}

func TestPlanner_MissingPricesCountAsZero(t *testing.T) {
	p := New()
	p.AddCrop(crop("no-prices", nil, nil))
	p.AddCrop(crop("no-seed", intPtr(550), nil))
	p.AddCrop(crop("no-sell", nil, intPtr(30)))

	assert.Equal(t, 0, ProfitOf(p.Entries()[0]))
	assert.Equal(t, 550, ProfitOf(p.Entries()[1]))
	assert.Equal(t, -30, ProfitOf(p.Entries()[2]))
	assert.Equal(t, Totals{Investment: 30, Revenue: 550, NetProfit: 520}, p.Totals())
}

func TestPlanner_EmptyTotals(t *testing.T) {
	assert.Equal(t, Totals{}, New().Totals())
}

func TestPlanner_EntriesIsACopy(t *testing.T) {
	p := New()
	p.AddCrop(crop("a", nil, nil))

	entries := p.Entries()
	entries[0].Quantity = 99

	assert.Equal(t, 1, p.Quantity("a"))
}

func TestFromEntries(t *testing.T) {
	p := FromEntries([]Entry{
		{Crop: crop("a", nil, nil), Quantity: 2},
		{Crop: crop("b", nil, nil), Quantity: 0},
		{Crop: crop("a", nil, nil), Quantity: 3},
		{Crop: crop("c", nil, nil), Quantity: 1},
	})

	require.Equal(t, 2, p.Len())
	assert.Equal(t, 5, p.Quantity("a"))
	assert.Equal(t, 0, p.Quantity("b"))
	assert.Equal(t, 1, p.Quantity("c"))
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{Crop: crop("first", intPtr(100), intPtr(20)), Quantity: 3},
		{Crop: crop("second", intPtr(50), intPtr(10)), Quantity: 2},
	}

	s := Summarize(entries)

	require.Len(t, s.Items, 2)
	assert.Equal(t, ItemSummary{
		CropID: "first", Name: "first", Quantity: 3,
		SellPrice: intPtr(100), SeedPrice: intPtr(20),
		Investment: 60, Revenue: 300, Profit: 240,
	}, s.Items[0])
	assert.Equal(t, 80, s.Items[1].Profit)
	assert.Equal(t, Totals{Investment: 80, Revenue: 400, NetProfit: 320}, s.Totals)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
}
