package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewTextFilter(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		sentinels  []string
		wantActive bool
		wantValue  string
	}{
		{"empty is inactive", "", []string{AllSeasons}, false, ""},
		{"sentinel is inactive", AllSeasons, []string{AllSeasons}, false, ""},
		{"second sentinel is inactive", "All", []string{AllSeasons, "All"}, false, ""},
		{"value is kept verbatim", "Spring", []string{AllSeasons}, true, "Spring"},
		{"case is preserved", "spring", nil, true, "spring"},
		{"whitespace is not trimmed", " Spring", nil, true, " Spring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFilter(tt.raw, tt.sentinels...)
			assert.Equal(t, tt.wantActive, f.Active())
			assert.Equal(t, tt.wantValue, f.Value())
		})
	}
}

func TestTextFilter_InactiveMatchesEverything(t *testing.T) {
	f := NewTextFilter("")
	assert.True(t, f.Contains("anything"))
	assert.True(t, f.Equals("anything"))
	assert.True(t, f.Contains(""))
}

func TestCropFilter_SeasonIsSubstring(t *testing.T) {
	multi := Crop{Name: "Corn", Season: "Summer, Fall"}
	single := Crop{Name: "Parsnip", Season: "Spring"}

	f := NewCropFilter("Fall")
	assert.True(t, f.Matches(multi))
	assert.False(t, f.Matches(single))

	all := NewCropFilter(AllSeasons)
	assert.True(t, all.Matches(multi))
	assert.True(t, all.Matches(single))
}

func TestFishFilter_ComposesWithAnd(t *testing.T) {
	fish := Fish{Name: "Sardine", Season: "Spring, Fall, Winter", Weather: "Any", Location: "Ocean"}

	assert.True(t, NewFishFilter("Spring", "", "Ocean").Matches(fish))
	assert.False(t, NewFishFilter("Summer", "", "Ocean").Matches(fish))
	assert.False(t, NewFishFilter("Spring", "", "River").Matches(fish))
	assert.False(t, NewFishFilter("", "Rain", "").Matches(fish))
	assert.True(t, NewFishFilter(AllSeasons, AnyWeather, AnyLocation).Matches(fish))
}

func TestBundleFilter_RoomIsExact(t *testing.T) {
	pantry := Bundle{Room: "Pantry", Name: "Spring Crops"}
	pantryRoom := Bundle{Room: "Pantry Room", Name: "Odd"}

	f := NewBundleFilter("Pantry")
	assert.True(t, f.Matches(pantry))
	assert.False(t, f.Matches(pantryRoom))

	assert.True(t, NewBundleFilter(AllRooms).Matches(pantryRoom))
}

func TestRecipeFilter(t *testing.T) {
	dinner := Recipe{Name: "Pizza", Description: strPtr("Dinner")}
	uncategorized := Recipe{Name: "Fried Egg"}

	f := NewRecipeFilter("Dinner")
	assert.True(t, f.Matches(dinner))
	assert.False(t, f.Matches(uncategorized))

	all := NewRecipeFilter(AllCategories)
	assert.True(t, all.Matches(uncategorized))
}

func TestCropPricesOrZero(t *testing.T) {
	price := 35
	c := Crop{SellPrice: &price}
	assert.Equal(t, 35, c.SellPriceOrZero())
	assert.Equal(t, 0, c.SeedPriceOrZero())
}
