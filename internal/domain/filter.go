package domain

import "strings"

// TextFilter is an optional filter on a single string field.
//
// Normalization: an empty raw value, or a raw value equal to one of the sentinels,
// produces an inactive filter. Any other value is kept verbatim (no trimming, case
// preserved). An inactive filter matches every record.
type TextFilter struct {
	value  string
	active bool
}

// NewTextFilter builds a filter from a raw query value
func NewTextFilter(raw string, sentinels ...string) TextFilter {
	if raw == "" {
		return TextFilter{}
	}
	for _, s := range sentinels {
		if raw == s {
			return TextFilter{}
		}
	}
	return TextFilter{value: raw, active: true}
}

// Active reports whether the filter narrows results
func (f TextFilter) Active() bool {
	return f.active
}

// Value returns the filter value, or "" when inactive
func (f TextFilter) Value() string {
	return f.value
}

// Contains matches fields that contain the filter value as a substring
func (f TextFilter) Contains(field string) bool {
	return !f.active || strings.Contains(field, f.value)
}

// Equals matches fields exactly equal to the filter value
func (f TextFilter) Equals(field string) bool {
	return !f.active || field == f.value
}

// CropFilter narrows crop listings. Season matches by containment.
type CropFilter struct {
	Season TextFilter
}

// NewCropFilter normalizes raw query values for the crops listing
func NewCropFilter(season string) CropFilter {
	return CropFilter{Season: NewTextFilter(season, AllSeasons)}
}

// Matches applies the filter to a crop
func (f CropFilter) Matches(c Crop) bool {
	return f.Season.Contains(c.Season)
}

// FishFilter narrows fish listings. All fields match by containment and compose with AND.
type FishFilter struct {
	Season   TextFilter
	Weather  TextFilter
	Location TextFilter
}

// NewFishFilter normalizes raw query values for the fish listing
func NewFishFilter(season, weather, location string) FishFilter {
	return FishFilter{
		Season:   NewTextFilter(season, AllSeasons),
		Weather:  NewTextFilter(weather, AnyWeather),
		Location: NewTextFilter(location, AnyLocation),
	}
}

// Matches applies every active field to a fish
func (f FishFilter) Matches(fish Fish) bool {
	return f.Season.Contains(fish.Season) &&
		f.Weather.Contains(fish.Weather) &&
		f.Location.Contains(fish.Location)
}

// BundleFilter narrows bundle listings. Room is a closed category and matches exactly.
type BundleFilter struct {
	Room TextFilter
}

// NewBundleFilter normalizes raw query values for the bundles listing
func NewBundleFilter(room string) BundleFilter {
	return BundleFilter{Room: NewTextFilter(room, AllRooms)}
}

// Matches applies the filter to a bundle
func (f BundleFilter) Matches(b Bundle) bool {
	return f.Room.Equals(b.Room)
}

// RecipeFilter narrows recipe listings by category label, exact match
type RecipeFilter struct {
	Category TextFilter
}

// NewRecipeFilter normalizes raw query values for the recipes listing
func NewRecipeFilter(category string) RecipeFilter {
	return RecipeFilter{Category: NewTextFilter(category, AllCategories)}
}

// Matches applies the filter to a recipe. Recipes without a category only match
// an inactive filter.
func (f RecipeFilter) Matches(r Recipe) bool {
	if !f.Category.Active() {
		return true
	}
	return r.Description != nil && f.Category.Equals(*r.Description)
}
