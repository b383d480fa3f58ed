package catalog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// cloneSlice returns a private, never-nil copy so results shared with a cache
// can be sorted and encoded as [] when empty
func cloneSlice[T any](in []T) []T {
	return append(make([]T, 0, len(in)), in...)
}

// sortByName orders items with English collation, so "apple" sorts next to
// "Apple" and accented names sort by their base letter. Equal keys keep their
// store order.
func sortByName[T any](items []T, keys ...func(T) string) {
	// Collators keep scratch buffers and are not safe for concurrent use
	c := collate.New(language.English)
	slices.SortStableFunc(items, func(a, b T) int {
		for _, key := range keys {
			if cmp := c.CompareString(key(a), key(b)); cmp != 0 {
				return cmp
			}
		}
		return 0
	})
}
