// Package favorites tracks the recipes a player has starred.
package favorites

import (
	"slices"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
)

// Set is an ordered set of recipe ids. Ids keep the order they were added in.
type Set struct {
	ids []string
}

// NewSet creates a set holding ids, dropping duplicates and empty ids
func NewSet(ids ...string) *Set {
	s := &Set{}
	for _, id := range ids {
		if id != "" && !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle adds id when absent and removes it when present.
// It reports whether id is a favorite afterwards.
func (s *Set) Toggle(id string) bool {
	if s.Contains(id) {
		s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Contains reports whether id is a favorite
func (s *Set) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the favorite ids in the order they were added
func (s *Set) IDs() []string {
	if s.ids == nil {
		return []string{}
	}
	return slices.Clone(s.ids)
}

// Len returns the number of favorites
func (s *Set) Len() int {
	return len(s.ids)
}

// Filter keeps the recipes in set, preserving the order of recipes
func Filter(recipes []domain.Recipe, set *Set) []domain.Recipe {
	out := make([]domain.Recipe, 0, set.Len())
	for _, r := range recipes {
		if set.Contains(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
