package catalog

import (
	"context"
	"strings"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/metrics"
)

// SearchResult is one hit of a global name search
type SearchResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Category *string `json:"category,omitempty"`
}

// Search matches the query case-insensitively against recipe, fish and crop
// names. Results come grouped in that order, each group sorted by name and
// capped at MaxResultsPerType. Queries shorter than MinSearchLength return
// no results.
func (s *service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]SearchResult, 0)
	if len([]rune(needle)) < MinSearchLength {
		return results, nil
	}
	metrics.SearchesPerformed.Inc()

	recipes, err := s.ListRecipes(ctx, domain.RecipeFilter{})
	if err != nil {
		return nil, err
	}
	fish, err := s.ListFish(ctx, domain.FishFilter{})
	if err != nil {
		return nil, err
	}
	crops, err := s.ListCrops(ctx, domain.CropFilter{})
	if err != nil {
		return nil, err
	}

	results = appendMatches(results, needle, recipes, func(r domain.Recipe) SearchResult {
		return SearchResult{ID: r.ID, Name: r.Name, Type: ResultTypeRecipe, Category: r.Description}
	})
	results = appendMatches(results, needle, fish, func(f domain.Fish) SearchResult {
		return SearchResult{ID: f.ID, Name: f.Name, Type: ResultTypeFish}
	})
	results = appendMatches(results, needle, crops, func(c domain.Crop) SearchResult {
		return SearchResult{ID: c.ID, Name: c.Name, Type: ResultTypeCrop}
	})
	return results, nil
}

func appendMatches[T any](results []SearchResult, needle string, items []T, toResult func(T) SearchResult) []SearchResult {
	added := 0
	for _, item := range items {
		if added == MaxResultsPerType {
			break
		}
		r := toResult(item)
		if strings.Contains(strings.ToLower(r.Name), needle) {
			results = append(results, r)
			added++
		}
	}
	return results
}
