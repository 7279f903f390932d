package discovery

import (
	"strings"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// Apply filters recipes against the criteria. The filter is a pure
// conjunction: a recipe either passes every active predicate or is excluded.
// Input order is preserved and the input slice is never mutated.
func Apply(recipes []recipe.Recipe, c FilterCriteria) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// Matches evaluates the full predicate conjunction for a single recipe.
func Matches(r recipe.Recipe, c FilterCriteria) bool {
	if !c.Cuisine.IsWildcard() && r.Cuisine != c.Cuisine {
		return false
	}
	if c.Difficulty != "" && r.Difficulty != c.Difficulty {
		return false
	}
	if !r.HasAllDietaryTags(c.DietaryTags) {
		return false
	}
	if c.MaxTotalTime > 0 && r.TotalTime() > c.MaxTotalTime {
		return false
	}
	if c.Protein != "" && !r.IngredientNamed(c.Protein) {
		return false
	}
	if c.Query != "" && !matchesQuery(r, c.Query) {
		return false
	}
	return true
}

// matchesQuery checks the free-text query against the title or any
// ingredient name, case-insensitively.
func matchesQuery(r recipe.Recipe, query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	return r.IngredientNamed(query)
}
