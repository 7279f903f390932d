package discovery

import (
	"fmt"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// exclusivePairs lists the dietary tag combinations that can never coexist.
var exclusivePairs = [][2]recipe.DietaryTag{
	{recipe.TagVegetarian, recipe.TagNonVegetarian},
	{recipe.TagVegan, recipe.TagNonVegetarian},
}

// Conflict reports a mutually exclusive tag pair found in a criteria set.
type Conflict struct {
	First   recipe.DietaryTag
	Second  recipe.DietaryTag
	Message string
}

// ResolveConflicts validates a dietary tag set against the fixed exclusivity
// pairs. When both members of a pair are present, BOTH are removed rather
// than guessing which one the user meant, and a conflict describing the pair
// is returned. Relative order of surviving tags is preserved. The input
// slice is not modified.
func ResolveConflicts(tags []recipe.DietaryTag) ([]recipe.DietaryTag, []Conflict) {
	var conflicts []Conflict
	drop := map[recipe.DietaryTag]bool{}

	for _, pair := range exclusivePairs {
		if containsTag(tags, pair[0]) && containsTag(tags, pair[1]) {
			drop[pair[0]] = true
			drop[pair[1]] = true
			conflicts = append(conflicts, Conflict{
				First:  pair[0],
				Second: pair[1],
				Message: fmt.Sprintf(
					"%q and %q cannot be combined; both restrictions were removed",
					pair[0], pair[1],
				),
			})
		}
	}

	if len(drop) == 0 {
		return tags, nil
	}

	out := make([]recipe.DietaryTag, 0, len(tags))
	for _, t := range tags {
		if !drop[t] {
			out = append(out, t)
		}
	}
	return out, conflicts
}

func containsTag(tags []recipe.DietaryTag, tag recipe.DietaryTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
