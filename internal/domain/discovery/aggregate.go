package discovery

import (
	"github.com/google/uuid"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// SourcedResults holds the filtered view of each recipe source. All three
// slices are always non-nil so callers can distinguish "computed and empty"
// from "absent" and decide independently whether to trigger generation.
type SourcedResults struct {
	Local     []recipe.Recipe `json:"local"`
	Quick     []recipe.Recipe `json:"quick"`
	Generated []recipe.Recipe `json:"generated"`
}

// Aggregate runs the filter independently over each source collection.
// Sources are never pre-merged: UI ordering and badges depend on
// source-tagged output. Cross-source dedup is a display concern; see
// Combined.
func Aggregate(local, quick, generated []recipe.Recipe, c FilterCriteria) SourcedResults {
	return SourcedResults{
		Local:     Apply(local, c),
		Quick:     Apply(quick, c),
		Generated: Apply(generated, c),
	}
}

// Combined flattens the three lanes into one list, deduplicating by recipe
// id. First seen wins, and lanes are visited in render priority order:
// Local, then QuickGenerated, then Generated.
func (r SourcedResults) Combined() []recipe.Recipe {
	seen := make(map[uuid.UUID]bool, len(r.Local)+len(r.Quick)+len(r.Generated))
	out := make([]recipe.Recipe, 0, len(r.Local)+len(r.Quick)+len(r.Generated))
	for _, lane := range [][]recipe.Recipe{r.Local, r.Quick, r.Generated} {
		for _, rec := range lane {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			out = append(out, rec)
		}
	}
	return out
}

// LocalAndGeneratedEmpty reports whether the standard lanes produced
// nothing. This is the condition that proposes (never auto-fires) a
// standard generation.
func (r SourcedResults) LocalAndGeneratedEmpty() bool {
	return len(r.Local) == 0 && len(r.Generated) == 0
}
