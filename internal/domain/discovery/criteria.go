// Package discovery contains the pure core of the recipe discovery engine:
// filter criteria, the predicate filter, the dietary conflict resolver and
// the multi-source aggregator. Everything in this package is synchronous,
// side-effect free and total over its inputs.
package discovery

import (
	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// Persona biases generation requests toward a cooking style. It never
// affects local filtering.
type Persona string

const (
	PersonaNone    Persona = ""
	PersonaFamily  Persona = "family"
	PersonaFitness Persona = "fitness"
	PersonaGourmet Persona = "gourmet"
	PersonaStudent Persona = "student"
)

// TimeTier is a named cooking-time bucket. The two quick tiers gate the
// quick generation lane.
type TimeTier string

const (
	TierNone    TimeTier = "none"
	TierUnder20 TimeTier = "under_20"
	TierUnder30 TimeTier = "under_30"
)

// TierFor classifies a max-total-time bound in minutes. Zero means unset.
func TierFor(maxTotalTime int) TimeTier {
	switch {
	case maxTotalTime <= 0:
		return TierNone
	case maxTotalTime <= 20:
		return TierUnder20
	case maxTotalTime <= 30:
		return TierUnder30
	default:
		return TierNone
	}
}

// IsQuick reports whether the tier belongs to the quick generation lane.
func (t TimeTier) IsQuick() bool {
	return t == TierUnder20 || t == TierUnder30
}

// MaxMinutes returns the upper bound the tier stands for, or 0 for none.
func (t TimeTier) MaxMinutes() int {
	switch t {
	case TierUnder20:
		return 20
	case TierUnder30:
		return 30
	default:
		return 0
	}
}

// FilterCriteria is the single filter state applied to every source.
// Zero values act as wildcards except Difficulty, which recipes must match
// exactly.
type FilterCriteria struct {
	Cuisine      recipe.CuisineType      `json:"cuisine"`
	Difficulty   recipe.DifficultyLevel  `json:"difficulty"`
	DietaryTags  []recipe.DietaryTag     `json:"dietary_tags"`
	MaxTotalTime int                     `json:"max_total_time"` // minutes, 0 = unset
	Protein      string                  `json:"protein"`        // ingredient-name substring
	Query        string                  `json:"query"`          // free text against title or ingredients
	Persona      Persona                 `json:"persona"`        // generation only
}

// Tier returns the cooking-time tier the criteria currently sit in.
func (c FilterCriteria) Tier() TimeTier {
	return TierFor(c.MaxTotalTime)
}

// Clone returns a deep copy so criteria can be handed out without sharing
// the tag slice with session state.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	if c.DietaryTags != nil {
		out.DietaryTags = append([]recipe.DietaryTag(nil), c.DietaryTags...)
	}
	return out
}

// HasTag reports whether the criteria already request the given tag.
func (c FilterCriteria) HasTag(tag recipe.DietaryTag) bool {
	for _, t := range c.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}
