// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). The presentation layer consumes the discovery engine solely
// through these types.
package inbound

import (
	"context"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// Lane names one of the two generation pathways.
type Lane string

const (
	LaneQuick    Lane = "quick"
	LaneStandard Lane = "standard"
)

// DiscoveryService is the façade exposed to the presentation layer. A
// service instance corresponds to one discovery session: criteria mutations
// recompute aggregation synchronously and may trigger background generation.
type DiscoveryService interface {
	// UpdateCriteria applies a partial criteria edit, repairs dietary
	// conflicts, recomputes the aggregated view and evaluates generation
	// triggers. One call per logical edit, regardless of how many fields
	// changed.
	UpdateCriteria(ctx context.Context, update CriteriaUpdate) (*DiscoveryView, error)

	// CurrentResults returns the aggregated, source-tagged view for the
	// current criteria.
	CurrentResults(ctx context.Context) *DiscoveryView

	// Criteria returns a copy of the session's current filter criteria.
	Criteria() discovery.FilterCriteria

	// IsGenerating reports whether a generation request is in flight on the
	// given lane.
	IsGenerating(lane Lane) bool

	// GenerateStandard issues a standard-lane generation. It is only ever
	// called after explicit user confirmation; the empty-result trigger
	// proposes it but never fires it.
	GenerateStandard(ctx context.Context) error
}

// CriteriaUpdate is a partial criteria edit. Nil fields are untouched, so a
// single call captures one logical user edit.
type CriteriaUpdate struct {
	Cuisine          *recipe.CuisineType     `json:"cuisine,omitempty"`
	Difficulty       *recipe.DifficultyLevel `json:"difficulty,omitempty"`
	DietaryTags      *[]recipe.DietaryTag    `json:"dietary_tags,omitempty"`
	AddDietaryTag    *recipe.DietaryTag      `json:"add_dietary_tag,omitempty"`
	RemoveDietaryTag *recipe.DietaryTag      `json:"remove_dietary_tag,omitempty"`
	MaxTotalTime     *int                    `json:"max_total_time,omitempty"`
	Protein          *string                 `json:"protein,omitempty"`
	Query            *string                 `json:"query,omitempty"`
	Persona          *discovery.Persona      `json:"persona,omitempty"`
}

// DiscoveryView is the snapshot handed to the presentation layer. Every
// recipe in it has passed the same criteria evaluation regardless of source.
type DiscoveryView struct {
	Criteria discovery.FilterCriteria `json:"criteria"`
	Results  discovery.SourcedResults `json:"results"`

	// Combined is the deduplicated single-list rendering of Results,
	// Local > QuickGenerated > Generated priority.
	Combined []recipe.Recipe `json:"combined"`

	// Conflicts reports dietary exclusivity repairs made by the last edit.
	Conflicts []discovery.Conflict `json:"conflicts,omitempty"`

	// UsingCachedData hints that generated recipes came from the persisted
	// cache rather than a fresh service call. Cosmetic metadata only.
	UsingCachedData bool `json:"using_cached_data"`

	GeneratingQuick    bool `json:"generating_quick"`
	GeneratingStandard bool `json:"generating_standard"`

	// SuggestStandardGeneration is set when the combined Local+Generated
	// filtered result is empty. The presentation layer asks the user for
	// confirmation before calling GenerateStandard.
	SuggestStandardGeneration bool `json:"suggest_standard_generation"`
}
