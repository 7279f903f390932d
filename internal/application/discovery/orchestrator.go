package discovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
	"github.com/alchemorsel/discovery/pkg/errors"
)

// defaultServings is the fixed serving count sent with every generation
// request; the user never edits it from the discovery screen.
const defaultServings = 2

// Orchestrator decides when a generation service call is warranted and runs
// its lifecycle. It holds no session state itself: the session owns the
// caches and in-flight markers and asks the orchestrator for decisions.
type Orchestrator struct {
	gen      outbound.GenerationService
	logger   *zap.Logger
	servings int
}

// NewOrchestrator creates a generation orchestrator.
func NewOrchestrator(gen outbound.GenerationService, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		gen:      gen,
		logger:   logger.Named("orchestrator"),
		servings: defaultServings,
	}
}

// ShouldTriggerQuick evaluates the quick-lane trigger rules for one criteria
// edit. The guards mirror the lane protocol: a non-quick tier is a no-op, an
// in-flight request drops the event (never queues it), and a non-empty quick
// cache needs no refill. Given those, a trigger fires when the tier just
// became quick or when cuisine, dietary tags or persona changed while
// already in quick mode.
func (o *Orchestrator) ShouldTriggerQuick(prev, cur discovery.FilterCriteria, quickCacheEmpty, inFlight bool) bool {
	if !cur.Tier().IsQuick() {
		return false
	}
	if inFlight {
		o.logger.Debug("quick trigger dropped, request already in flight")
		return false
	}
	if !quickCacheEmpty {
		return false
	}
	if !prev.Tier().IsQuick() {
		return true
	}
	return prev.Cuisine != cur.Cuisine ||
		prev.Persona != cur.Persona ||
		!equalTags(prev.DietaryTags, cur.DietaryTags)
}

// QuickRequest builds the generation request for the quick lane. The time
// bound comes from the tier, not the raw criteria value.
func (o *Orchestrator) QuickRequest(c discovery.FilterCriteria) outbound.GenerateRequest {
	return outbound.GenerateRequest{
		Cuisine:      c.Cuisine,
		Difficulty:   c.Difficulty,
		DietaryTags:  append([]recipe.DietaryTag(nil), c.DietaryTags...),
		MaxTotalTime: c.Tier().MaxMinutes(),
		Servings:     o.servings,
		Persona:      c.Persona,
	}
}

// StandardRequest builds the generation request for the standard lane.
func (o *Orchestrator) StandardRequest(c discovery.FilterCriteria) outbound.GenerateRequest {
	return outbound.GenerateRequest{
		Cuisine:      c.Cuisine,
		Difficulty:   c.Difficulty,
		DietaryTags:  append([]recipe.DietaryTag(nil), c.DietaryTags...),
		MaxTotalTime: c.MaxTotalTime,
		Servings:     o.servings,
		Persona:      c.Persona,
	}
}

// Generate invokes the generation service and stamps the results with the
// lane's source tag. Recipes that fail structural validation are dropped
// rather than failing the batch. An empty result is not an error.
func (o *Orchestrator) Generate(ctx context.Context, req outbound.GenerateRequest, source recipe.Source) ([]recipe.Recipe, error) {
	o.logger.Info("issuing generation request",
		zap.String("cuisine", string(req.Cuisine)),
		zap.String("difficulty", string(req.Difficulty)),
		zap.Int("max_total_time", req.MaxTotalTime),
		zap.String("source", string(source)),
	)

	generated, err := o.gen.Generate(ctx, req)
	if err != nil {
		return nil, errors.NewGenerationError(err)
	}

	out := make([]recipe.Recipe, 0, len(generated))
	for _, r := range generated {
		r.Source = source
		if err := r.Validate(); err != nil {
			o.logger.Warn("dropping malformed generated recipe",
				zap.String("title", r.Title),
				zap.Error(err),
			)
			continue
		}
		out = append(out, r)
	}

	o.logger.Info("generation request completed", zap.Int("recipes", len(out)))
	return out, nil
}

func equalTags(a, b []recipe.DietaryTag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
