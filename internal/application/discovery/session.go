// Package discovery provides the application layer of the discovery engine:
// the session façade consumed by the presentation layer and the generation
// orchestrator it delegates to.
package discovery

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/ports/inbound"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
	"github.com/alchemorsel/discovery/pkg/errors"
)

// defaultDifficulty seeds new sessions; difficulty has no wildcard, so a
// session always carries a concrete value.
const defaultDifficulty = recipe.DifficultyMedium

// Session holds the mutable state of one discovery flow: current criteria,
// the three source caches, the staleness hint and the per-lane in-flight
// markers. All state is guarded by one mutex, the session's sequencing
// context; generation goroutines re-acquire it to apply their results.
type Session struct {
	logger *zap.Logger
	orch   *Orchestrator
	store  outbound.GeneratedStore

	mu              sync.Mutex
	criteria        discovery.FilterCriteria
	local           []recipe.Recipe
	quick           []recipe.Recipe
	generated       []recipe.Recipe
	results         discovery.SourcedResults
	usingCachedData bool
	inFlight        map[inbound.Lane]bool
}

// NewSession builds a session: loads the local catalog, seeds criteria from
// the user profile and cold-loads any persisted generated recipes (which
// marks the view as using cached data).
func NewSession(
	ctx context.Context,
	catalog outbound.CatalogProvider,
	profile outbound.ProfileProvider,
	orch *Orchestrator,
	store outbound.GeneratedStore,
	logger *zap.Logger,
) (*Session, error) {
	local, err := catalog.GetAll(ctx)
	if err != nil {
		return nil, errors.NewCatalogError(err)
	}

	criteria := discovery.FilterCriteria{Difficulty: defaultDifficulty}
	seed, err := profile.DefaultCriteriaSeed(ctx)
	if err != nil {
		logger.Warn("profile seed unavailable, starting with defaults", zap.Error(err))
	} else {
		if !seed.Cuisine.IsWildcard() {
			criteria.Cuisine = seed.Cuisine
		}
		tags, _ := discovery.ResolveConflicts(seed.DietaryTags)
		criteria.DietaryTags = tags
	}

	s := &Session{
		logger:   logger.Named("discovery-session"),
		orch:     orch,
		store:    store,
		criteria: criteria,
		local:    local,
		inFlight: make(map[inbound.Lane]bool),
	}

	if store != nil {
		cached, err := store.Load(ctx)
		if err != nil {
			s.logger.Debug("no persisted generated recipes", zap.Error(err))
		} else if len(cached) > 0 {
			s.generated = cached
			s.usingCachedData = true
			s.logger.Info("cold-loaded generated recipes from cache",
				zap.Int("recipes", len(cached)),
			)
		}
	}

	s.results = discovery.Aggregate(s.local, s.quick, s.generated, s.criteria)
	return s, nil
}

// UpdateCriteria applies one logical criteria edit: mutate fields, repair
// dietary conflicts, recompute aggregation once, then evaluate the quick
// generation trigger. Aggregation is synchronous; generation, when
// triggered, runs in the background and rejoins the session lock to apply
// its result.
func (s *Session) UpdateCriteria(ctx context.Context, update inbound.CriteriaUpdate) (*inbound.DiscoveryView, error) {
	s.mu.Lock()

	prev := s.criteria.Clone()
	s.applyUpdate(update)

	tags, conflicts := discovery.ResolveConflicts(s.criteria.DietaryTags)
	s.criteria.DietaryTags = tags
	for _, c := range conflicts {
		s.logger.Info("dietary conflict repaired", zap.String("message", c.Message))
	}

	s.results = discovery.Aggregate(s.local, s.quick, s.generated, s.criteria)

	var quickReq *outbound.GenerateRequest
	if s.orch.ShouldTriggerQuick(prev, s.criteria, len(s.quick) == 0, s.inFlight[inbound.LaneQuick]) {
		s.inFlight[inbound.LaneQuick] = true
		req := s.orch.QuickRequest(s.criteria)
		quickReq = &req
	}

	view := s.viewLocked(conflicts)
	s.mu.Unlock()

	if quickReq != nil {
		go s.runQuick(*quickReq)
	}
	return view, nil
}

// CurrentResults returns the aggregated view for the current criteria.
func (s *Session) CurrentResults(ctx context.Context) *inbound.DiscoveryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(nil)
}

// Criteria returns a copy of the session's current criteria.
func (s *Session) Criteria() discovery.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

// IsGenerating reports whether a request is in flight on the given lane.
func (s *Session) IsGenerating(lane inbound.Lane) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[lane]
}

// GenerateStandard issues a standard-lane generation after explicit user
// confirmation. At most one standard request runs at a time.
func (s *Session) GenerateStandard(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight[inbound.LaneStandard] {
		s.mu.Unlock()
		return errors.NewGenerationInProgressError(string(inbound.LaneStandard))
	}
	s.inFlight[inbound.LaneStandard] = true
	req := s.orch.StandardRequest(s.criteria)
	s.mu.Unlock()

	go s.runStandard(req)
	return nil
}

// runQuick completes a quick-lane request. On success the quick cache is
// replaced wholesale; on failure or empty result it is left untouched and
// the empty state stays visible. In-flight requests are never cancelled, so
// a result may land for criteria that changed meanwhile; the per-read
// re-filtering keeps stale entries invisible rather than wrong.
func (s *Session) runQuick(req outbound.GenerateRequest) {
	recipes, err := s.orch.Generate(context.Background(), req, recipe.SourceQuickGenerated)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, inbound.LaneQuick)

	if err != nil {
		s.logger.Warn("quick generation failed, cache unchanged", zap.Error(err))
		return
	}
	if len(recipes) == 0 {
		s.logger.Info("quick generation returned no recipes")
		return
	}

	s.quick = recipes
	s.results = discovery.Aggregate(s.local, s.quick, s.generated, s.criteria)
}

// runStandard completes a standard-lane request. Fresh results populate the
// generated cache, clear the cached-data hint and are persisted for the next
// session's cold load.
func (s *Session) runStandard(req outbound.GenerateRequest) {
	ctx := context.Background()
	recipes, err := s.orch.Generate(ctx, req, recipe.SourceGenerated)

	s.mu.Lock()
	delete(s.inFlight, inbound.LaneStandard)

	if err != nil || len(recipes) == 0 {
		s.mu.Unlock()
		if err != nil {
			s.logger.Warn("standard generation failed, cache unchanged", zap.Error(err))
		} else {
			s.logger.Info("standard generation returned no recipes")
		}
		return
	}

	s.generated = recipes
	s.usingCachedData = false
	s.results = discovery.Aggregate(s.local, s.quick, s.generated, s.criteria)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(ctx, recipes); err != nil {
			s.logger.Warn("failed to persist generated recipes", zap.Error(err))
		}
	}
}

// applyUpdate mutates criteria fields named by the partial update. Caller
// holds the lock.
func (s *Session) applyUpdate(u inbound.CriteriaUpdate) {
	if u.Cuisine != nil {
		s.criteria.Cuisine = *u.Cuisine
	}
	if u.Difficulty != nil {
		s.criteria.Difficulty = *u.Difficulty
	}
	if u.DietaryTags != nil {
		s.criteria.DietaryTags = append([]recipe.DietaryTag(nil), (*u.DietaryTags)...)
	}
	if u.AddDietaryTag != nil && !s.criteria.HasTag(*u.AddDietaryTag) {
		s.criteria.DietaryTags = append(s.criteria.DietaryTags, *u.AddDietaryTag)
	}
	if u.RemoveDietaryTag != nil {
		tags := s.criteria.DietaryTags[:0:0]
		for _, t := range s.criteria.DietaryTags {
			if t != *u.RemoveDietaryTag {
				tags = append(tags, t)
			}
		}
		s.criteria.DietaryTags = tags
	}
	if u.MaxTotalTime != nil {
		s.criteria.MaxTotalTime = *u.MaxTotalTime
	}
	if u.Protein != nil {
		s.criteria.Protein = *u.Protein
	}
	if u.Query != nil {
		s.criteria.Query = *u.Query
	}
	if u.Persona != nil {
		s.criteria.Persona = *u.Persona
	}
}

// viewLocked builds the presentation snapshot. Caller holds the lock.
func (s *Session) viewLocked(conflicts []discovery.Conflict) *inbound.DiscoveryView {
	return &inbound.DiscoveryView{
		Criteria:                  s.criteria.Clone(),
		Results:                   s.results,
		Combined:                  s.results.Combined(),
		Conflicts:                 conflicts,
		UsingCachedData:           s.usingCachedData,
		GeneratingQuick:           s.inFlight[inbound.LaneQuick],
		GeneratingStandard:        s.inFlight[inbound.LaneStandard],
		SuggestStandardGeneration: s.results.LocalAndGeneratedEmpty(),
	}
}

var _ inbound.DiscoveryService = (*Session)(nil)
