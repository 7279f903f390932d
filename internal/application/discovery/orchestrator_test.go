package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
	apperrors "github.com/alchemorsel/discovery/pkg/errors"
	"github.com/alchemorsel/discovery/test/testutils"
)

// stubGenerator is a canned GenerationService for orchestrator tests.
type stubGenerator struct {
	recipes []recipe.Recipe
	err     error
	calls   int
	lastReq outbound.GenerateRequest
}

func (g *stubGenerator) Generate(ctx context.Context, req outbound.GenerateRequest) ([]recipe.Recipe, error) {
	g.calls++
	g.lastReq = req
	return g.recipes, g.err
}

func TestShouldTriggerQuick(t *testing.T) {
	orch := NewOrchestrator(&stubGenerator{}, zap.NewNop())

	quick := discovery.FilterCriteria{MaxTotalTime: 20}
	slow := discovery.FilterCriteria{MaxTotalTime: 90}
	unset := discovery.FilterCriteria{}

	tests := []struct {
		name            string
		prev, cur       discovery.FilterCriteria
		quickCacheEmpty bool
		inFlight        bool
		want            bool
	}{
		{
			name: "entering a quick tier with empty cache fires",
			prev: unset, cur: quick,
			quickCacheEmpty: true,
			want:            true,
		},
		{
			name: "non-quick tier never fires",
			prev: unset, cur: slow,
			quickCacheEmpty: true,
			want:            false,
		},
		{
			name: "in-flight request drops the event",
			prev: unset, cur: quick,
			quickCacheEmpty: true,
			inFlight:        true,
			want:            false,
		},
		{
			name: "populated quick cache suppresses the trigger",
			prev: unset, cur: quick,
			quickCacheEmpty: false,
			want:            false,
		},
		{
			name: "cuisine change while quick fires",
			prev: discovery.FilterCriteria{MaxTotalTime: 20, Cuisine: recipe.CuisineItalian},
			cur:  discovery.FilterCriteria{MaxTotalTime: 20, Cuisine: recipe.CuisineThai},
			quickCacheEmpty: true,
			want:            true,
		},
		{
			name: "dietary tag change while quick fires",
			prev: discovery.FilterCriteria{MaxTotalTime: 30},
			cur:  discovery.FilterCriteria{MaxTotalTime: 30, DietaryTags: []recipe.DietaryTag{recipe.TagVegan}},
			quickCacheEmpty: true,
			want:            true,
		},
		{
			name: "persona change while quick fires",
			prev: discovery.FilterCriteria{MaxTotalTime: 20},
			cur:  discovery.FilterCriteria{MaxTotalTime: 20, Persona: discovery.PersonaFitness},
			quickCacheEmpty: true,
			want:            true,
		},
		{
			name: "unrelated change while quick does not fire",
			prev: discovery.FilterCriteria{MaxTotalTime: 20},
			cur:  discovery.FilterCriteria{MaxTotalTime: 20, Query: "noodles"},
			quickCacheEmpty: true,
			want:            false,
		},
		{
			name: "tier switch between quick tiers without other changes does not fire",
			prev: discovery.FilterCriteria{MaxTotalTime: 20},
			cur:  discovery.FilterCriteria{MaxTotalTime: 30},
			quickCacheEmpty: true,
			want:            false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orch.ShouldTriggerQuick(tt.prev, tt.cur, tt.quickCacheEmpty, tt.inFlight)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuickRequest(t *testing.T) {
	orch := NewOrchestrator(&stubGenerator{}, zap.NewNop())

	t.Run("time bound comes from the tier", func(t *testing.T) {
		req := orch.QuickRequest(discovery.FilterCriteria{MaxTotalTime: 25})

		assert.Equal(t, 30, req.MaxTotalTime)
		assert.Equal(t, 2, req.Servings)
	})

	t.Run("tags are copied not shared", func(t *testing.T) {
		c := discovery.FilterCriteria{
			MaxTotalTime: 20,
			DietaryTags:  []recipe.DietaryTag{recipe.TagVegan},
		}

		req := orch.QuickRequest(c)
		req.DietaryTags[0] = recipe.TagKeto

		assert.Equal(t, recipe.TagVegan, c.DietaryTags[0])
	})
}

func TestStandardRequest(t *testing.T) {
	orch := NewOrchestrator(&stubGenerator{}, zap.NewNop())

	req := orch.StandardRequest(discovery.FilterCriteria{
		Cuisine:      recipe.CuisineFrench,
		MaxTotalTime: 90,
		Persona:      discovery.PersonaGourmet,
	})

	assert.Equal(t, recipe.CuisineFrench, req.Cuisine)
	assert.Equal(t, 90, req.MaxTotalTime)
	assert.Equal(t, discovery.PersonaGourmet, req.Persona)
}

func TestGenerate(t *testing.T) {
	t.Run("stamps results with the lane source", func(t *testing.T) {
		gen := &stubGenerator{
			recipes: testutils.RecipeBatch(2, recipe.CuisineItalian, recipe.SourceLocal),
		}
		orch := NewOrchestrator(gen, zap.NewNop())

		got, err := orch.Generate(context.Background(), outbound.GenerateRequest{}, recipe.SourceQuickGenerated)

		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, recipe.SourceQuickGenerated, r.Source)
		}
	})

	t.Run("drops malformed recipes instead of failing the batch", func(t *testing.T) {
		good := testutils.NewRecipeBuilder(1).Build()
		bad := testutils.NewRecipeBuilder(2).WithTitle("").Build()
		gen := &stubGenerator{recipes: []recipe.Recipe{bad, good}}
		orch := NewOrchestrator(gen, zap.NewNop())

		got, err := orch.Generate(context.Background(), outbound.GenerateRequest{}, recipe.SourceGenerated)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, good.Title, got[0].Title)
	})

	t.Run("wraps service failures as generation errors", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("connection refused")}
		orch := NewOrchestrator(gen, zap.NewNop())

		_, err := orch.Generate(context.Background(), outbound.GenerateRequest{}, recipe.SourceGenerated)

		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeGenerationFailed))
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		orch := NewOrchestrator(&stubGenerator{}, zap.NewNop())

		got, err := orch.Generate(context.Background(), outbound.GenerateRequest{}, recipe.SourceGenerated)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
