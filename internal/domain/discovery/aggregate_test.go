package discovery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/test/testutils"
)

func TestAggregate(t *testing.T) {
	local := testutils.RecipeBatch(2, recipe.CuisineItalian, recipe.SourceLocal)
	quick := testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceQuickGenerated)
	generated := testutils.RecipeBatch(2, recipe.CuisineThai, recipe.SourceGenerated)

	t.Run("filters each source independently", func(t *testing.T) {
		got := Aggregate(local, quick, generated, FilterCriteria{Cuisine: recipe.CuisineItalian})

		assert.Len(t, got.Local, 2)
		assert.Len(t, got.Quick, 1)
		assert.Empty(t, got.Generated)
	})

	t.Run("always returns three non-nil slices", func(t *testing.T) {
		got := Aggregate(nil, nil, nil, FilterCriteria{})

		require.NotNil(t, got.Local)
		require.NotNil(t, got.Quick)
		require.NotNil(t, got.Generated)
	})

	t.Run("sources are never merged", func(t *testing.T) {
		got := Aggregate(local, quick, generated, FilterCriteria{})

		for _, r := range got.Local {
			assert.Equal(t, recipe.SourceLocal, r.Source)
		}
		for _, r := range got.Quick {
			assert.Equal(t, recipe.SourceQuickGenerated, r.Source)
		}
		for _, r := range got.Generated {
			assert.Equal(t, recipe.SourceGenerated, r.Source)
		}
	})
}

func TestCombined(t *testing.T) {
	t.Run("flattens lanes in priority order", func(t *testing.T) {
		results := SourcedResults{
			Local:     testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceLocal),
			Quick:     testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceQuickGenerated),
			Generated: testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceGenerated),
		}

		got := results.Combined()

		require.Len(t, got, 3)
		assert.Equal(t, recipe.SourceLocal, got[0].Source)
		assert.Equal(t, recipe.SourceQuickGenerated, got[1].Source)
		assert.Equal(t, recipe.SourceGenerated, got[2].Source)
	})

	t.Run("deduplicates by id with local winning", func(t *testing.T) {
		id := uuid.New()
		localCopy := testutils.NewRecipeBuilder(1).WithID(id).WithSource(recipe.SourceLocal).Build()
		generatedCopy := testutils.NewRecipeBuilder(2).WithID(id).WithSource(recipe.SourceGenerated).Build()

		results := SourcedResults{
			Local:     []recipe.Recipe{localCopy},
			Quick:     []recipe.Recipe{},
			Generated: []recipe.Recipe{generatedCopy},
		}

		got := results.Combined()

		require.Len(t, got, 1)
		assert.Equal(t, recipe.SourceLocal, got[0].Source)
	})

	t.Run("quick wins over generated", func(t *testing.T) {
		id := uuid.New()
		quickCopy := testutils.NewRecipeBuilder(1).WithID(id).WithSource(recipe.SourceQuickGenerated).Build()
		generatedCopy := testutils.NewRecipeBuilder(2).WithID(id).WithSource(recipe.SourceGenerated).Build()

		results := SourcedResults{
			Quick:     []recipe.Recipe{quickCopy},
			Generated: []recipe.Recipe{generatedCopy},
		}

		got := results.Combined()

		require.Len(t, got, 1)
		assert.Equal(t, recipe.SourceQuickGenerated, got[0].Source)
	})
}

func TestLocalAndGeneratedEmpty(t *testing.T) {
	t.Run("true when both standard lanes are empty", func(t *testing.T) {
		results := SourcedResults{
			Quick: testutils.RecipeBatch(2, recipe.CuisineItalian, recipe.SourceQuickGenerated),
		}

		assert.True(t, results.LocalAndGeneratedEmpty())
	})

	t.Run("false when the generated lane has results", func(t *testing.T) {
		results := SourcedResults{
			Generated: testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceGenerated),
		}

		assert.False(t, results.LocalAndGeneratedEmpty())
	})

	t.Run("false when the local lane has results", func(t *testing.T) {
		results := SourcedResults{
			Local: testutils.RecipeBatch(1, recipe.CuisineItalian, recipe.SourceLocal),
		}

		assert.False(t, results.LocalAndGeneratedEmpty())
	})
}
