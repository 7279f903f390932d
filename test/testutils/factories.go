// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	faker  *gofakeit.Faker
	recipe recipe.Recipe
}

// NewRecipeBuilder creates a new recipe builder with randomized defaults.
// The seed makes runs reproducible.
func NewRecipeBuilder(seed int64) *RecipeBuilder {
	faker := gofakeit.New(seed)

	return &RecipeBuilder{
		faker: faker,
		recipe: recipe.Recipe{
			ID:         uuid.New(),
			Title:      faker.Dinner(),
			Cuisine:    recipe.CuisineItalian,
			Difficulty: recipe.DifficultyMedium,
			PrepTime:   15,
			CookTime:   30,
			Servings:   2,
			Ingredients: []recipe.Ingredient{
				{Name: faker.Vegetable(), Amount: 200, Unit: recipe.UnitGram},
				{Name: faker.Fruit(), Amount: 1, Unit: recipe.UnitPiece},
			},
			Steps:  []string{faker.Sentence(6), faker.Sentence(8)},
			Source: recipe.SourceLocal,
		},
	}
}

// WithID sets the recipe ID
func (rb *RecipeBuilder) WithID(id uuid.UUID) *RecipeBuilder {
	rb.recipe.ID = id
	return rb
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.recipe.Title = title
	return rb
}

// WithCuisine sets the recipe cuisine
func (rb *RecipeBuilder) WithCuisine(cuisine recipe.CuisineType) *RecipeBuilder {
	rb.recipe.Cuisine = cuisine
	return rb
}

// WithDifficulty sets the recipe difficulty
func (rb *RecipeBuilder) WithDifficulty(difficulty recipe.DifficultyLevel) *RecipeBuilder {
	rb.recipe.Difficulty = difficulty
	return rb
}

// WithTimings sets prep and cook time in minutes
func (rb *RecipeBuilder) WithTimings(prepTime, cookTime int) *RecipeBuilder {
	rb.recipe.PrepTime = prepTime
	rb.recipe.CookTime = cookTime
	return rb
}

// WithServings sets the number of servings
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.recipe.Servings = servings
	return rb
}

// WithIngredients sets the recipe ingredients
func (rb *RecipeBuilder) WithIngredients(ingredients ...recipe.Ingredient) *RecipeBuilder {
	rb.recipe.Ingredients = ingredients
	return rb
}

// WithIngredientNames replaces the ingredients with named single-unit entries
func (rb *RecipeBuilder) WithIngredientNames(names ...string) *RecipeBuilder {
	ingredients := make([]recipe.Ingredient, 0, len(names))
	for _, name := range names {
		ingredients = append(ingredients, recipe.Ingredient{
			Name:   name,
			Amount: 1,
			Unit:   recipe.UnitPiece,
		})
	}
	rb.recipe.Ingredients = ingredients
	return rb
}

// WithDietaryTags sets the dietary notes
func (rb *RecipeBuilder) WithDietaryTags(tags ...recipe.DietaryTag) *RecipeBuilder {
	rb.recipe.DietaryNotes = tags
	return rb
}

// WithSource sets the recipe source
func (rb *RecipeBuilder) WithSource(source recipe.Source) *RecipeBuilder {
	rb.recipe.Source = source
	return rb
}

// Build returns the constructed recipe
func (rb *RecipeBuilder) Build() recipe.Recipe {
	return rb.recipe
}

// RecipeBatch builds n distinct recipes sharing the given cuisine and source
func RecipeBatch(n int, cuisine recipe.CuisineType, source recipe.Source) []recipe.Recipe {
	recipes := make([]recipe.Recipe, 0, n)
	for i := 0; i < n; i++ {
		recipes = append(recipes, NewRecipeBuilder(int64(i+1)).
			WithCuisine(cuisine).
			WithSource(source).
			Build())
	}
	return recipes
}
