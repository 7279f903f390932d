// Package recipe contains the core domain model for the discovery engine.
// Recipes are immutable value types: once constructed they are never
// mutated, only replaced wholesale in their source cache.
package recipe

import (
	"strings"

	"github.com/google/uuid"
)

// Recipe represents a single recipe as surfaced by the discovery engine.
// The Source field records provenance and drives dedup priority.
type Recipe struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Cuisine      CuisineType     `json:"cuisine"`
	Difficulty   DifficultyLevel `json:"difficulty"`
	PrepTime     int             `json:"prep_time"` // minutes
	CookTime     int             `json:"cook_time"` // minutes
	Servings     int             `json:"servings"`
	Ingredients  []Ingredient    `json:"ingredients"`
	Steps        []string        `json:"steps"`
	DietaryNotes []DietaryTag    `json:"dietary_notes"`
	Source       Source          `json:"source"`
}

// Ingredient is an ordered element of a recipe's ingredient list.
type Ingredient struct {
	Name   string          `json:"name"`
	Amount float64         `json:"amount"`
	Unit   MeasurementUnit `json:"unit"`
	Notes  string          `json:"notes,omitempty"`
}

// New constructs a validated Recipe with a fresh identity.
func New(title string, cuisine CuisineType, difficulty DifficultyLevel, source Source) (Recipe, error) {
	r := Recipe{
		ID:         uuid.New(),
		Title:      title,
		Cuisine:    cuisine,
		Difficulty: difficulty,
		Servings:   defaultServings,
		Source:     source,
	}
	if err := r.Validate(); err != nil {
		return Recipe{}, err
	}
	return r, nil
}

const defaultServings = 2

// Validate checks the structural invariants of a recipe. Catalog entries are
// assumed pre-validated by the provider; this guards generated payloads.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return ErrNegativeTime
	}
	if r.Servings <= 0 {
		return ErrInvalidServings
	}
	for _, ing := range r.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	if !r.Source.Valid() {
		return ErrUnknownSource
	}
	return nil
}

// Validate checks a single ingredient.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyIngredientName
	}
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// TotalTime returns prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasDietaryTag reports whether the recipe carries the given tag.
func (r Recipe) HasDietaryTag(tag DietaryTag) bool {
	for _, t := range r.DietaryNotes {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllDietaryTags reports whether the recipe's dietary notes are a
// superset of the requested tags. An empty request always passes.
func (r Recipe) HasAllDietaryTags(tags []DietaryTag) bool {
	for _, tag := range tags {
		if !r.HasDietaryTag(tag) {
			return false
		}
	}
	return true
}

// IngredientNamed reports whether any ingredient name contains the given
// substring, case-insensitively.
func (r Recipe) IngredientNamed(substr string) bool {
	if substr == "" {
		return true
	}
	needle := strings.ToLower(substr)
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), needle) {
			return true
		}
	}
	return false
}
