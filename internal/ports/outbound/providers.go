// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the collaborators the discovery core depends on; the
// core never sees their concrete implementations.
package outbound

import (
	"context"
	"time"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/domain/recipe"
)

// CatalogProvider supplies the static local recipe catalog. Implementations
// must be side-effect free and idempotent; entries are assumed already
// validated.
type CatalogProvider interface {
	GetAll(ctx context.Context) ([]recipe.Recipe, error)
}

// GenerateRequest carries the constraints forwarded to the generation
// service. MaxTotalTime of zero means unbounded.
type GenerateRequest struct {
	Cuisine      recipe.CuisineType
	Difficulty   recipe.DifficultyLevel
	DietaryTags  []recipe.DietaryTag
	MaxTotalTime int // minutes
	Servings     int
	Persona      discovery.Persona
}

// GenerationService produces freshly generated recipes for a constraint set.
// A nil error with zero recipes is a valid, non-error empty result. Network,
// quota and parse failures are all surfaced as errors; the caller treats
// every failure identically as "no update".
type GenerationService interface {
	Generate(ctx context.Context, req GenerateRequest) ([]recipe.Recipe, error)
}

// CriteriaSeed carries the user-profile defaults consumed once at session
// start.
type CriteriaSeed struct {
	Cuisine     recipe.CuisineType
	DietaryTags []recipe.DietaryTag
}

// ProfileProvider exposes the stored user preferences.
type ProfileProvider interface {
	DefaultCriteriaSeed(ctx context.Context) (CriteriaSeed, error)
}

// GeneratedStore persists standard-lane generation results between
// sessions. A session that cold-loads a non-empty set marks its view as
// using cached data.
type GeneratedStore interface {
	Load(ctx context.Context) ([]recipe.Recipe, error)
	Save(ctx context.Context, recipes []recipe.Recipe) error
}

// CacheRepository is the raw byte cache the GeneratedStore and other
// adapters build on. Backed by redis in production and an in-process map in
// tests.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
