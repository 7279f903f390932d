package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
	apperrors "github.com/alchemorsel/discovery/pkg/errors"
)

const generatedRecipesKey = "discovery:generated"

// RecipeStore persists standard-lane generation results as a JSON blob in
// the cache repository. A session that cold-loads a non-empty set marks its
// view as using cached data.
type RecipeStore struct {
	cache  outbound.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewRecipeStore creates a generated-recipe store. Zero TTL keeps the
// repository default.
func NewRecipeStore(cache outbound.CacheRepository, ttl time.Duration, logger *zap.Logger) *RecipeStore {
	return &RecipeStore{
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("recipe-store"),
	}
}

// Load returns the persisted generated recipes, or an empty slice when
// nothing is stored.
func (s *RecipeStore) Load(ctx context.Context) ([]recipe.Recipe, error) {
	data, err := s.cache.Get(ctx, generatedRecipesKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewCacheError("load generated recipes", err)
	}

	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		// A corrupt blob is treated as a cache miss, not a fatal error.
		s.logger.Warn("discarding unreadable generated-recipe cache", zap.Error(err))
		return nil, nil
	}

	return recipes, nil
}

// Save replaces the persisted generated recipes.
func (s *RecipeStore) Save(ctx context.Context, recipes []recipe.Recipe) error {
	data, err := json.Marshal(recipes)
	if err != nil {
		return apperrors.NewCacheError("encode generated recipes", err)
	}
	if err := s.cache.Set(ctx, generatedRecipesKey, data, s.ttl); err != nil {
		return apperrors.NewCacheError("save generated recipes", err)
	}
	s.logger.Debug("persisted generated recipes", zap.Int("count", len(recipes)))
	return nil
}

var _ outbound.GeneratedStore = (*RecipeStore)(nil)
