// Package catalog provides the local recipe catalog adapter. The catalog is
// loaded once at construction and served from memory; reads are synchronous
// and side-effect free.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/infrastructure/config"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
)

// Provider implements outbound.CatalogProvider over an immutable in-memory
// recipe list.
type Provider struct {
	recipes []recipe.Recipe
	logger  *zap.Logger
}

// NewProvider loads the catalog from the configured JSON file, or falls back
// to the built-in seed catalog when no path is set.
func NewProvider(cfg config.CatalogConfig, logger *zap.Logger) (*Provider, error) {
	log := logger.Named("catalog")

	recipes := seedCatalog()
	if cfg.Path != "" {
		loaded, err := loadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.Path, err)
		}
		recipes = loaded
	}

	log.Info("catalog loaded", zap.Int("recipes", len(recipes)))
	return &Provider{recipes: recipes, logger: log}, nil
}

// NewStaticProvider wraps a fixed recipe list, mainly for tests.
func NewStaticProvider(recipes []recipe.Recipe) *Provider {
	return &Provider{recipes: recipes, logger: zap.NewNop()}
}

// GetAll returns the catalog. The returned slice is a copy so callers can
// never mutate the catalog through it.
func (p *Provider) GetAll(ctx context.Context) ([]recipe.Recipe, error) {
	out := make([]recipe.Recipe, len(p.recipes))
	copy(out, p.recipes)
	return out, nil
}

func loadFile(path string) ([]recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	for i := range recipes {
		recipes[i].Source = recipe.SourceLocal
	}
	return recipes, nil
}

var _ outbound.CatalogProvider = (*Provider)(nil)
