// Package profile provides the user-profile adapter that seeds session
// criteria. The full profile store lives outside this service; only the
// default criteria seed crosses the boundary.
package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/recipe"
	"github.com/alchemorsel/discovery/internal/infrastructure/config"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
)

// Provider implements outbound.ProfileProvider from static configuration.
type Provider struct {
	seed   outbound.CriteriaSeed
	logger *zap.Logger
}

// NewProvider builds the provider from config. Unknown dietary tags are
// ignored rather than failing startup.
func NewProvider(cfg config.ProfileConfig, logger *zap.Logger) *Provider {
	seed := outbound.CriteriaSeed{
		Cuisine: recipe.CuisineType(cfg.Cuisine),
	}
	for _, raw := range cfg.DietaryTags {
		tag := recipe.DietaryTag(raw)
		if knownTag(tag) {
			seed.DietaryTags = append(seed.DietaryTags, tag)
		} else {
			logger.Warn("ignoring unknown dietary tag in profile", zap.String("tag", raw))
		}
	}
	return &Provider{seed: seed, logger: logger}
}

// DefaultCriteriaSeed returns the stored defaults. Consumed once at session
// start.
func (p *Provider) DefaultCriteriaSeed(ctx context.Context) (outbound.CriteriaSeed, error) {
	return p.seed, nil
}

func knownTag(tag recipe.DietaryTag) bool {
	switch tag {
	case recipe.TagVegetarian, recipe.TagVegan, recipe.TagNonVegetarian,
		recipe.TagGlutenFree, recipe.TagDairyFree, recipe.TagNutFree,
		recipe.TagLowCarb, recipe.TagKeto, recipe.TagPaleo,
		recipe.TagHalal, recipe.TagKosher:
		return true
	}
	return false
}

var _ outbound.ProfileProvider = (*Provider)(nil)
