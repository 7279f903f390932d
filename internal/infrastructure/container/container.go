// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	appdiscovery "github.com/alchemorsel/discovery/internal/application/discovery"
	"github.com/alchemorsel/discovery/internal/infrastructure/ai/openai"
	"github.com/alchemorsel/discovery/internal/infrastructure/cache"
	"github.com/alchemorsel/discovery/internal/infrastructure/catalog"
	"github.com/alchemorsel/discovery/internal/infrastructure/config"
	"github.com/alchemorsel/discovery/internal/infrastructure/http/server"
	"github.com/alchemorsel/discovery/internal/infrastructure/profile"
	"github.com/alchemorsel/discovery/internal/ports/inbound"
	"github.com/alchemorsel/discovery/internal/ports/outbound"
	"github.com/alchemorsel/discovery/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CacheModule,
	ProviderModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: !cfg.IsProduction(),
		})
	},
)

// CacheModule provides the cache repository backing the generated-recipe
// store. Redis when enabled, an in-process cache otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			return cache.NewRedisRepository(cfg.Redis, log)
		}
		log.Info("Using in-memory cache")
		return cache.NewMemoryRepository(), nil
	},
	func(cfg *config.Config, repo outbound.CacheRepository, log *zap.Logger) outbound.GeneratedStore {
		return cache.NewRecipeStore(repo, cfg.Redis.CacheTTL, log)
	},
)

// ProviderModule provides the catalog and profile adapters
var ProviderModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CatalogProvider, error) {
		return catalog.NewProvider(cfg.Catalog, log)
	},
	func(cfg *config.Config, log *zap.Logger) outbound.ProfileProvider {
		return profile.NewProvider(cfg.Profile, log)
	},
)

// ServiceModule provides the generation service and the discovery session
var ServiceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.GenerationService {
		return openai.NewClient(cfg.AI, log)
	},

	appdiscovery.NewOrchestrator,

	func(
		cat outbound.CatalogProvider,
		prof outbound.ProfileProvider,
		orch *appdiscovery.Orchestrator,
		store outbound.GeneratedStore,
		log *zap.Logger,
	) (inbound.DiscoveryService, error) {
		return appdiscovery.NewSession(context.Background(), cat, prof, orch, store, log)
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers startup and shutdown hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	repo outbound.CacheRepository,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting discovery service",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down discovery service")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if closer, ok := repo.(io.Closer); ok {
				if err := closer.Close(); err != nil {
					log.Error("Failed to close cache connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
