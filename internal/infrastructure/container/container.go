// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/infrastructure/cache"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	MetricsModule,
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
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the catalog database connection. A missing
// database name means the fixture catalog backs the service instead,
// which keeps local development free of infrastructure.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Database == "" {
			log.Info("No database configured, catalog served from fixtures")
			return nil, nil
		}

		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
			Logger: gormLogger.Default.LogMode(logLevel),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		if err := gormRepo.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
		}

		log.Info("Connected to postgres catalog database",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)

		return db, nil
	},
)

// CacheModule provides the plan cache when Redis is enabled
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.PlanCache, error) {
		if !cfg.Redis.Enabled {
			log.Info("Redis disabled, caching plans in process memory")
			return memory.NewPlanCache(), nil
		}
		return cache.NewPlanCache(&cfg.Redis, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	func(db *gorm.DB, log *zap.Logger) outbound.CatalogRepository {
		if db == nil {
			return memory.NewFixtureCatalogRepository()
		}
		return gormRepo.NewCatalogRepository(db)
	},
	func(cfg *config.Config) outbound.GuardrailTermSource {
		return memory.NewGuardrailTermSource(cfg.Generator.ExcludeTerms)
	},
)

// MetricsModule provides the Prometheus registry and generation metrics
var MetricsModule = fx.Provide(
	func() *prometheus.Registry {
		return prometheus.NewRegistry()
	},
	func(reg *prometheus.Registry) outbound.GenerationMetrics {
		return monitoring.NewGenerationMetricsCollector(reg)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		catalogRepo outbound.CatalogRepository,
		terms outbound.GuardrailTermSource,
		planCache outbound.PlanCache,
		metrics outbound.GenerationMetrics,
		log *zap.Logger,
	) inbound.PlannerService {
		return planner.NewPlannerService(catalogRepo, nil, terms, planCache, metrics, log)
	},
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewPlannerAPIServer,
)

// LifecycleModule registers start and stop hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks wires the HTTP servers into the fx lifecycle
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.PlannerAPIServer,
	registry *prometheus.Registry,
	db *gorm.DB,
) {
	var metricsServer *http.Server
	if cfg.Monitoring.EnableMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Monitoring.MetricsPort),
			Handler: mux,
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PlateWise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			if metricsServer != nil {
				go func() {
					log.Info("Serving Prometheus metrics", zap.String("address", metricsServer.Addr))
					if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error("Metrics server stopped", zap.Error(err))
					}
				}()
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PlateWise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if metricsServer != nil {
				if err := metricsServer.Shutdown(ctx); err != nil {
					log.Error("Failed to shutdown metrics server", zap.Error(err))
				}
			}

			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					if err := sqlDB.Close(); err != nil {
						log.Error("Failed to close database connection", zap.Error(err))
					}
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
