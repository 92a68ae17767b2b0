// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/marquee/docs" // swagger document for /swagger/doc.json
	"github.com/tomtom215/marquee/internal/analytics"
	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/discovery"
	"github.com/tomtom215/marquee/internal/eventprocessor"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	limiterSweepInterval = time.Minute
	cacheSweepInterval   = 5 * time.Minute
)

func main() {
	issueToken := flag.String("issue-admin-token", "", "print an admin JWT for `subject` and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	if *issueToken != "" {
		if err := issueAdminToken(os.Stdout, &cfg.Security, *issueToken); err != nil {
			logging.Fatal().Err(err).Msg("Failed to issue admin token")
		}
		return
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Marquee stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // sequential startup wiring
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Marquee")
	metrics.SetAppInfo(version)

	db, err := database.New(&cfg.Database, cfg.CircuitBreaker)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedSample {
		seeded, err := db.SeedSampleData(ctx)
		if err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
		logging.Info().Bool("seeded", seeded).Msg("Sample catalog checked (SEED_SAMPLE_DATA=true)")
	}

	store, err := cache.NewStore(ctx, cfg.Cache, cfg.Recommend.CacheTTL)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	cacheBackend := cache.BackendNone
	if store != nil {
		cacheBackend = store.Name()
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing cache")
			}
		}()
	}
	logging.Info().Str("backend", cacheBackend).Msg("Result cache ready")

	engine, err := recommend.NewEngine(db, db, recommend.ConfigFrom(cfg.Recommend), logging.Logger())
	if err != nil {
		return fmt.Errorf("initialize recommendation engine: %w", err)
	}
	engine.SetCache(store)

	analyticsSvc, err := analytics.NewService(db, db, db, analytics.ConfigFrom(cfg.Analytics), logging.Logger())
	if err != nil {
		return fmt.Errorf("initialize analytics: %w", err)
	}
	discoverySvc := discovery.NewService(db, logging.Logger())

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})

	eventBus := func() string { return "disabled" }
	if cfg.Events.Enabled {
		pipeline, err := initEvents(ctx, cfg.Events, db)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := pipeline.Close(closeCtx); err != nil {
				logging.Error().Err(err).Msg("Error closing event pipeline")
			}
		}()
		analyticsSvc.UsePublisher(pipeline.Publisher)
		tree.AddEventService(services.NewEventRouterService(pipeline.Router))
		eventBus = func() string {
			return pipeline.Bus.Backend() + " (publisher breaker " + pipeline.Publisher.BreakerState() + ")"
		}
	} else {
		logging.Info().Msg("Event pipeline disabled (EVENTS_ENABLED=false), views are written synchronously")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	switch {
	case errors.Is(err, auth.ErrNoSecret):
		logging.Warn().Msg("ADMIN_JWT_SECRET is not set; POST /api/v1/recommendations will answer 401")
		jwtManager = nil
	case err != nil:
		return fmt.Errorf("initialize admin tokens: %w", err)
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}

	defaults := api.DefaultDefaults()
	if cfg.API.DefaultPageSize > 0 {
		defaults.Limit = cfg.API.DefaultPageSize
	}
	defaults.RecommendLimit = engine.Config().DefaultLimit
	if cfg.Analytics.DefaultDays > 0 {
		defaults.AnalyticsDays = cfg.Analytics.DefaultDays
	}

	handler := api.NewHandler(engine, analyticsSvc, discoverySvc, db,
		api.WithDefaults(defaults),
		api.WithVersion(version),
		api.WithCacheBackend(cacheBackend),
		api.WithEventBus(eventBus),
	)
	router := api.NewRouter(handler, api.RouterConfigFrom(&cfg.Security), jwtManager)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Handler(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddMaintenanceService(services.NewPeriodicService("view-limiter-sweep", func(ctx context.Context) {
		router.ViewLimiter().Run(ctx, limiterSweepInterval)
	}))
	if mem, ok := store.(*cache.MemoryStore); ok {
		tree.AddMaintenanceService(services.NewPeriodicService("cache-sweep", func(ctx context.Context) {
			mem.Run(ctx, cacheSweepInterval)
		}))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			treeErr = fmt.Errorf("supervisor tree: %w", err)
		}
	}
	stop()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	return treeErr
}
