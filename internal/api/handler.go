// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/analytics"
	"github.com/tomtom215/marquee/internal/discovery"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Recommender is implemented by *recommend.Engine.
type Recommender interface {
	GetRecommendations(ctx context.Context, contentID string, contentType models.ContentType, limit int) ([]models.RankedResult, error)
	GetTrending(ctx context.Context, limit int) ([]models.ContentSummary, error)
	CreateRecommendation(ctx context.Context, req recommend.CreateEdgeRequest) (*models.RecommendationEdge, error)
}

// Analytics is implemented by *analytics.Service.
type Analytics interface {
	TrackView(ctx context.Context, req analytics.TrackRequest) (models.TrackResult, error)
	GetContentStats(ctx context.Context, contentID string, contentType models.ContentType, days int) (*models.StatsReport, error)
	GetPopularContent(ctx context.Context, selector string, limit, days int) (*models.PopularContent, error)
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// Discovery is implemented by *discovery.Service.
type Discovery interface {
	Search(ctx context.Context, query, selector string, limit int) (*models.SearchResults, error)
	Suggestions(ctx context.Context, query string, limit int) ([]models.Suggestion, error)
	SearchByGenre(ctx context.Context, genre, selector string, limit int) (*models.GenreResults, error)
	AdvancedSearch(ctx context.Context, req discovery.AdvancedRequest) (*models.AdvancedSearchResults, error)
	GenresWithCounts(ctx context.Context) ([]models.GenreCount, error)
	Home(ctx context.Context) (*models.HomePage, error)
}

// HealthChecker reports dependency state for the probes. *database.DB
// satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// Defaults applied when a query parameter is absent.
type Defaults struct {
	Limit            int
	RecommendLimit   int
	SuggestionsLimit int
	AnalyticsDays    int
	RequestTimeout   time.Duration
}

// DefaultDefaults mirrors the public API documentation.
func DefaultDefaults() Defaults {
	return Defaults{
		Limit:            20,
		RecommendLimit:   20,
		SuggestionsLimit: 10,
		AnalyticsDays:    30,
		RequestTimeout:   10 * time.Second,
	}
}

// Handler serves every /api/v1 route.
type Handler struct {
	recommender Recommender
	analytics   Analytics
	discovery   Discovery
	health      HealthChecker
	defaults    Defaults

	version      string
	cacheBackend string
	eventBus     func() string
	startTime    time.Time
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithDefaults overrides query defaults.
func WithDefaults(d Defaults) HandlerOption {
	return func(h *Handler) { h.defaults = d }
}

// WithVersion sets the version reported by /health.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithCacheBackend names the result cache in /health.
func WithCacheBackend(name string) HandlerOption {
	return func(h *Handler) { h.cacheBackend = name }
}

// WithEventBus reports the event bus state in /health.
func WithEventBus(state func() string) HandlerOption {
	return func(h *Handler) { h.eventBus = state }
}

// NewHandler wires the services into HTTP handlers.
func NewHandler(rec Recommender, an Analytics, disc Discovery, health HealthChecker, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender:  rec,
		analytics:    an,
		discovery:    disc,
		health:       health,
		defaults:     DefaultDefaults(),
		version:      "dev",
		cacheBackend: "none",
		startTime:    time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.defaults.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.defaults.RequestTimeout)
}
