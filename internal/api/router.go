// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
)

// RouterConfig holds the HTTP-edge settings.
type RouterConfig struct {
	CORSOrigins         []string
	RateLimitRequests   int
	RateLimitWindow     time.Duration
	RateLimitDisabled   bool
	ViewRateLimitPerMin int
}

// RouterConfigFrom maps the security section of the application config.
func RouterConfigFrom(cfg *config.SecurityConfig) RouterConfig {
	return RouterConfig{
		CORSOrigins:         cfg.CORSOrigins,
		RateLimitRequests:   cfg.RateLimitReqs,
		RateLimitWindow:     cfg.RateLimitWindow,
		RateLimitDisabled:   cfg.RateLimitDisabled,
		ViewRateLimitPerMin: cfg.ViewRateLimitPerMin,
	}
}

// Router assembles the middleware stack and routes.
type Router struct {
	handler     *Handler
	cfg         RouterConfig
	admin       *auth.Middleware
	viewLimiter *middleware.ViewLimiter
}

// NewRouter creates the router. A nil jwt manager leaves admin routes closed.
func NewRouter(h *Handler, cfg RouterConfig, jwt *auth.JWTManager) *Router {
	return &Router{
		handler:     h,
		cfg:         cfg,
		admin:       auth.NewMiddleware(jwt, denyEnvelope),
		viewLimiter: middleware.NewViewLimiter(cfg.ViewRateLimitPerMin),
	}
}

// ViewLimiter exposes the per-IP view limiter so its sweeper can be
// supervised.
func (rt *Router) ViewLimiter() *middleware.ViewLimiter {
	return rt.viewLimiter
}

// Handler builds the http.Handler.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.corsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	}))
	if !rt.cfg.RateLimitDisabled && rt.cfg.RateLimitRequests > 0 {
		r.Use(httprate.Limit(
			rt.cfg.RateLimitRequests,
			rt.cfg.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, req *http.Request) {
				metrics.APIRateLimitHits.WithLabelValues("global").Inc()
				rateLimited("global")(w, req)
			}),
		))
	}
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Compress(5))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, CodeNotFound, fmt.Sprintf("Route %s not found", req.URL.Path), nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h := rt.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/health/ready", h.HealthReady)

		r.Get("/content/{id}/recommendations", h.GetRecommendations)
		r.Get("/trending", h.GetTrending)
		r.With(rt.admin.RequireAdmin).Post("/recommendations", h.CreateRecommendation)

		r.Route("/analytics", func(r chi.Router) {
			r.With(rt.viewLimiter.Middleware(rateLimited("view"))).Post("/view", h.TrackView)
			r.Get("/content/{id}/stats", h.GetContentStats)
			r.Get("/popular", h.GetPopularContent)
			r.Get("/dashboard", h.GetDashboardStats)
		})

		r.Get("/search", h.Search)
		r.Get("/search/suggestions", h.Suggestions)
		r.Get("/search/advanced", h.AdvancedSearch)
		r.Get("/genres", h.Genres)
		r.Get("/genres/{genre}", h.GenreContent)

		r.Get("/home", h.Home)
		r.Get("/hero", h.Hero)
		r.Get("/carousels", h.Carousels)
	})

	return r
}

func (rt *Router) corsOrigins() []string {
	if len(rt.cfg.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return rt.cfg.CORSOrigins
}

func rateLimited(limiter string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusTooManyRequests, CodeRateLimited,
			fmt.Sprintf("Too many requests (%s limit), retry later", limiter), nil)
	}
}

func denyEnvelope(w http.ResponseWriter, r *http.Request, status int, message string) {
	code := CodeUnauthorized
	if status == http.StatusForbidden {
		code = CodeForbidden
	}
	respondError(w, r, status, code, message, nil)
}
