// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Engine produces related-item and trending rankings. It is safe for
// concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	content ContentRepository
	edges   EdgeStore
	cache   cache.Store
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(content ContentRepository, edges EdgeStore, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if content == nil || edges == nil {
		return nil, fmt.Errorf("content repository and edge store are required")
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		content: content,
		edges:   edges,
	}, nil
}

// SetCache attaches a result cache. A nil store disables caching.
func (e *Engine) SetCache(store cache.Store) {
	e.cache = store
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// normalizeLimit rejects negative limits and caps the rest at MaxLimit.
func (e *Engine) normalizeLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, invalidParameter("limit must not be negative, got %d", limit)
	}
	if limit > e.config.MaxLimit {
		limit = e.config.MaxLimit
	}
	return limit, nil
}

type recommendationKey struct {
	ID    string             `json:"id"`
	Type  models.ContentType `json:"type"`
	Limit int                `json:"limit"`
}

// GetRecommendations returns at most limit items related to the given
// source. Persisted edges are used exclusively when any exist; otherwise
// candidates are generated from genre and director similarity.
func (e *Engine) GetRecommendations(ctx context.Context, contentID string, contentType models.ContentType, limit int) ([]models.RankedResult, error) {
	if !contentType.Valid() {
		return nil, invalidParameter("unknown content type %q", contentType)
	}
	if contentID == "" {
		return nil, invalidParameter("content id is required")
	}
	limit, err := e.normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []models.RankedResult{}, nil
	}

	key := cache.GenerateKey("recommendations", recommendationKey{ID: contentID, Type: contentType, Limit: limit})
	var cached []models.RankedResult
	if e.cacheEnabled() && cache.GetJSON(ctx, e.cache, key, &cached) {
		metrics.RecordRecommendations(pathCache, len(cached))
		return cached, nil
	}

	start := time.Now()
	ref := models.ContentRef{ID: contentID, Type: contentType}

	source, err := e.content.FindByID(ctx, contentID, contentType)
	if err != nil {
		return nil, fmt.Errorf("resolve source: %w", err)
	}
	if source == nil {
		return nil, contentNotFound(ref)
	}

	edges, err := e.edges.EdgesFrom(ctx, ref, limit)
	if err != nil {
		return nil, fmt.Errorf("load recommendation edges: %w", err)
	}

	var (
		results []models.RankedResult
		path    string
	)
	if len(edges) > 0 {
		path = pathPersisted
		results, err = e.resolveEdges(ctx, edges)
	} else {
		path = pathFallback
		results, err = e.generate(ctx, source, limit)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordRecommendations(path, len(results))
	e.logger.Debug().
		Str("content_id", contentID).
		Str("content_type", string(contentType)).
		Str("path", path).
		Int("edges", len(edges)).
		Int("returned", len(results)).
		Dur("latency", time.Since(start)).
		Msg("recommendations computed")

	if e.cacheEnabled() {
		cache.SetJSON(ctx, e.cache, key, results, e.config.CacheTTL)
	}
	return results, nil
}

// resolveEdges looks up edge targets with one repository call per target
// type, in parallel, and keeps edge order. Unresolved targets are dropped.
func (e *Engine) resolveEdges(ctx context.Context, edges []models.RecommendationEdge) ([]models.RankedResult, error) {
	idsByType := make(map[models.ContentType][]string, len(models.ContentTypes))
	for _, edge := range edges {
		idsByType[edge.To.Type] = append(idsByType[edge.To.Type], edge.To.ID)
	}

	found := make([][]models.ContentSummary, len(models.ContentTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range models.ContentTypes {
		ids := idsByType[t]
		if len(ids) == 0 {
			continue
		}
		g.Go(func() error {
			items, err := e.content.FindByIDs(gctx, ids, t)
			if err != nil {
				return fmt.Errorf("resolve %s targets: %w", t, err)
			}
			found[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byRef := make(map[models.ContentRef]models.ContentSummary)
	for i, t := range models.ContentTypes {
		for _, item := range found[i] {
			item.Type = t
			byRef[item.Ref()] = item
		}
	}

	results := make([]models.RankedResult, 0, len(edges))
	for _, edge := range edges {
		item, ok := byRef[edge.To]
		if !ok {
			continue
		}
		results = append(results, models.RankedResult{
			ContentSummary: item,
			Reason:         edge.Reason,
			Score:          edge.Score,
		})
	}
	return results, nil
}

// generate builds the similarity fallback from two concurrently fetched
// candidate pools.
func (e *Engine) generate(ctx context.Context, source *models.ContentSummary, limit int) ([]models.RankedResult, error) {
	movieLimit, seriesLimit := splitLimit(limit)

	var movies, series []models.ContentSummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := e.content.FindCandidates(gctx, models.CandidateQuery{
			Type:      models.ContentTypeMovie,
			Genres:    source.Genres,
			Director:  source.DirectorOrCreator,
			ExcludeID: source.ID,
			Limit:     movieLimit,
		})
		if err != nil {
			return fmt.Errorf("find movie candidates: %w", err)
		}
		movies = items
		return nil
	})
	if seriesLimit > 0 {
		g.Go(func() error {
			items, err := e.content.FindCandidates(gctx, models.CandidateQuery{
				Type:      models.ContentTypeSeries,
				Genres:    source.Genres,
				ExcludeID: source.ID,
				Limit:     seriesLimit,
			})
			if err != nil {
				return fmt.Errorf("find series candidates: %w", err)
			}
			series = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range movies {
		movies[i].Type = models.ContentTypeMovie
	}
	for i := range series {
		series[i].Type = models.ContentTypeSeries
	}
	return rankBySimilarity(source, movies, series, limit, e.config.DirectorBoost), nil
}

// CreateRecommendation validates and persists an explicit edge. Both ends
// must resolve.
func (e *Engine) CreateRecommendation(ctx context.Context, req CreateEdgeRequest) (*models.RecommendationEdge, error) {
	if !req.From.Type.Valid() || !req.To.Type.Valid() {
		return nil, invalidParameter("unknown content type")
	}
	if req.From.ID == "" || req.To.ID == "" {
		return nil, invalidParameter("from and to ids are required")
	}
	if req.From == req.To {
		return nil, invalidParameter("an item cannot recommend itself")
	}
	if !req.Reason.Valid() {
		return nil, invalidParameter("unknown reason %q", req.Reason)
	}
	score := DefaultEdgeScore
	if req.Score != nil {
		score = *req.Score
	}
	if score < 0 || score > 1 {
		return nil, invalidParameter("score must be in [0, 1], got %v", score)
	}

	for _, ref := range []models.ContentRef{req.From, req.To} {
		item, err := e.content.FindByID(ctx, ref.ID, ref.Type)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", ref.ID, err)
		}
		if item == nil {
			return nil, contentNotFound(ref)
		}
	}

	edge := &models.RecommendationEdge{
		From:   req.From,
		To:     req.To,
		Reason: req.Reason,
		Score:  score,
	}
	if err := e.edges.InsertEdge(ctx, edge); err != nil {
		return nil, fmt.Errorf("store recommendation: %w", err)
	}

	e.logger.Info().
		Str("edge_id", edge.ID).
		Str("from", req.From.ID).
		Str("to", req.To.ID).
		Str("reason", string(req.Reason)).
		Float64("score", score).
		Msg("recommendation edge created")
	return edge, nil
}

func (e *Engine) cacheEnabled() bool {
	return e.cache != nil && e.config.CacheTTL > 0
}
