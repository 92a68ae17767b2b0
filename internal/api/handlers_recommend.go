// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/validation"
)

// RecommendationsResponse is the data of GET /content/{id}/recommendations.
type RecommendationsResponse struct {
	Recommendations []models.RankedResult `json:"recommendations"`
}

// TrendingResponse is the data of GET /trending.
type TrendingResponse struct {
	Trending []models.ContentSummary `json:"trending"`
}

// GetRecommendations handles GET /api/v1/content/{id}/recommendations.
//
// @Summary Related content
// @Description Persisted recommendation edges for the item when any exist, otherwise a genre and director similarity ranking across movies and series.
// @Tags Recommendations
// @Produce json
// @Param id path string true "Content id"
// @Param type query string true "Content type" Enums(movie, series)
// @Param limit query int false "Maximum results (capped at 100)" default(20)
// @Success 200 {object} models.APIResponse{data=RecommendationsResponse}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /content/{id}/recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := recommendationsQuery{
		ID:    chi.URLParam(r, "id"),
		Type:  qp.str("type", ""),
		Limit: qp.int("limit", h.defaults.RecommendLimit),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	start := time.Now()
	results, err := h.recommender.GetRecommendations(ctx, q.ID, models.ContentType(q.Type), q.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, RecommendationsResponse{Recommendations: results},
		&models.ResponseMeta{QueryTimeMS: time.Since(start).Milliseconds()})
}

// GetTrending handles GET /api/v1/trending.
//
// @Summary Trending content
// @Description Most viewed movies and series merged into one list. Movies take ceil(limit/2) slots and series floor(limit/2) before merging.
// @Tags Recommendations
// @Produce json
// @Param limit query int false "Maximum results (capped at 100)" default(20)
// @Success 200 {object} models.APIResponse{data=TrendingResponse}
// @Failure 400 {object} models.APIResponse
// @Router /trending [get]
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := trendingQuery{Limit: qp.int("limit", h.defaults.RecommendLimit)}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	results, err := h.recommender.GetTrending(ctx, q.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, TrendingResponse{Trending: results}, nil)
}

// CreateRecommendation handles POST /api/v1/recommendations.
//
// @Summary Create a recommendation edge
// @Description Stores an explicit edge. Once an item has any edge, its recommendations come only from edges.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRecommendationRequest true "Edge"
// @Success 201 {object} models.APIResponse{data=models.RecommendationEdge}
// @Failure 400 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /recommendations [post]
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req CreateRecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	edge, err := h.recommender.CreateRecommendation(ctx, recommend.CreateEdgeRequest{
		From:   models.ContentRef{ID: req.FromID, Type: models.ContentType(req.FromType)},
		To:     models.ContentRef{ID: req.ToID, Type: models.ContentType(req.ToType)},
		Reason: models.Reason(req.Reason),
		Score:  req.Score,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	subject := "unknown"
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		subject = claims.Subject
	}
	logging.Ctx(r.Context()).Info().
		Str("edge_id", edge.ID).
		Str("from", edge.From.ID).
		Str("to", edge.To.ID).
		Str("reason", string(edge.Reason)).
		Str("admin", sanitizeLogValue(subject)).
		Msg("Recommendation edge created")
	respondJSON(w, http.StatusCreated, edge, nil)
}
