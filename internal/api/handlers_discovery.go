// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/discovery"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// SuggestionsResponse is the data of GET /search/suggestions.
type SuggestionsResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}

// GenresResponse is the data of GET /genres.
type GenresResponse struct {
	Genres []models.GenreCount `json:"genres"`
}

// CarouselsResponse is the data of GET /carousels.
type CarouselsResponse struct {
	Carousels []models.Carousel `json:"carousels"`
}

// Search handles GET /api/v1/search.
//
// @Summary Title search
// @Tags Discovery
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param type query string false "Content type" Enums(movie, series, all) default(all)
// @Param limit query int false "Maximum results per type" default(20)
// @Success 200 {object} models.APIResponse{data=models.SearchResults}
// @Failure 400 {object} models.APIResponse
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := searchQuery{
		Q:     qp.str("q", ""),
		Type:  qp.str("type", "all"),
		Limit: qp.int("limit", h.defaults.Limit),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	results, err := h.discovery.Search(ctx, q.Q, q.Type, q.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, results, nil)
}

// Suggestions handles GET /api/v1/search/suggestions.
//
// @Summary Autocomplete suggestions
// @Tags Discovery
// @Produce json
// @Param q query string false "Prefix or substring"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {object} models.APIResponse{data=SuggestionsResponse}
// @Router /search/suggestions [get]
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := suggestionsQuery{
		Q:     qp.str("q", ""),
		Limit: qp.int("limit", h.defaults.SuggestionsLimit),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	suggestions, err := h.discovery.Suggestions(ctx, q.Q, q.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions}, nil)
}

// AdvancedSearch handles GET /api/v1/search/advanced.
//
// @Summary Filtered, paginated search
// @Tags Discovery
// @Produce json
// @Param q query string false "Title substring"
// @Param genres query string false "Comma-separated genres (any match)"
// @Param year_from query int false "Earliest release year"
// @Param year_to query int false "Latest release year"
// @Param rating_min query number false "Minimum rating"
// @Param type query string false "Content type" Enums(movie, series, all) default(all)
// @Param sort_by query string false "Sort order" Enums(relevance, rating, views, year, title) default(relevance)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} models.APIResponse{data=models.AdvancedSearchResults}
// @Failure 400 {object} models.APIResponse
// @Router /search/advanced [get]
func (h *Handler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := advancedSearchQuery{
		Q:         qp.str("q", ""),
		Genres:    qp.list("genres"),
		YearFrom:  qp.int("year_from", 0),
		YearTo:    qp.int("year_to", 0),
		RatingMin: qp.float("rating_min", 0),
		Type:      qp.str("type", "all"),
		SortBy:    qp.str("sort_by", models.SortRelevance),
		Page:      qp.int("page", 1),
		Limit:     qp.int("limit", h.defaults.Limit),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	results, err := h.discovery.AdvancedSearch(ctx, discovery.AdvancedRequest{
		AdvancedFilter: models.AdvancedFilter{
			Query:     q.Q,
			Genres:    q.Genres,
			YearFrom:  q.YearFrom,
			YearTo:    q.YearTo,
			RatingMin: q.RatingMin,
			SortBy:    q.SortBy,
		},
		Type:  q.Type,
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, results, &models.ResponseMeta{Pagination: &results.Pagination})
}

// Genres handles GET /api/v1/genres.
//
// @Summary Genres with per-type counts
// @Tags Discovery
// @Produce json
// @Success 200 {object} models.APIResponse{data=GenresResponse}
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	genres, err := h.discovery.GenresWithCounts(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, GenresResponse{Genres: genres}, nil)
}

// GenreContent handles GET /api/v1/genres/{genre}.
//
// @Summary Content in one genre
// @Tags Discovery
// @Produce json
// @Param genre path string true "Genre name (exact match)"
// @Param type query string false "Content type" Enums(movie, series, all) default(all)
// @Param limit query int false "Maximum results per type" default(20)
// @Success 200 {object} models.APIResponse{data=models.GenreResults}
// @Failure 400 {object} models.APIResponse
// @Router /genres/{genre} [get]
func (h *Handler) GenreContent(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := genreQuery{
		Genre: chi.URLParam(r, "genre"),
		Type:  qp.str("type", "all"),
		Limit: qp.int("limit", h.defaults.Limit),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	results, err := h.discovery.SearchByGenre(ctx, q.Genre, q.Type, q.Limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, results, nil)
}

// Home handles GET /api/v1/home.
//
// @Summary Home page
// @Description Hero banner (featured movies and series) and the standard carousels.
// @Tags Discovery
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HomePage}
// @Router /home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	page, ok := h.home(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, page, nil)
}

// Hero handles GET /api/v1/hero.
//
// @Summary Hero banner only
// @Tags Discovery
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HomeHero}
// @Router /hero [get]
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	page, ok := h.home(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, page.Hero, nil)
}

// Carousels handles GET /api/v1/carousels.
//
// @Summary Carousels only
// @Tags Discovery
// @Produce json
// @Success 200 {object} models.APIResponse{data=CarouselsResponse}
// @Router /carousels [get]
func (h *Handler) Carousels(w http.ResponseWriter, r *http.Request) {
	page, ok := h.home(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, CarouselsResponse{Carousels: page.Carousels}, nil)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) (*models.HomePage, bool) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	page, err := h.discovery.Home(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	return page, true
}

// check reports parse and validation failures; false means a response was
// already written.
func (h *Handler) check(w http.ResponseWriter, r *http.Request, qp *queryParser, q any) bool {
	if qp.err != nil {
		respondServiceError(w, r, qp.err)
		return false
	}
	if verr := validation.ValidateStruct(q); verr != nil {
		respondValidationError(w, verr)
		return false
	}
	return true
}
