// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/models"
)

// Search finds items whose title contains query, ignoring case. Each
// selected type returns up to limit items, best rated first.
func (s *Service) Search(ctx context.Context, query, selector string, limit int) (*models.SearchResults, error) {
	types, err := parseTypes(selector)
	if err != nil {
		return nil, err
	}
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	res := &models.SearchResults{Movies: []models.ContentSummary{}, Series: []models.ContentSummary{}}
	if strings.TrimSpace(query) == "" || limit == 0 {
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if includes(types, models.ContentTypeMovie) {
		g.Go(func() error {
			items, err := s.catalog.SearchTitles(gctx, query, models.ContentTypeMovie, limit)
			if err != nil {
				return fmt.Errorf("search movies: %w", err)
			}
			res.Movies = emptyIfNil(items)
			return nil
		})
	}
	if includes(types, models.ContentTypeSeries) {
		g.Go(func() error {
			items, err := s.catalog.SearchTitles(gctx, query, models.ContentTypeSeries, limit)
			if err != nil {
				return fmt.Errorf("search series: %w", err)
			}
			res.Series = emptyIfNil(items)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Total = len(res.Movies) + len(res.Series)
	return res, nil
}

// Suggestions returns autocomplete entries: up to ceil(limit/2) movies and
// floor(limit/2) series, with exact title matches first.
func (s *Service) Suggestions(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" || limit == 0 {
		return []models.Suggestion{}, nil
	}

	movieLimit, seriesLimit := (limit+1)/2, limit/2
	var movies, series []models.ContentSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.catalog.SearchTitles(gctx, query, models.ContentTypeMovie, movieLimit)
		if err != nil {
			return fmt.Errorf("suggest movies: %w", err)
		}
		movies = items
		return nil
	})
	if seriesLimit > 0 {
		g.Go(func() error {
			items, err := s.catalog.SearchTitles(gctx, query, models.ContentTypeSeries, seriesLimit)
			if err != nil {
				return fmt.Errorf("suggest series: %w", err)
			}
			series = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.Suggestion, 0, len(movies)+len(series))
	for _, m := range movies {
		out = append(out, suggestion(m, models.ContentTypeMovie))
	}
	for _, sr := range series {
		out = append(out, suggestion(sr, models.ContentTypeSeries))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.EqualFold(out[i].Text, query) && !strings.EqualFold(out[j].Text, query)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func suggestion(c models.ContentSummary, t models.ContentType) models.Suggestion {
	return models.Suggestion{
		Text:      c.Title,
		Type:      t,
		Slug:      c.Slug,
		PosterURL: c.PosterURL,
		Year:      c.ReleaseYear,
	}
}

// SearchByGenre lists items tagged with genre. Genre names match exactly.
func (s *Service) SearchByGenre(ctx context.Context, genre, selector string, limit int) (*models.GenreResults, error) {
	types, err := parseTypes(selector)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(genre) == "" {
		return nil, invalidParameter("genre is required")
	}
	if limit, err = normalizeLimit(limit); err != nil {
		return nil, err
	}

	res := &models.GenreResults{Genre: genre, Movies: []models.ContentSummary{}, Series: []models.ContentSummary{}}
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range types {
		dest := &res.Movies
		if t == models.ContentTypeSeries {
			dest = &res.Series
		}
		g.Go(func() error {
			items, err := s.catalog.FindByGenre(gctx, genre, t, limit)
			if err != nil {
				return fmt.Errorf("%s by genre: %w", t, err)
			}
			*dest = emptyIfNil(items)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// AdvancedRequest is a filtered, paginated search.
type AdvancedRequest struct {
	models.AdvancedFilter
	Type  string
	Page  int
	Limit int
}

// AdvancedSearch applies the filters to each selected type. For "all" the
// page size is split ceil/floor between movies and series; the pagination
// total counts every match across both types.
func (s *Service) AdvancedSearch(ctx context.Context, req AdvancedRequest) (*models.AdvancedSearchResults, error) {
	types, err := parseTypes(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Page < 1 {
		return nil, invalidParameter("page must be at least 1, got %d", req.Page)
	}
	if req.Limit < 1 {
		return nil, invalidParameter("limit must be at least 1, got %d", req.Limit)
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	if req.SortBy == "" {
		req.SortBy = models.SortRelevance
	}
	switch req.SortBy {
	case models.SortRelevance, models.SortRating, models.SortViews, models.SortYear, models.SortTitle:
	default:
		return nil, invalidParameter("unknown sort %q", req.SortBy)
	}
	if req.YearFrom > 0 && req.YearTo > 0 && req.YearFrom > req.YearTo {
		return nil, invalidParameter("yearFrom %d is after yearTo %d", req.YearFrom, req.YearTo)
	}

	perType := map[models.ContentType]int{
		models.ContentTypeMovie:  req.Limit,
		models.ContentTypeSeries: req.Limit,
	}
	if len(types) == len(models.ContentTypes) {
		perType[models.ContentTypeMovie] = (req.Limit + 1) / 2
		perType[models.ContentTypeSeries] = req.Limit / 2
	}

	res := &models.AdvancedSearchResults{
		Movies: []models.ContentSummary{},
		Series: []models.ContentSummary{},
	}
	totals := make([]int64, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		dest := &res.Movies
		if t == models.ContentTypeSeries {
			dest = &res.Series
		}
		limit := perType[t]
		offset := (req.Page - 1) * limit
		g.Go(func() error {
			items, total, err := s.catalog.SearchFiltered(gctx, req.AdvancedFilter, t, limit, offset)
			if err != nil {
				return fmt.Errorf("advanced search %s: %w", t, err)
			}
			*dest = emptyIfNil(items)
			totals[i] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int64
	for _, n := range totals {
		total += n
	}
	res.Pagination = models.Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: int(total),
		Pages: int((total + int64(req.Limit) - 1) / int64(req.Limit)),
	}
	return res, nil
}

// GenresWithCounts lists every genre in use with per-type counts.
func (s *Service) GenresWithCounts(ctx context.Context) ([]models.GenreCount, error) {
	genres, err := s.catalog.GenreCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("genre counts: %w", err)
	}
	if genres == nil {
		genres = []models.GenreCount{}
	}
	return genres, nil
}
