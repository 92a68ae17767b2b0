// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package discovery serves catalog browsing: title search, autocomplete,
// genre listings, filtered search and the home page layout.
package discovery

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/models"
)

// Catalog is the read side of the catalog used for browsing. Every method
// excludes soft-deleted items.
type Catalog interface {
	SearchTitles(ctx context.Context, query string, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
	FindByGenre(ctx context.Context, genre string, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
	SearchFiltered(ctx context.Context, f models.AdvancedFilter, contentType models.ContentType, limit, offset int) ([]models.ContentSummary, int64, error)
	GenreCounts(ctx context.Context) ([]models.GenreCount, error)
	FindFeatured(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
	FindNewReleases(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
	FindTopRated(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
	FindTopByViews(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
}

const (
	// MaxLimit caps every per-request limit.
	MaxLimit = 100

	heroMovies     = 3
	heroSeries     = 2
	carouselLength = 20
)

// Service answers discovery queries.
type Service struct {
	catalog Catalog
	logger  zerolog.Logger
}

// NewService creates a discovery service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(catalog Catalog, logger zerolog.Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger.With().Str("component", "discovery").Logger(),
	}
}

// parseTypes maps "", "all", "movie" or "series" to the content types to
// query.
func parseTypes(selector string) ([]models.ContentType, error) {
	switch selector {
	case "", "all":
		return models.ContentTypes, nil
	default:
		t, err := models.ParseContentType(selector)
		if err != nil {
			return nil, invalidParameter("type must be one of all, movie, series, got %q", selector)
		}
		return []models.ContentType{t}, nil
	}
}

func normalizeLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, invalidParameter("limit must not be negative, got %d", limit)
	}
	return min(limit, MaxLimit), nil
}

func includes(types []models.ContentType, t models.ContentType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func emptyIfNil(items []models.ContentSummary) []models.ContentSummary {
	if items == nil {
		return []models.ContentSummary{}
	}
	return items
}
