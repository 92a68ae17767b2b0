// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/models"
)

// GetTrending returns at most limit items ranked by views across both
// content types. Each type is capped before merging (movies ceil(limit/2),
// series floor(limit/2)), so an item outside its type's cap never appears
// even if it would rank in the global top-limit.
func (e *Engine) GetTrending(ctx context.Context, limit int) ([]models.ContentSummary, error) {
	limit, err := e.normalizeLimit(limit)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		return []models.ContentSummary{}, nil
	}

	key := cache.GenerateKey("trending", limit)
	var cached []models.ContentSummary
	if e.cacheEnabled() && cache.GetJSON(ctx, e.cache, key, &cached) {
		return cached, nil
	}

	movieLimit, seriesLimit := splitLimit(limit)

	var movies, series []models.ContentSummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := e.content.FindTopByViews(gctx, models.ContentTypeMovie, movieLimit)
		if err != nil {
			return fmt.Errorf("top movies: %w", err)
		}
		movies = items
		return nil
	})
	if seriesLimit > 0 {
		g.Go(func() error {
			items, err := e.content.FindTopByViews(gctx, models.ContentTypeSeries, seriesLimit)
			if err != nil {
				return fmt.Errorf("top series: %w", err)
			}
			series = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := rankByViews(movies, series, limit)
	if e.cacheEnabled() {
		cache.SetJSON(ctx, e.cache, key, results, e.config.CacheTTL)
	}
	return results, nil
}
