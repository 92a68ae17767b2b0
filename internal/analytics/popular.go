// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/models"
)

// SelectorAll requests both content types from GetPopularContent.
const SelectorAll = "all"

// ParseSelector accepts "all", "movie" or "series". An empty selector means
// all.
func ParseSelector(s string) ([]models.ContentType, error) {
	switch s {
	case "", SelectorAll:
		return models.ContentTypes, nil
	default:
		t, err := models.ParseContentType(s)
		if err != nil {
			return nil, invalidParameter("type must be one of all, movie, series, got %q", s)
		}
		return []models.ContentType{t}, nil
	}
}

// GetPopularContent ranks items by views inside the window, up to limit per
// type. Items that no longer resolve are dropped.
func (s *Service) GetPopularContent(ctx context.Context, selector string, limit, days int) (*models.PopularContent, error) {
	types, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, invalidParameter("limit must not be negative, got %d", limit)
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	_, since, err := s.window(days)
	if err != nil {
		return nil, err
	}

	result := &models.PopularContent{
		Movies: []models.PopularItem{},
		Series: []models.PopularItem{},
	}
	if limit == 0 {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range types {
		dest := &result.Movies
		if t == models.ContentTypeSeries {
			dest = &result.Series
		}
		g.Go(func() error {
			items, err := s.popularOfType(gctx, t, since, limit)
			if err != nil {
				return err
			}
			*dest = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) popularOfType(ctx context.Context, t models.ContentType, since time.Time, limit int) ([]models.PopularItem, error) {
	groups, err := s.views.CountByContent(ctx, t, since, limit)
	if err != nil {
		return nil, fmt.Errorf("count %s views: %w", t, err)
	}
	if len(groups) == 0 {
		return []models.PopularItem{}, nil
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].ContentID < groups[j].ContentID
	})

	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ContentID
	}
	found, err := s.content.FindByIDs(ctx, ids, t)
	if err != nil {
		return nil, fmt.Errorf("resolve popular %s: %w", t, err)
	}
	byID := make(map[string]models.ContentSummary, len(found))
	for _, c := range found {
		c.Type = t
		byID[c.ID] = c
	}

	items := make([]models.PopularItem, 0, len(groups))
	for _, g := range groups {
		c, ok := byID[g.ContentID]
		if !ok {
			continue
		}
		items = append(items, models.PopularItem{ContentSummary: c, Views: g.Count})
	}
	return items, nil
}
