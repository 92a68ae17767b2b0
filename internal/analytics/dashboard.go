// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/models"
)

// GetDashboardStats returns catalog counts and all-time and last-24-hour
// view totals.
func (s *Service) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	dayAgo := s.now().UTC().Add(-24 * time.Hour)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.views.CountContent(gctx)
		if err != nil {
			return fmt.Errorf("count content: %w", err)
		}
		stats.Content = c
		return nil
	})
	g.Go(func() error {
		n, err := s.views.CountViews(gctx, time.Time{})
		if err != nil {
			return fmt.Errorf("count views: %w", err)
		}
		stats.Views.Total = n
		return nil
	})
	g.Go(func() error {
		n, err := s.views.CountViews(gctx, dayAgo)
		if err != nil {
			return fmt.Errorf("count recent views: %w", err)
		}
		stats.Views.Last24Hours = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
