// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/marquee/internal/models"
)

// GetContentStats breaks down the views of one item by device type over the
// last days days.
func (s *Service) GetContentStats(ctx context.Context, contentID string, contentType models.ContentType, days int) (*models.StatsReport, error) {
	if !contentType.Valid() {
		return nil, invalidParameter("unknown content type %q", contentType)
	}
	if contentID == "" {
		return nil, invalidParameter("content id is required")
	}
	days, since, err := s.window(days)
	if err != nil {
		return nil, err
	}

	item, err := s.content.FindByID(ctx, contentID, contentType)
	if err != nil {
		return nil, fmt.Errorf("resolve content: %w", err)
	}
	if item == nil {
		return nil, contentNotFound(contentID, contentType)
	}

	counts, err := s.views.CountByDevice(ctx, contentID, contentType, since)
	if err != nil {
		return nil, fmt.Errorf("count views by device: %w", err)
	}

	total, breakdown := deviceBreakdown(counts)
	return &models.StatsReport{
		ContentID:   contentID,
		ContentType: contentType,
		Period:      fmt.Sprintf("%d days", days),
		TotalViews:  total,
		ByDevice:    breakdown,
	}, nil
}

// deviceBreakdown totals the counts and assigns each device its rounded
// share. A zero total yields 0% everywhere.
func deviceBreakdown(counts []models.DeviceCount) (int64, []models.DeviceBreakdown) {
	var total int64
	for _, c := range counts {
		total += c.Count
	}

	out := make([]models.DeviceBreakdown, 0, len(counts))
	for _, c := range counts {
		pct := 0
		if total > 0 {
			pct = int(math.Round(100 * float64(c.Count) / float64(total)))
		}
		out = append(out, models.DeviceBreakdown{
			DeviceType: c.DeviceType,
			Count:      c.Count,
			Percentage: pct,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].DeviceType < out[j].DeviceType
	})
	return total, out
}
