// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"

	"github.com/tomtom215/marquee/internal/models"
)

// FindFeatured returns featured items of one type in featured_order.
func (db *DB) FindFeatured(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "featured_order NULLS LAST", limit: limit}
	q.filter("content_type = ?", string(contentType))
	q.filter("featured")
	return db.selectContent(ctx, "content_featured", q)
}

// FindNewReleases returns the most recent items of one type by release year,
// then by catalog insertion time.
func (db *DB) FindNewReleases(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "release_year DESC, created_at DESC", limit: limit}
	q.filter("content_type = ?", string(contentType))
	return db.selectContent(ctx, "content_new_releases", q)
}

// FindTopRated returns the best rated items of one type.
func (db *DB) FindTopRated(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "rating DESC", limit: limit}
	q.filter("content_type = ?", string(contentType))
	return db.selectContent(ctx, "content_top_rated", q)
}
