// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/marquee/internal/models"
)

// sortColumns maps advanced-search sort keys to ORDER BY expressions.
var sortColumns = map[string]string{
	models.SortRelevance: "rating DESC",
	models.SortRating:    "rating DESC",
	models.SortViews:     "views_count DESC",
	models.SortYear:      "release_year DESC",
	models.SortTitle:     "title ASC",
}

// SearchTitles returns items of one type whose title contains query,
// ignoring case, best rated first.
func (db *DB) SearchTitles(ctx context.Context, query string, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 || strings.TrimSpace(query) == "" {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "rating DESC", limit: limit}
	q.filter("content_type = ?", string(contentType))
	q.filter("contains(lower(title), lower(?))", query)
	return db.selectContent(ctx, "content_search", q)
}

// FindByGenre returns items of one type tagged with genre, best rated first.
func (db *DB) FindByGenre(ctx context.Context, genre string, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "rating DESC", limit: limit}
	q.filter("content_type = ?", string(contentType))
	q.filter("list_contains(genres, ?)", genre)
	return db.selectContent(ctx, "content_by_genre", q)
}

func advancedSelect(f models.AdvancedFilter, contentType models.ContentType) *contentSelect {
	q := &contentSelect{orderBy: sortColumns[models.SortRelevance]}
	if order, ok := sortColumns[f.SortBy]; ok {
		q.orderBy = order
	}
	q.filter("content_type = ?", string(contentType))
	if f.Query != "" {
		q.filter("contains(lower(title), lower(?))", f.Query)
	}
	if len(f.Genres) > 0 {
		q.filter("list_has_any(genres, string_split(?, chr(31)))", joinList(f.Genres))
	}
	if f.YearFrom > 0 {
		q.filter("release_year >= ?", f.YearFrom)
	}
	if f.YearTo > 0 {
		q.filter("release_year <= ?", f.YearTo)
	}
	if f.RatingMin > 0 {
		q.filter("rating >= ?", f.RatingMin)
	}
	return q
}

// SearchFiltered returns one page of items of one type matching f together
// with the total number of matches.
func (db *DB) SearchFiltered(ctx context.Context, f models.AdvancedFilter, contentType models.ContentType, limit, offset int) ([]models.ContentSummary, int64, error) {
	q := advancedSelect(f, contentType)

	var total int64
	countQuery := "SELECT COUNT(*) FROM content WHERE deleted_at IS NULL AND " + strings.Join(q.where, " AND ")
	err := db.run(ctx, "count", "content", func(ctx context.Context) error {
		return db.conn.QueryRowContext(ctx, countQuery, q.args...).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("count advanced search: %w", err)
	}
	if limit <= 0 || total == 0 {
		return []models.ContentSummary{}, total, nil
	}

	q.limit = limit
	q.offset = offset
	items, err := db.selectContent(ctx, "content_advanced_search", q)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GenreCounts returns every genre used by live content with per-type counts,
// sorted by name.
func (db *DB) GenreCounts(ctx context.Context) ([]models.GenreCount, error) {
	genres := []models.GenreCount{}

	err := db.run(ctx, "aggregate", "content", func(ctx context.Context) error {
		rows, err := db.conn.QueryContext(ctx, `
			SELECT genre,
				COUNT(*) FILTER (WHERE content_type = 'movie'),
				COUNT(*) FILTER (WHERE content_type = 'series')
			FROM (
				SELECT unnest(genres) AS genre, content_type
				FROM content
				WHERE deleted_at IS NULL
			)
			GROUP BY genre
			ORDER BY genre`)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			var g models.GenreCount
			if err := rows.Scan(&g.Name, &g.MovieCount, &g.SeriesCount); err != nil {
				return err
			}
			genres = append(genres, g)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}
	return genres, nil
}
