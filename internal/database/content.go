// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/models"
)

// listSep joins genre lists for binding and scanning. chr(31) is the ASCII
// unit separator and never appears in a genre name.
const listSep = "\x1f"

// contentColumns is the projection every content read scans with scanContent.
const contentColumns = `id, content_type, slug, title, description,
	COALESCE(array_to_string(genres, chr(31)), ''),
	CASE WHEN content_type = 'movie' THEN COALESCE(director, '') ELSE COALESCE(creator, '') END,
	rating, release_year, views_count,
	COALESCE(poster_url, ''), COALESCE(backdrop_url, ''),
	featured, COALESCE(featured_order, 0), created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (models.ContentSummary, error) {
	var (
		c           models.ContentSummary
		contentType string
		genres      string
	)
	err := row.Scan(
		&c.ID, &contentType, &c.Slug, &c.Title, &c.Description,
		&genres, &c.DirectorOrCreator,
		&c.Rating, &c.ReleaseYear, &c.ViewsCount,
		&c.PosterURL, &c.BackdropURL,
		&c.Featured, &c.FeaturedOrder, &c.CreatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Type = models.ContentType(contentType)
	c.Genres = splitList(genres)
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

// joinList binds a string list for string_split(?, chr(31)). Empty lists
// bind as NULL because string_split('') yields [''].
func joinList(items []string) any {
	if len(items) == 0 {
		return nil
	}
	return strings.Join(items, listSep)
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSep)
}

// contentSelect is a filtered read of the content table. Soft-deleted rows
// are always excluded.
type contentSelect struct {
	where   []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

func (q *contentSelect) filter(clause string, args ...any) {
	q.where = append(q.where, clause)
	q.args = append(q.args, args...)
}

func (q *contentSelect) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(contentColumns)
	sb.WriteString(" FROM content WHERE deleted_at IS NULL")
	for _, clause := range q.where {
		sb.WriteString(" AND ")
		sb.WriteString(clause)
	}
	sb.WriteString(" ORDER BY ")
	if q.orderBy != "" {
		sb.WriteString(q.orderBy)
		sb.WriteString(", ")
	}
	sb.WriteString("seq")

	args := append([]any{}, q.args...)
	if q.limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.limit)
	}
	if q.offset > 0 {
		sb.WriteString(" OFFSET ?")
		args = append(args, q.offset)
	}
	return sb.String(), args
}

func (db *DB) selectContent(ctx context.Context, operation string, q *contentSelect) ([]models.ContentSummary, error) {
	query, args := q.build()
	results := []models.ContentSummary{}

	err := db.run(ctx, operation, "content", func(ctx context.Context) error {
		rows, err := db.conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			c, err := scanContent(rows)
			if err != nil {
				return err
			}
			results = append(results, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", operation, err)
	}
	return results, nil
}

// FindByID returns the live item or nil, nil when it does not exist or has
// been soft-deleted.
func (db *DB) FindByID(ctx context.Context, id string, contentType models.ContentType) (*models.ContentSummary, error) {
	q := &contentSelect{limit: 1}
	q.filter("id = ?", id)
	q.filter("content_type = ?", string(contentType))

	items, err := db.selectContent(ctx, "content_by_id", q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// FindByIDs returns the live items of one type among ids, in repository
// order. Missing or soft-deleted ids are omitted.
func (db *DB) FindByIDs(ctx context.Context, ids []string, contentType models.ContentType) ([]models.ContentSummary, error) {
	if len(ids) == 0 {
		return []models.ContentSummary{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	q := &contentSelect{}
	q.filter("content_type = ?", string(contentType))
	q.filter("id IN ("+strings.Join(placeholders, ", ")+")", args...)
	return db.selectContent(ctx, "content_by_ids", q)
}

// FindCandidates returns items of q.Type, other than q.ExcludeID, that share
// at least one genre with q.Genres or (movies only) whose director equals
// q.Director. Results are in repository order.
func (db *DB) FindCandidates(ctx context.Context, cq models.CandidateQuery) ([]models.ContentSummary, error) {
	var (
		match []string
		args  []any
	)
	if len(cq.Genres) > 0 {
		match = append(match, "list_has_any(genres, string_split(?, chr(31)))")
		args = append(args, joinList(cq.Genres))
	}
	if cq.Type == models.ContentTypeMovie && cq.Director != "" {
		match = append(match, "director = ?")
		args = append(args, cq.Director)
	}
	if len(match) == 0 || cq.Limit <= 0 {
		return []models.ContentSummary{}, nil
	}

	q := &contentSelect{limit: cq.Limit}
	q.filter("content_type = ?", string(cq.Type))
	q.filter("id <> ?", cq.ExcludeID)
	q.filter("("+strings.Join(match, " OR ")+")", args...)
	return db.selectContent(ctx, "content_candidates", q)
}

// FindByGenreOverlap returns items of one type sharing at least one genre.
// It and FindByDirector are the single-filter forms of FindCandidates. The
// recommendation engine calls FindCandidates so that the genre and director
// matches come back in one repository-ordered list.
func (db *DB) FindByGenreOverlap(ctx context.Context, genres []string, contentType models.ContentType, excludeID string, limit int) ([]models.ContentSummary, error) {
	return db.FindCandidates(ctx, models.CandidateQuery{
		Type:      contentType,
		Genres:    genres,
		ExcludeID: excludeID,
		Limit:     limit,
	})
}

// FindByDirector returns movies directed by name. An empty name matches
// nothing. See FindByGenreOverlap.
func (db *DB) FindByDirector(ctx context.Context, name, excludeID string, limit int) ([]models.ContentSummary, error) {
	return db.FindCandidates(ctx, models.CandidateQuery{
		Type:      models.ContentTypeMovie,
		Director:  name,
		ExcludeID: excludeID,
		Limit:     limit,
	})
}

// FindTopByViews returns the most viewed items of one type.
func (db *DB) FindTopByViews(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error) {
	if limit <= 0 {
		return []models.ContentSummary{}, nil
	}
	q := &contentSelect{orderBy: "views_count DESC", limit: limit}
	q.filter("content_type = ?", string(contentType))
	return db.selectContent(ctx, "content_top_views", q)
}

// InsertContent stores a catalog record. A missing id is generated and a
// zero CreatedAt defaults to now.
func (db *DB) InsertContent(ctx context.Context, c *models.Content) error {
	if !c.Type.Valid() {
		return fmt.Errorf("insert content: %w", models.ErrUnknownContentType)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	var featuredOrder any
	if c.Featured {
		featuredOrder = c.FeaturedOrder
	}

	err := db.run(ctx, "insert", "content", func(ctx context.Context) error {
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO content (
				id, content_type, slug, title, description, genres, director, creator,
				rating, release_year, views_count, poster_url, backdrop_url,
				featured, featured_order, created_at, deleted_at
			) VALUES (?, ?, ?, ?, ?, COALESCE(string_split(?, chr(31)), []::VARCHAR[]), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, string(c.Type), c.Slug, c.Title, c.Description, joinList(c.Genres),
			nullString(c.Director), nullString(c.Creator),
			c.Rating, c.ReleaseYear, c.ViewsCount,
			nullString(c.PosterURL), nullString(c.BackdropURL),
			c.Featured, featuredOrder, c.CreatedAt.UTC(), nullTime(c.DeletedAt),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert content %s: %w", c.ID, err)
	}
	return nil
}

// SoftDeleteContent marks an item deleted. Deleted items disappear from all
// reads but their edges and view events are kept.
func (db *DB) SoftDeleteContent(ctx context.Context, id string, contentType models.ContentType) error {
	err := db.run(ctx, "update", "content", func(ctx context.Context) error {
		_, err := db.conn.ExecContext(ctx,
			`UPDATE content SET deleted_at = ? WHERE id = ? AND content_type = ? AND deleted_at IS NULL`,
			time.Now().UTC(), id, string(contentType))
		return err
	})
	if err != nil {
		return fmt.Errorf("soft delete content %s: %w", id, err)
	}
	return nil
}

// InsertEpisode stores one episode row of a series.
func (db *DB) InsertEpisode(ctx context.Context, seriesID string, season, episode int, title string) error {
	err := db.run(ctx, "insert", "episodes", func(ctx context.Context) error {
		_, err := db.conn.ExecContext(ctx,
			`INSERT INTO episodes (id, series_id, season_number, episode_number, title) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), seriesID, season, episode, title)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert episode: %w", err)
	}
	return nil
}

// CountContent returns live catalog totals.
func (db *DB) CountContent(ctx context.Context) (models.DashboardContent, error) {
	var counts models.DashboardContent
	err := db.run(ctx, "count", "content", func(ctx context.Context) error {
		return db.conn.QueryRowContext(ctx, `
			SELECT
				COUNT(*) FILTER (WHERE content_type = 'movie'),
				COUNT(*) FILTER (WHERE content_type = 'series'),
				(SELECT COUNT(*) FROM episodes)
			FROM content
			WHERE deleted_at IS NULL`,
		).Scan(&counts.Movies, &counts.Series, &counts.Episodes)
	})
	if err != nil {
		return counts, fmt.Errorf("count content: %w", err)
	}
	counts.Total = counts.Movies + counts.Series
	return counts, nil
}

// contentEmpty reports whether the content table has no rows at all.
func (db *DB) contentEmpty(ctx context.Context) (bool, error) {
	var n int64
	err := db.run(ctx, "count", "content", func(ctx context.Context) error {
		return db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM content`).Scan(&n)
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("count content: %w", err)
	}
	return n == 0, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
