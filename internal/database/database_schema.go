// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
)

// Schema notes:
//   - seq columns record insertion order. "Repository order" everywhere in
//     this package means ORDER BY seq.
//   - genres is a VARCHAR list. Genre comparisons are exact and case-sensitive.
//   - deleted_at marks a soft-deleted record. Soft-deleted content is invisible
//     to every read in this package.
var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS content_seq START 1`,
	`CREATE TABLE IF NOT EXISTS content (
		id VARCHAR PRIMARY KEY,
		seq BIGINT NOT NULL DEFAULT nextval('content_seq'),
		content_type VARCHAR NOT NULL,
		slug VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		description VARCHAR NOT NULL DEFAULT '',
		genres VARCHAR[] NOT NULL,
		director VARCHAR,
		creator VARCHAR,
		rating DOUBLE NOT NULL DEFAULT 0,
		release_year INTEGER NOT NULL DEFAULT 0,
		views_count BIGINT NOT NULL DEFAULT 0,
		poster_url VARCHAR,
		backdrop_url VARCHAR,
		featured BOOLEAN NOT NULL DEFAULT false,
		featured_order INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp,
		deleted_at TIMESTAMP
	)`,
	`CREATE SEQUENCE IF NOT EXISTS recommendation_seq START 1`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id VARCHAR PRIMARY KEY,
		seq BIGINT NOT NULL DEFAULT nextval('recommendation_seq'),
		from_content_id VARCHAR NOT NULL,
		from_content_type VARCHAR NOT NULL,
		to_content_id VARCHAR NOT NULL,
		to_content_type VARCHAR NOT NULL,
		reason VARCHAR NOT NULL,
		score DOUBLE NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS view_events (
		id VARCHAR NOT NULL,
		content_id VARCHAR NOT NULL,
		content_type VARCHAR NOT NULL,
		device_type VARCHAR NOT NULL,
		device_name VARCHAR,
		ip_address VARCHAR,
		viewed_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS episodes (
		id VARCHAR PRIMARY KEY,
		series_id VARCHAR NOT NULL,
		season_number INTEGER NOT NULL,
		episode_number INTEGER NOT NULL,
		title VARCHAR NOT NULL
	)`,
}

var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_content_type ON content(content_type)`,
	`CREATE INDEX IF NOT EXISTS idx_content_views ON content(views_count)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_from ON recommendations(from_content_id, from_content_type)`,
	`CREATE INDEX IF NOT EXISTS idx_view_events_content ON view_events(content_id, content_type)`,
	`CREATE INDEX IF NOT EXISTS idx_view_events_viewed_at ON view_events(viewed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_series ON episodes(series_id)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (db *DB) createIndexes(ctx context.Context) error {
	for _, stmt := range indexStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
