// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/models"
)

// EdgesFrom returns the persisted edges leaving ref, highest score first.
// Equal scores keep creation order.
func (db *DB) EdgesFrom(ctx context.Context, ref models.ContentRef, limit int) ([]models.RecommendationEdge, error) {
	edges := []models.RecommendationEdge{}
	if limit <= 0 {
		return edges, nil
	}

	err := db.run(ctx, "select", "recommendations", func(ctx context.Context) error {
		rows, err := db.conn.QueryContext(ctx, `
			SELECT id, from_content_id, from_content_type, to_content_id, to_content_type,
				reason, score, created_at
			FROM recommendations
			WHERE from_content_id = ? AND from_content_type = ?
			ORDER BY score DESC, seq
			LIMIT ?`,
			ref.ID, string(ref.Type), limit)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			var (
				e                models.RecommendationEdge
				fromType, toType string
				reason           string
			)
			if err := rows.Scan(&e.ID, &e.From.ID, &fromType, &e.To.ID, &toType, &reason, &e.Score, &e.CreatedAt); err != nil {
				return err
			}
			e.From.Type = models.ContentType(fromType)
			e.To.Type = models.ContentType(toType)
			e.Reason = models.Reason(reason)
			e.CreatedAt = e.CreatedAt.UTC()
			edges = append(edges, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query recommendation edges: %w", err)
	}
	return edges, nil
}

// InsertEdge persists a recommendation edge. A missing id is generated and a
// zero CreatedAt defaults to now.
func (db *DB) InsertEdge(ctx context.Context, edge *models.RecommendationEdge) error {
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	if edge.CreatedAt.IsZero() {
		edge.CreatedAt = time.Now().UTC()
	}

	err := db.run(ctx, "insert", "recommendations", func(ctx context.Context) error {
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO recommendations (
				id, from_content_id, from_content_type, to_content_id, to_content_type,
				reason, score, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			edge.ID, edge.From.ID, string(edge.From.Type), edge.To.ID, string(edge.To.Type),
			string(edge.Reason), edge.Score, edge.CreatedAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("insert recommendation edge: %w", err)
	}
	return nil
}
