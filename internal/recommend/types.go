// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"

	"github.com/tomtom215/marquee/internal/models"
)

// Note: this package does not import internal/database. The interfaces below
// are satisfied by *database.DB and by in-memory fakes in tests.

// ContentRepository is the read side of the catalog.
type ContentRepository interface {
	// FindByID returns nil, nil when the item is missing or soft-deleted.
	FindByID(ctx context.Context, id string, contentType models.ContentType) (*models.ContentSummary, error)

	// FindByIDs omits missing and soft-deleted ids.
	FindByIDs(ctx context.Context, ids []string, contentType models.ContentType) ([]models.ContentSummary, error)

	// FindCandidates returns similarity candidates in repository order.
	FindCandidates(ctx context.Context, q models.CandidateQuery) ([]models.ContentSummary, error)

	// FindTopByViews returns items ordered by views descending.
	FindTopByViews(ctx context.Context, contentType models.ContentType, limit int) ([]models.ContentSummary, error)
}

// EdgeStore persists explicit recommendation edges.
type EdgeStore interface {
	// EdgesFrom returns edges ordered by score descending, then creation order.
	EdgesFrom(ctx context.Context, from models.ContentRef, limit int) ([]models.RecommendationEdge, error)
	InsertEdge(ctx context.Context, edge *models.RecommendationEdge) error
}

// CreateEdgeRequest describes an edge to persist. A nil Score defaults to
// DefaultEdgeScore.
type CreateEdgeRequest struct {
	From   models.ContentRef
	To     models.ContentRef
	Reason models.Reason
	Score  *float64
}

// DefaultEdgeScore is assigned to edges created without a score.
const DefaultEdgeScore = 0.5

// Result paths reported in metrics.
const (
	pathPersisted = "persisted"
	pathFallback  = "fallback"
	pathCache     = "cache"
)
