// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// Reason explains why an item was recommended.
type Reason string

const (
	ReasonSameGenre    Reason = "same_genre"
	ReasonSameDirector Reason = "same_director"
)

// Valid reports whether r is a known reason.
func (r Reason) Valid() bool {
	return r == ReasonSameGenre || r == ReasonSameDirector
}

// RecommendationEdge is a persisted directed "from leads to to" relation.
// Score is in [0,1].
type RecommendationEdge struct {
	ID        string     `json:"id"`
	From      ContentRef `json:"from"`
	To        ContentRef `json:"to"`
	Reason    Reason     `json:"reason"`
	Score     float64    `json:"score"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RankedResult is a recommended item with the signal that placed it. Score
// is always serialized; a stored edge may carry 0.
type RankedResult struct {
	ContentSummary
	Reason Reason  `json:"reason"`
	Score  float64 `json:"score"`
}

// CandidateQuery selects fallback candidates of one type: items sharing at
// least one genre, or movies whose director equals Director. An empty
// Director never matches.
type CandidateQuery struct {
	Type      ContentType
	Genres    []string
	Director  string
	ExcludeID string
	Limit     int
}
