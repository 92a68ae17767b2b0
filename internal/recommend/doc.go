// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend ranks related and trending catalog items.
//
// # Related items
//
// GetRecommendations prefers persisted recommendation edges. When a source
// item has at least one edge, only edges are used: targets are resolved per
// content type, unresolved targets are dropped and edge order (score
// descending) is kept.
//
// Without edges the engine generates candidates on the fly:
//
//   - movies sharing a genre with the source, or directed by the source's
//     director (for a series source, its creator)
//   - series sharing a genre with the source
//
// The score is the number of source genres the candidate carries divided by
// the number of source genres. A director match lifts the score to at least
// Config.DirectorBoost and sets the reason to same_director. Movies fill the
// first ceil(limit/2) slots of the pool and series the remaining floor(limit/2)
// before the merged list is stably sorted by score.
//
// # Trending
//
// GetTrending takes the top ceil(limit/2) movies and floor(limit/2) series by
// views and re-sorts the union. Because each type is capped first, the result
// is not necessarily the global top-limit.
//
// # Usage
//
//	engine, err := recommend.NewEngine(db, db, recommend.DefaultConfig(), logger)
//	items, err := engine.GetRecommendations(ctx, "interstellar", models.ContentTypeMovie, 10)
//
// The engine holds no mutable ranking state and is safe for concurrent use.
package recommend
