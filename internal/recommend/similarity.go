// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"sort"

	"github.com/tomtom215/marquee/internal/models"
)

// splitLimit divides limit between movies (ceil) and series (floor).
func splitLimit(limit int) (movies, series int) {
	return (limit + 1) / 2, limit / 2
}

// genreScore is the share of source genres carried by the candidate:
// matches / max(len(source), 1). Comparison is exact and case-sensitive.
func genreScore(source, candidate []string) float64 {
	if len(source) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(source))
	for _, g := range source {
		set[g] = struct{}{}
	}

	matches := 0
	for _, g := range candidate {
		if _, ok := set[g]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(source))
}

// scoreCandidate ranks one fallback candidate against the source. Only
// movies can match on director; an empty source director never matches.
func scoreCandidate(source *models.ContentSummary, candidate models.ContentSummary, directorBoost float64) models.RankedResult {
	result := models.RankedResult{
		ContentSummary: candidate,
		Reason:         models.ReasonSameGenre,
		Score:          genreScore(source.Genres, candidate.Genres),
	}

	if candidate.Type == models.ContentTypeMovie &&
		source.DirectorOrCreator != "" &&
		candidate.DirectorOrCreator == source.DirectorOrCreator {
		result.Reason = models.ReasonSameDirector
		if result.Score < directorBoost {
			result.Score = directorBoost
		}
	}
	return result
}

// rankBySimilarity scores movies then series, stably sorts by score
// descending and truncates to limit.
func rankBySimilarity(source *models.ContentSummary, movies, series []models.ContentSummary, limit int, directorBoost float64) []models.RankedResult {
	ranked := make([]models.RankedResult, 0, len(movies)+len(series))
	for _, m := range movies {
		ranked = append(ranked, scoreCandidate(source, m, directorBoost))
	}
	for _, s := range series {
		ranked = append(ranked, scoreCandidate(source, s, directorBoost))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// rankByViews merges per-type lists, stably sorts by views descending and
// truncates to limit.
func rankByViews(movies, series []models.ContentSummary, limit int) []models.ContentSummary {
	ranked := make([]models.ContentSummary, 0, len(movies)+len(series))
	for _, m := range movies {
		m.Type = models.ContentTypeMovie
		ranked = append(ranked, m)
	}
	for _, s := range series {
		s.Type = models.ContentTypeSeries
		ranked = append(ranked, s)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewsCount > ranked[j].ViewsCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
