// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/models"
)

// memoryCatalog is an in-memory ContentRepository and EdgeStore. Items and
// edges keep insertion order, which stands in for repository order.
type memoryCatalog struct {
	mu      sync.Mutex
	items   []models.ContentSummary
	deleted map[models.ContentRef]bool
	edges   []models.RecommendationEdge

	candidateQueries []models.CandidateQuery
	topQueries       map[models.ContentType]int
	findByIDsCalls   map[models.ContentType]int

	failCandidates error
	failEdges      error
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		deleted:        make(map[models.ContentRef]bool),
		topQueries:     make(map[models.ContentType]int),
		findByIDsCalls: make(map[models.ContentType]int),
	}
}

func (m *memoryCatalog) add(items ...models.ContentSummary) *memoryCatalog {
	m.items = append(m.items, items...)
	return m
}

func (m *memoryCatalog) softDelete(ref models.ContentRef) {
	m.deleted[ref] = true
}

func (m *memoryCatalog) live(c *models.ContentSummary) bool {
	return !m.deleted[c.Ref()]
}

func (m *memoryCatalog) FindByID(_ context.Context, id string, t models.ContentType) (*models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		c := m.items[i]
		if c.ID == id && c.Type == t && m.live(&c) {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memoryCatalog) FindByIDs(_ context.Context, ids []string, t models.ContentType) ([]models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findByIDsCalls[t]++
	var out []models.ContentSummary
	for i := range m.items {
		c := m.items[i]
		if c.Type == t && slices.Contains(ids, c.ID) && m.live(&c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) FindCandidates(_ context.Context, q models.CandidateQuery) ([]models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidateQueries = append(m.candidateQueries, q)
	if m.failCandidates != nil {
		return nil, m.failCandidates
	}
	var out []models.ContentSummary
	for i := range m.items {
		c := m.items[i]
		if c.Type != q.Type || c.ID == q.ExcludeID || !m.live(&c) {
			continue
		}
		overlap := slices.ContainsFunc(c.Genres, func(g string) bool { return slices.Contains(q.Genres, g) })
		director := q.Type == models.ContentTypeMovie && q.Director != "" && c.DirectorOrCreator == q.Director
		if overlap || director {
			out = append(out, c)
		}
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (m *memoryCatalog) FindTopByViews(_ context.Context, t models.ContentType, limit int) ([]models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topQueries[t] = limit
	var out []models.ContentSummary
	for i := range m.items {
		c := m.items[i]
		if c.Type == t && m.live(&c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ViewsCount > out[j].ViewsCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryCatalog) EdgesFrom(_ context.Context, from models.ContentRef, limit int) ([]models.RecommendationEdge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failEdges != nil {
		return nil, m.failEdges
	}
	var out []models.RecommendationEdge
	for _, e := range m.edges {
		if e.From == from {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryCatalog) InsertEdge(_ context.Context, edge *models.RecommendationEdge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if edge.ID == "" {
		edge.ID = edge.From.ID + "->" + edge.To.ID
	}
	m.edges = append(m.edges, *edge)
	return nil
}

var errBackend = errors.New("backend unavailable")

func movie(id, director string, views int64, genres ...string) models.ContentSummary {
	return models.ContentSummary{
		ID:                id,
		Type:              models.ContentTypeMovie,
		Title:             id,
		Genres:            genres,
		DirectorOrCreator: director,
		ViewsCount:        views,
	}
}

func series(id, creator string, views int64, genres ...string) models.ContentSummary {
	return models.ContentSummary{
		ID:                id,
		Type:              models.ContentTypeSeries,
		Title:             id,
		Genres:            genres,
		DirectorOrCreator: creator,
		ViewsCount:        views,
	}
}

func movieRef(id string) models.ContentRef {
	return models.ContentRef{ID: id, Type: models.ContentTypeMovie}
}

func seriesRef(id string) models.ContentRef {
	return models.ContentRef{ID: id, Type: models.ContentTypeSeries}
}

func newTestEngine(tb testing.TB, catalog *memoryCatalog) *Engine {
	tb.Helper()
	e, err := NewEngine(catalog, catalog, nil, zerolog.Nop())
	if err != nil {
		tb.Fatalf("NewEngine: %v", err)
	}
	return e
}

func resultIDs(results []models.RankedResult) []string {
	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	return ids
}

func summaryIDs(items []models.ContentSummary) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}
