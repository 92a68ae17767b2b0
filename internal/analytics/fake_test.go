// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package analytics

import (
	"context"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/models"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// memoryStore implements ContentResolver, ViewStore and ViewRecorder over
// slices.
type memoryStore struct {
	mu     sync.Mutex
	items  []models.ContentSummary
	events []models.ViewEvent

	episodes int64
	err      error
}

func (m *memoryStore) FindByID(_ context.Context, id string, t models.ContentType) (*models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id && m.items[i].Type == t {
			c := m.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindByIDs(_ context.Context, ids []string, t models.ContentType) ([]models.ContentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ContentSummary
	for _, c := range m.items {
		if c.Type == t && slices.Contains(ids, c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryStore) CountByDevice(_ context.Context, id string, t models.ContentType, since time.Time) ([]models.DeviceCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[string]int64{}
	for _, ev := range m.events {
		if ev.ContentID == id && ev.ContentType == t && !ev.ViewedAt.Before(since) {
			counts[ev.DeviceType]++
		}
	}
	out := make([]models.DeviceCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, models.DeviceCount{DeviceType: d, Count: n})
	}
	// Map order; the service sorts.
	return out, nil
}

func (m *memoryStore) CountByContent(_ context.Context, t models.ContentType, since time.Time, limit int) ([]models.ContentCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	counts := map[string]int64{}
	for _, ev := range m.events {
		if ev.ContentType == t && !ev.ViewedAt.Before(since) {
			counts[ev.ContentID]++
		}
	}
	out := make([]models.ContentCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, models.ContentCount{ContentID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ContentID < out[j].ContentID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) CountViews(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, ev := range m.events {
		if since.IsZero() || !ev.ViewedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) CountContent(_ context.Context) (models.DashboardContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var c models.DashboardContent
	for _, item := range m.items {
		if item.Type == models.ContentTypeMovie {
			c.Movies++
		} else {
			c.Series++
		}
	}
	c.Episodes = m.episodes
	c.Total = c.Movies + c.Series
	return c, nil
}

func (m *memoryStore) RecordView(_ context.Context, ev *models.ViewEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == ev.ContentID && m.items[i].Type == ev.ContentType {
			m.items[i].ViewsCount++
			m.events = append(m.events, *ev)
			return nil
		}
	}
	return models.ErrRecordNotFound
}

func (m *memoryStore) view(id string, t models.ContentType, device string, at time.Time) {
	m.events = append(m.events, models.ViewEvent{ContentID: id, ContentType: t, DeviceType: device, ViewedAt: at})
}

func newTestService(tb testing.TB, store *memoryStore) *Service {
	tb.Helper()
	s, err := NewService(store, store, store, DefaultConfig(), zerolog.Nop())
	if err != nil {
		tb.Fatalf("NewService: %v", err)
	}
	s.now = func() time.Time { return fixedNow }
	return s
}

func catalogStore() *memoryStore {
	return &memoryStore{
		items: []models.ContentSummary{
			{ID: "m1", Type: models.ContentTypeMovie, Title: "M1"},
			{ID: "m2", Type: models.ContentTypeMovie, Title: "M2"},
			{ID: "m3", Type: models.ContentTypeMovie, Title: "M3"},
			{ID: "s1", Type: models.ContentTypeSeries, Title: "S1"},
		},
	}
}
