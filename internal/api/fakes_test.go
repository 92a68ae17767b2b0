// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/analytics"
	"github.com/tomtom215/marquee/internal/discovery"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

type fakeRecommender struct {
	err         error
	results     []models.RankedResult
	trending    []models.ContentSummary
	gotID       string
	gotType     models.ContentType
	gotLimit    int
	createdWith *recommend.CreateEdgeRequest
}

func (f *fakeRecommender) GetRecommendations(_ context.Context, id string, t models.ContentType, limit int) ([]models.RankedResult, error) {
	f.gotID, f.gotType, f.gotLimit = id, t, limit
	return f.results, f.err
}

func (f *fakeRecommender) GetTrending(_ context.Context, limit int) ([]models.ContentSummary, error) {
	f.gotLimit = limit
	return f.trending, f.err
}

func (f *fakeRecommender) CreateRecommendation(_ context.Context, req recommend.CreateEdgeRequest) (*models.RecommendationEdge, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdWith = &req
	score := 0.5
	if req.Score != nil {
		score = *req.Score
	}
	return &models.RecommendationEdge{ID: "edge-1", From: req.From, To: req.To, Reason: req.Reason, Score: score}, nil
}

type fakeAnalytics struct {
	err      error
	tracked  *analytics.TrackRequest
	gotDays  int
	gotLimit int
	gotSel   string
}

func (f *fakeAnalytics) TrackView(_ context.Context, req analytics.TrackRequest) (models.TrackResult, error) {
	if f.err != nil {
		return models.TrackResult{}, f.err
	}
	f.tracked = &req
	return models.TrackResult{Tracked: true}, nil
}

func (f *fakeAnalytics) GetContentStats(_ context.Context, id string, t models.ContentType, days int) (*models.StatsReport, error) {
	f.gotDays = days
	if f.err != nil {
		return nil, f.err
	}
	return &models.StatsReport{ContentID: id, ContentType: t, Period: "30 days", ByDevice: []models.DeviceBreakdown{}}, nil
}

func (f *fakeAnalytics) GetPopularContent(_ context.Context, selector string, limit, days int) (*models.PopularContent, error) {
	f.gotSel, f.gotLimit, f.gotDays = selector, limit, days
	if f.err != nil {
		return nil, f.err
	}
	return &models.PopularContent{Movies: []models.PopularItem{}, Series: []models.PopularItem{}}, nil
}

func (f *fakeAnalytics) GetDashboardStats(context.Context) (*models.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardStats{}, nil
}

type fakeDiscovery struct {
	err      error
	gotLimit int
	gotSel   string
	advanced *discovery.AdvancedRequest
}

func (f *fakeDiscovery) Search(_ context.Context, _ string, selector string, limit int) (*models.SearchResults, error) {
	f.gotSel, f.gotLimit = selector, limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.SearchResults{Movies: []models.ContentSummary{}, Series: []models.ContentSummary{}}, nil
}

func (f *fakeDiscovery) Suggestions(_ context.Context, _ string, limit int) ([]models.Suggestion, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return []models.Suggestion{{Text: "Dune", Type: models.ContentTypeMovie, Slug: "dune"}}, nil
}

func (f *fakeDiscovery) SearchByGenre(_ context.Context, genre, selector string, limit int) (*models.GenreResults, error) {
	f.gotSel, f.gotLimit = selector, limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.GenreResults{Genre: genre, Movies: []models.ContentSummary{}, Series: []models.ContentSummary{}}, nil
}

func (f *fakeDiscovery) AdvancedSearch(_ context.Context, req discovery.AdvancedRequest) (*models.AdvancedSearchResults, error) {
	f.advanced = &req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AdvancedSearchResults{
		Movies:     []models.ContentSummary{},
		Series:     []models.ContentSummary{},
		Pagination: models.Pagination{Page: req.Page, Limit: req.Limit, Total: 0, Pages: 0},
	}, nil
}

func (f *fakeDiscovery) GenresWithCounts(context.Context) ([]models.GenreCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.GenreCount{{Name: "Drama", MovieCount: 3, SeriesCount: 2}}, nil
}

func (f *fakeDiscovery) Home(context.Context) (*models.HomePage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.HomePage{
		Hero:      models.HomeHero{Title: "Featured", Items: []models.HeroItem{}},
		Carousels: []models.Carousel{{Title: "Trending Now", Slug: "trending", Items: []models.ContentSummary{}}},
	}, nil
}

type fakeHealth struct {
	pingErr error
	breaker string
}

func (f *fakeHealth) Ping(context.Context) error { return f.pingErr }
func (f *fakeHealth) BreakerState() string       { return f.breaker }

type fakes struct {
	rec    *fakeRecommender
	an     *fakeAnalytics
	disc   *fakeDiscovery
	health *fakeHealth
}

func newFakes() *fakes {
	return &fakes{
		rec:    &fakeRecommender{results: []models.RankedResult{}, trending: []models.ContentSummary{}},
		an:     &fakeAnalytics{},
		disc:   &fakeDiscovery{},
		health: &fakeHealth{breaker: "closed"},
	}
}

func (f *fakes) handler() *Handler {
	return NewHandler(f.rec, f.an, f.disc, f.health, WithVersion("test"))
}

// envelope mirrors models.APIResponse with a raw data field.
type envelope struct {
	Success   bool                 `json:"success"`
	Data      json.RawMessage      `json:"data"`
	Error     *models.APIError     `json:"error"`
	Timestamp string               `json:"timestamp"`
	Meta      *models.ResponseMeta `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, rec.Body.String())
	}
	if _, err := time.Parse(time.RFC3339, env.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339", env.Timestamp)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
