// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/models"
)

func TestRespondServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid parameter", fmt.Errorf("%w: limit must be >= 0", models.ErrInvalidParameter), http.StatusBadRequest, CodeBadRequest},
		{"not found", fmt.Errorf("movie dune: %w", models.ErrContentNotFound), http.StatusNotFound, CodeNotFound},
		{"breaker open", fmt.Errorf("query: %w", database.ErrCircuitOpen), http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"anything else", errors.New("duckdb: disk I/O error"), http.StatusInternalServerError, CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakes()
			f.rec.err = tt.err
			rec := do(t, f.handler().routes(), http.MethodGet, "/api/v1/trending", "")

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			env := decodeEnvelope(t, rec)
			if env.Success || env.Error == nil || env.Error.Code != tt.wantBody {
				t.Fatalf("envelope = %+v, want error code %s", env, tt.wantBody)
			}
			if strings.Contains(env.Error.Message, "disk I/O") {
				t.Errorf("internal error leaked to client: %q", env.Error.Message)
			}
		})
	}
}

func TestRespondServiceError_CanceledWritesNothing(t *testing.T) {
	f := newFakes()
	f.rec.err = context.Canceled
	rec := do(t, f.handler().routes(), http.MethodGet, "/api/v1/trending", "")
	if rec.Body.Len() != 0 {
		t.Errorf("wrote %q for a canceled request", rec.Body.String())
	}
}

func TestGetRecommendations(t *testing.T) {
	f := newFakes()
	f.rec.results = []models.RankedResult{{
		ContentSummary: models.ContentSummary{ID: "inception", Type: models.ContentTypeMovie, Title: "Inception", Genres: []string{"Sci-Fi"}},
		Reason:         models.ReasonSameDirector,
		Score:          0.9,
	}}
	h := f.handler().routes()

	rec := do(t, h, http.MethodGet, "/api/v1/content/interstellar/recommendations?type=movie", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var data RecommendationsResponse
	decodeData(t, env, &data)

	if len(data.Recommendations) != 1 || data.Recommendations[0].ID != "inception" {
		t.Errorf("recommendations = %+v", data.Recommendations)
	}
	if f.rec.gotID != "interstellar" || f.rec.gotType != models.ContentTypeMovie || f.rec.gotLimit != 20 {
		t.Errorf("service called with %q/%q/%d, want interstellar/movie/20", f.rec.gotID, f.rec.gotType, f.rec.gotLimit)
	}
	if env.Meta == nil {
		t.Error("meta with query time missing")
	}
}

func TestRecommendLimitDefault(t *testing.T) {
	f := newFakes()
	d := DefaultDefaults()
	d.Limit = 50
	d.RecommendLimit = 7
	h := NewHandler(f.rec, f.an, f.disc, f.health, WithDefaults(d)).routes()

	do(t, h, http.MethodGet, "/api/v1/content/dune/recommendations?type=movie", "")
	if f.rec.gotLimit != 7 {
		t.Errorf("recommendations limit = %d, want 7", f.rec.gotLimit)
	}

	do(t, h, http.MethodGet, "/api/v1/trending", "")
	if f.rec.gotLimit != 7 {
		t.Errorf("trending limit = %d, want 7", f.rec.gotLimit)
	}

	do(t, h, http.MethodGet, "/api/v1/search?q=dune", "")
	if f.disc.gotLimit != 50 {
		t.Errorf("search limit = %d, want page size 50", f.disc.gotLimit)
	}
}

func TestQueryValidation(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode string
		wantMsg  string
	}{
		{"missing type", "/api/v1/content/dune/recommendations", CodeValidationFailed, "type is required"},
		{"bad type", "/api/v1/content/dune/recommendations?type=episode", CodeValidationFailed, "type must be movie or series"},
		{"non-numeric limit", "/api/v1/trending?limit=ten", CodeBadRequest, "limit must be an integer"},
		{"negative limit", "/api/v1/trending?limit=-1", CodeValidationFailed, "limit"},
		{"bad selector", "/api/v1/search?type=documentary", CodeValidationFailed, "type must be movie, series or all"},
		{"bad sort", "/api/v1/search/advanced?sort_by=random", CodeValidationFailed, "sort_by"},
		{"page zero", "/api/v1/search/advanced?page=0", CodeValidationFailed, "page"},
		{"bad rating", "/api/v1/search/advanced?rating_min=high", CodeBadRequest, "rating_min"},
		{"stats bad type", "/api/v1/analytics/content/dune/stats?type=all", CodeValidationFailed, "type must be movie or series"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newFakes().handler().routes(), http.MethodGet, tt.target, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", env.Error.Code, tt.wantCode)
			}
			if !strings.Contains(env.Error.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to mention %q", env.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorDetails(t *testing.T) {
	rec := do(t, newFakes().handler().routes(), http.MethodGet, "/api/v1/content/dune/recommendations", "")
	env := decodeEnvelope(t, rec)

	fields, ok := env.Error.Details["fields"].([]any)
	if !ok || len(fields) != 1 {
		t.Fatalf("details.fields = %#v", env.Error.Details["fields"])
	}
	first := fields[0].(map[string]any)
	if first["field"] != "type" || first["tag"] != "required" {
		t.Errorf("field detail = %v", first)
	}
}

func TestDefaultsApplied(t *testing.T) {
	f := newFakes()
	h := f.handler().routes()

	do(t, h, http.MethodGet, "/api/v1/analytics/popular", "")
	if f.an.gotSel != "all" || f.an.gotLimit != 20 || f.an.gotDays != 30 {
		t.Errorf("popular defaults = %q/%d/%d, want all/20/30", f.an.gotSel, f.an.gotLimit, f.an.gotDays)
	}

	do(t, h, http.MethodGet, "/api/v1/search/suggestions?q=du", "")
	if f.disc.gotLimit != 10 {
		t.Errorf("suggestions limit = %d, want 10", f.disc.gotLimit)
	}

	do(t, h, http.MethodGet, "/api/v1/genres/Drama", "")
	if f.disc.gotSel != "all" || f.disc.gotLimit != 20 {
		t.Errorf("genre defaults = %q/%d, want all/20", f.disc.gotSel, f.disc.gotLimit)
	}

	do(t, h, http.MethodGet, "/api/v1/analytics/content/dune/stats", "")
	if f.an.gotDays != 30 {
		t.Errorf("stats days = %d, want 30", f.an.gotDays)
	}
}

func TestAdvancedSearch_ParsesFiltersAndPaginates(t *testing.T) {
	f := newFakes()
	rec := do(t, f.handler().routes(), http.MethodGet,
		"/api/v1/search/advanced?q=dark&genres=Drama,Crime&genres=Thriller&year_from=2000&year_to=2020&rating_min=8.5&type=movie&sort_by=rating&page=2&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	req := f.disc.advanced
	if req == nil {
		t.Fatal("service not called")
	}
	if req.Query != "dark" || req.YearFrom != 2000 || req.YearTo != 2020 || req.RatingMin != 8.5 {
		t.Errorf("filter = %+v", req.AdvancedFilter)
	}
	if got := strings.Join(req.Genres, "|"); got != "Drama|Crime|Thriller" {
		t.Errorf("genres = %s", got)
	}
	if req.Type != "movie" || req.SortBy != models.SortRating || req.Page != 2 || req.Limit != 5 {
		t.Errorf("request = %+v", req)
	}

	env := decodeEnvelope(t, rec)
	if env.Meta == nil || env.Meta.Pagination == nil || env.Meta.Pagination.Page != 2 {
		t.Errorf("meta.pagination = %+v", env.Meta)
	}
}

func TestWrappedResponses(t *testing.T) {
	tests := []struct {
		target string
		key    string
	}{
		{"/api/v1/trending", `"trending":`},
		{"/api/v1/search/suggestions?q=du", `"suggestions":`},
		{"/api/v1/genres", `"genres":`},
		{"/api/v1/carousels", `"carousels":`},
		{"/api/v1/hero", `"title":"Featured"`},
		{"/api/v1/home", `"hero":`},
	}

	h := newFakes().handler().routes()
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			env := decodeEnvelope(t, rec)
			if !env.Success || !strings.Contains(string(env.Data), tt.key) {
				t.Errorf("data = %s, want %s", env.Data, tt.key)
			}
		})
	}
}

func TestTrackView(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"recorded", `{"contentId":"dune","contentType":"movie","deviceType":"tv","deviceName":"Living room"}`, http.StatusOK, ""},
		{"missing fields", `{"deviceType":"tv"}`, http.StatusBadRequest, CodeValidationFailed},
		{"bad type", `{"contentId":"dune","contentType":"book"}`, http.StatusBadRequest, CodeValidationFailed},
		{"unknown field", `{"contentId":"dune","contentType":"movie","userId":"u1"}`, http.StatusBadRequest, CodeBadRequest},
		{"malformed", `{"contentId":`, http.StatusBadRequest, CodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakes()
			rec := do(t, f.handler().routes(), http.MethodPost, "/api/v1/analytics/view", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
				}
				if f.an.tracked != nil {
					t.Error("service called for an invalid request")
				}
				return
			}
			if f.an.tracked == nil || f.an.tracked.DeviceName != "Living room" || f.an.tracked.IPAddress != "192.0.2.1" {
				t.Errorf("tracked = %+v", f.an.tracked)
			}
		})
	}
}

func TestTrackView_EmptyBody(t *testing.T) {
	req := do(t, newFakes().handler().routes(), http.MethodPost, "/api/v1/analytics/view", "")
	if req.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", req.Code)
	}
	if env := decodeEnvelope(t, req); !strings.Contains(env.Error.Message, "empty") {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		health      fakeHealth
		wantLive    string
		wantReady   int
		readyStatus string
	}{
		{"all good", fakeHealth{breaker: "closed"}, "healthy", http.StatusOK, "ready"},
		{"database down", fakeHealth{pingErr: errors.New("closed"), breaker: "closed"}, "degraded", http.StatusServiceUnavailable, "not_ready"},
		{"breaker open", fakeHealth{breaker: "open"}, "healthy", http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakes()
			f.health = &tt.health
			h := f.handler().routes()

			live := do(t, h, http.MethodGet, "/api/v1/health", "")
			if live.Code != http.StatusOK {
				t.Fatalf("liveness status = %d, want 200", live.Code)
			}
			var status models.HealthStatus
			decodeData(t, decodeEnvelope(t, live), &status)
			if status.Status != tt.wantLive || status.Version != "test" {
				t.Errorf("liveness = %+v", status)
			}

			ready := do(t, h, http.MethodGet, "/api/v1/health/ready", "")
			if ready.Code != tt.wantReady {
				t.Fatalf("readiness status = %d, want %d", ready.Code, tt.wantReady)
			}
			decodeData(t, decodeEnvelope(t, ready), &status)
			if status.Status != tt.readyStatus {
				t.Errorf("readiness = %q, want %q", status.Status, tt.readyStatus)
			}
		})
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("/api\n/v1\x7f"); got != `/api\x0a/v1\x7f` {
		t.Errorf("sanitizeLogValue = %q", got)
	}
}
