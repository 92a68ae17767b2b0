// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestViewLimiter_PerIPBurst(t *testing.T) {
	l := NewViewLimiter(3)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		if !l.Allow("192.0.2.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("192.0.2.1") {
		t.Error("fourth request inside the same instant should be throttled")
	}
	if !l.Allow("192.0.2.2") {
		t.Error("a different IP has its own bucket")
	}

	// 3 per minute refills one token every 20s.
	clock = clock.Add(20 * time.Second)
	if !l.Allow("192.0.2.1") {
		t.Error("token should have refilled after 20s")
	}
}

func TestViewLimiter_Disabled(t *testing.T) {
	l := NewViewLimiter(0)
	for i := 0; i < 1000; i++ {
		if !l.Allow("192.0.2.1") {
			t.Fatal("disabled limiter throttled a request")
		}
	}
	if len(l.clients) != 0 {
		t.Errorf("disabled limiter tracked %d clients", len(l.clients))
	}
}

func TestViewLimiter_Sweep(t *testing.T) {
	l := NewViewLimiter(10)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	l.Allow("192.0.2.1")
	clock = clock.Add(idleClientTTL / 2)
	l.Allow("192.0.2.2")
	clock = clock.Add(idleClientTTL/2 + time.Second)

	if removed := l.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if _, ok := l.clients["192.0.2.2"]; !ok {
		t.Error("recently seen client was swept")
	}
}

func TestViewLimiter_Middleware(t *testing.T) {
	l := NewViewLimiter(1)
	handler := l.Middleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	want := []int{http.StatusAccepted, http.StatusTooManyRequests}
	for i, code := range want {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/view", nil)
		req.RemoteAddr = "198.51.100.7:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != code {
			t.Errorf("request %d: status = %d, want %d", i+1, rec.Code, code)
		}
	}
}
