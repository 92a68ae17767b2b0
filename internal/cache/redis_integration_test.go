// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Run with: MARQUEE_TEST_REDIS_URL=redis://localhost:6379/15 go test -tags integration ./internal/cache/
func newIntegrationRedis(t *testing.T) *RedisStore {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	url := os.Getenv("MARQUEE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping: MARQUEE_TEST_REDIS_URL is not set")
	}

	prefix := "marquee-test:" + uuid.NewString() + ":"
	rs, err := NewRedisStore(context.Background(), url, prefix)
	if err != nil {
		t.Fatalf("NewRedisStore() error = %v", err)
	}
	t.Cleanup(func() { _ = rs.Close() })
	return rs
}

func TestIntegration_RedisStoreRoundTrip(t *testing.T) {
	rs := newIntegrationRedis(t)
	ctx := context.Background()

	if _, ok, err := rs.Get(ctx, "trending:missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want miss", ok, err)
	}

	if err := rs.Set(ctx, "trending:a", []byte(`[{"id":"m1"}]`), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	v, ok, err := rs.Get(ctx, "trending:a")
	if err != nil || !ok || string(v) != `[{"id":"m1"}]` {
		t.Fatalf("Get() = %q, %v, %v; want stored value", v, ok, err)
	}

	raw, err := rs.rdb.Exists(ctx, rs.prefix+"trending:a").Result()
	if err != nil || raw != 1 {
		t.Errorf("prefixed key exists = %d, %v; want 1", raw, err)
	}

	if err := rs.Delete(ctx, "trending:a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := rs.Get(ctx, "trending:a"); ok {
		t.Error("entry still present after Delete")
	}
}

func TestIntegration_RedisStoreExpiry(t *testing.T) {
	rs := newIntegrationRedis(t)
	ctx := context.Background()

	if err := rs.Set(ctx, "recommendations:m1", []byte("x"), 200*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(500 * time.Millisecond)
	if _, ok, err := rs.Get(ctx, "recommendations:m1"); err != nil || ok {
		t.Errorf("Get() after ttl = ok %v, err %v; want miss", ok, err)
	}
}

func TestIntegration_RedisStoreJSON(t *testing.T) {
	rs := newIntegrationRedis(t)
	ctx := context.Background()

	type entry struct {
		ID    string  `json:"id"`
		Score float64 `json:"score"`
	}
	want := []entry{{"m2", 0.8}, {"s1", 0.5}}
	SetJSON(ctx, rs, "recommendations:m1", want, time.Minute)

	var got []entry
	if !GetJSON(ctx, rs, "recommendations:m1", &got) {
		t.Fatal("GetJSON() missed a value written by SetJSON")
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("GetJSON() = %+v, want %+v", got, want)
	}
}
