// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
)

// testDBSemaphore limits concurrent DuckDB instances. It is held for the
// whole test so CGO work from parallel tests does not interleave.
var testDBSemaphore = make(chan struct{}, 1)

func testBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// setupTestDB creates an in-memory database that is closed when the test
// completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:         ":memory:",
		MaxMemory:    "512MB",
		QueryTimeout: 10 * time.Second,
	}

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		db, err := New(cfg, testBreakerConfig())
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
		return res.db
	case <-time.After(60 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 60s")
		return nil
	}
}

// checkNoError fails the test if err is not nil.
func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkIDs compares the ids of items against want, in order.
func checkIDs(t *testing.T, name string, items []models.ContentSummary, want ...string) {
	t.Helper()
	if len(items) != len(want) {
		got := make([]string, len(items))
		for i := range items {
			got[i] = items[i].ID
		}
		t.Fatalf("%s: got ids %v, want %v", name, got, want)
	}
	for i := range items {
		if items[i].ID != want[i] {
			t.Errorf("%s[%d]: got id %q, want %q", name, i, items[i].ID, want[i])
		}
	}
}

func insertMovie(t *testing.T, db *DB, id, director string, views int64, genres ...string) {
	t.Helper()
	checkNoError(t, db.InsertContent(context.Background(), &models.Content{
		ContentSummary: models.ContentSummary{
			ID:         id,
			Type:       models.ContentTypeMovie,
			Slug:       id,
			Title:      "Movie " + id,
			Genres:     genres,
			ViewsCount: views,
		},
		Director: director,
	}))
}

func insertSeries(t *testing.T, db *DB, id, creator string, views int64, genres ...string) {
	t.Helper()
	checkNoError(t, db.InsertContent(context.Background(), &models.Content{
		ContentSummary: models.ContentSummary{
			ID:         id,
			Type:       models.ContentTypeSeries,
			Slug:       id,
			Title:      "Series " + id,
			Genres:     genres,
			ViewsCount: views,
		},
		Creator: creator,
	}))
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)

	checkNoError(t, db.Ping(context.Background()))
	if got := db.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed", got)
	}
	if db.Conn() == nil {
		t.Error("Conn() returned nil")
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	checkNoError(t, db.initialize())
}

func TestQueryAfterCloseFails(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	db, err := New(&config.DatabaseConfig{Path: ":memory:"}, testBreakerConfig())
	checkNoError(t, err)
	checkNoError(t, db.Close())

	_, err = db.FindByID(context.Background(), "x", models.ContentTypeMovie)
	if err == nil {
		t.Fatal("expected error after Close")
	}
	if errors.Is(err, ErrCircuitOpen) {
		t.Errorf("single failure must not open the breaker: %v", err)
	}
}
