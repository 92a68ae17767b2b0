// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"reflect"
	"slices"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

const repeatCalls = 25

// Every fallback candidate ties at score 1, so the order comes only from
// repository order and the movies-then-series merge. The pools are fetched
// concurrently; repeated calls must still agree exactly.
func TestGetRecommendations_DeterministicWithTies(t *testing.T) {
	catalog := newMemoryCatalog().add(
		movie("src", "", 0, "Drama"),
		movie("ma", "", 0, "Drama"),
		series("sa", "", 0, "Drama"),
		movie("mb", "", 0, "Drama"),
		series("sb", "", 0, "Drama"),
		movie("mc", "", 0, "Drama"),
	)
	e := newTestEngine(t, catalog)
	ctx := context.Background()

	first, err := e.GetRecommendations(ctx, "src", models.ContentTypeMovie, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultIDs(first); !slices.Equal(got, []string{"ma", "mb", "mc", "sa", "sb"}) {
		t.Fatalf("got %v, want [ma mb mc sa sb]", got)
	}

	for i := range repeatCalls {
		again, err := e.GetRecommendations(ctx, "src", models.ContentTypeMovie, 6)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("call %d differs:\n got %+v\nwant %+v", i, again, first)
		}
	}
}

func TestGetTrending_DeterministicWithTies(t *testing.T) {
	catalog := newMemoryCatalog().add(
		movie("m1", "", 100),
		series("s1", "", 100),
		movie("m2", "", 100),
		series("s2", "", 100),
	)
	e := newTestEngine(t, catalog)
	ctx := context.Background()

	first, err := e.GetTrending(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := summaryIDs(first); !slices.Equal(got, []string{"m1", "m2", "s1", "s2"}) {
		t.Fatalf("got %v, want [m1 m2 s1 s2]", got)
	}

	for i := range repeatCalls {
		again, err := e.GetTrending(ctx, 4)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("call %d differs:\n got %+v\nwant %+v", i, again, first)
		}
	}
}
