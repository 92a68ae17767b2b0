// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    ContentType
		wantErr bool
	}{
		{"movie", ContentTypeMovie, false},
		{"series", ContentTypeSeries, false},
		{"Movie", "", true},
		{"all", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseContentType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownContentType) {
				t.Errorf("ParseContentType(%q) err = %v, want ErrUnknownContentType", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseContentType(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
		if !got.Valid() {
			t.Errorf("%q.Valid() = false", got)
		}
	}
	if ContentType("episode").Valid() {
		t.Error(`ContentType("episode").Valid() = true`)
	}
}

func TestReasonValid(t *testing.T) {
	for _, r := range []Reason{ReasonSameGenre, ReasonSameDirector} {
		if !r.Valid() {
			t.Errorf("%q.Valid() = false", r)
		}
	}
	for _, r := range []Reason{"", "popular", "SAME_GENRE"} {
		if r.Valid() {
			t.Errorf("%q.Valid() = true", r)
		}
	}
}

func TestContentSummary(t *testing.T) {
	movie := Content{
		ContentSummary: ContentSummary{ID: "m1", Type: ContentTypeMovie},
		Director:       "Denis Villeneuve",
		Creator:        "ignored",
	}
	s := movie.Summary()
	if s.DirectorOrCreator != "Denis Villeneuve" {
		t.Errorf("movie DirectorOrCreator = %q", s.DirectorOrCreator)
	}
	if s.Genres == nil {
		t.Error("Genres should be normalised to an empty slice")
	}
	if ref := s.Ref(); ref != (ContentRef{ID: "m1", Type: ContentTypeMovie}) {
		t.Errorf("Ref() = %+v", ref)
	}

	series := Content{
		ContentSummary: ContentSummary{ID: "s1", Type: ContentTypeSeries, Genres: []string{"Drama"}},
		Director:       "ignored",
		Creator:        "Vince Gilligan",
	}
	if got := series.Summary().DirectorOrCreator; got != "Vince Gilligan" {
		t.Errorf("series DirectorOrCreator = %q", got)
	}
}

func TestRankedResultKeepsZeroScore(t *testing.T) {
	r := RankedResult{
		ContentSummary: ContentSummary{ID: "m2", Type: ContentTypeMovie, Genres: []string{}},
		Reason:         ReasonSameGenre,
		Score:          0,
	}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, field := range []string{`"score":0`, `"reason":"same_genre"`} {
		if !strings.Contains(string(b), field) {
			t.Errorf("%s missing from %s", field, b)
		}
	}
}
