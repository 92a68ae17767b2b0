// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/marquee/internal/models"
)

func seededDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t)
	seeded, err := db.SeedSampleData(context.Background())
	checkNoError(t, err)
	if !seeded {
		t.Fatal("expected sample data to be inserted")
	}
	return db
}

func TestSeedSampleDataOnlyOnce(t *testing.T) {
	db := seededDB(t)

	again, err := db.SeedSampleData(context.Background())
	checkNoError(t, err)
	if again {
		t.Error("second seed must be a no-op")
	}

	counts, err := db.CountContent(context.Background())
	checkNoError(t, err)
	if counts.Movies != 6 || counts.Series != 5 || counts.Episodes != 3 {
		t.Errorf("CountContent() = %+v", counts)
	}
}

func TestSearchTitlesIsCaseInsensitive(t *testing.T) {
	db := seededDB(t)

	got, err := db.SearchTitles(context.Background(), "IN", models.ContentTypeMovie, 10)
	checkNoError(t, err)
	checkIDs(t, "SearchTitles", got, "inception", "interstellar")

	blank, err := db.SearchTitles(context.Background(), "  ", models.ContentTypeMovie, 10)
	checkNoError(t, err)
	if len(blank) != 0 {
		t.Errorf("blank query returned %d items", len(blank))
	}
}

func TestFindByGenre(t *testing.T) {
	db := seededDB(t)

	got, err := db.FindByGenre(context.Background(), "Crime", models.ContentTypeSeries, 10)
	checkNoError(t, err)
	checkIDs(t, "FindByGenre", got, "breaking-bad")

	none, err := db.FindByGenre(context.Background(), "crime", models.ContentTypeSeries, 10)
	checkNoError(t, err)
	if len(none) != 0 {
		t.Errorf("genre match must be case-sensitive, got %d items", len(none))
	}
}

func TestSearchFiltered(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	filter := models.AdvancedFilter{Genres: []string{"Sci-Fi"}, YearFrom: 2010, SortBy: models.SortYear}
	page1, total, err := db.SearchFiltered(ctx, filter, models.ContentTypeMovie, 2, 0)
	checkNoError(t, err)
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	checkIDs(t, "page1", page1, "dune", "arrival")

	page2, _, err := db.SearchFiltered(ctx, filter, models.ContentTypeMovie, 2, 2)
	checkNoError(t, err)
	checkIDs(t, "page2", page2, "interstellar", "inception")

	rated, total, err := db.SearchFiltered(ctx, models.AdvancedFilter{RatingMin: 9.0}, models.ContentTypeSeries, 10, 0)
	checkNoError(t, err)
	if total != 2 {
		t.Errorf("rating filter total = %d, want 2", total)
	}
	checkIDs(t, "rated", rated, "breaking-bad", "game-of-thrones")
}

func TestGenreCounts(t *testing.T) {
	db := seededDB(t)

	genres, err := db.GenreCounts(context.Background())
	checkNoError(t, err)

	byName := make(map[string]models.GenreCount, len(genres))
	for _, g := range genres {
		byName[g.Name] = g
	}
	if g := byName["Sci-Fi"]; g.MovieCount != 4 || g.SeriesCount != 3 {
		t.Errorf("Sci-Fi = %+v, want 4 movies and 3 series", g)
	}
	if g := byName["Horror"]; g.MovieCount != 0 || g.SeriesCount != 1 {
		t.Errorf("Horror = %+v, want 0 movies and 1 series", g)
	}
	for i := 1; i < len(genres); i++ {
		if genres[i-1].Name > genres[i].Name {
			t.Errorf("genres not sorted: %q before %q", genres[i-1].Name, genres[i].Name)
		}
	}
}

func TestHomeQueries(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	featured, err := db.FindFeatured(ctx, models.ContentTypeMovie, 3)
	checkNoError(t, err)
	checkIDs(t, "FindFeatured", featured, "interstellar", "inception", "dune")

	releases, err := db.FindNewReleases(ctx, models.ContentTypeMovie, 2)
	checkNoError(t, err)
	checkIDs(t, "FindNewReleases", releases, "dune", "parasite")

	rated, err := db.FindTopRated(ctx, models.ContentTypeSeries, 2)
	checkNoError(t, err)
	checkIDs(t, "FindTopRated", rated, "breaking-bad", "game-of-thrones")
}
