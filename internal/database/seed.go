// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
)

func sampleMovie(id, slug, title, director string, year int, rating float64, views int64, genres ...string) *models.Content {
	return &models.Content{
		ContentSummary: models.ContentSummary{
			ID:          id,
			Type:        models.ContentTypeMovie,
			Slug:        slug,
			Title:       title,
			Genres:      genres,
			Rating:      rating,
			ReleaseYear: year,
			ViewsCount:  views,
			PosterURL:   "https://via.placeholder.com/300x450?text=" + slug,
			BackdropURL: "https://via.placeholder.com/1280x720?text=" + slug,
		},
		Director: director,
	}
}

func sampleSeries(id, slug, title, creator string, year int, rating float64, views int64, genres ...string) *models.Content {
	return &models.Content{
		ContentSummary: models.ContentSummary{
			ID:          id,
			Type:        models.ContentTypeSeries,
			Slug:        slug,
			Title:       title,
			Genres:      genres,
			Rating:      rating,
			ReleaseYear: year,
			ViewsCount:  views,
			PosterURL:   "https://via.placeholder.com/300x450?text=" + slug,
			BackdropURL: "https://via.placeholder.com/1280x720?text=" + slug,
		},
		Creator: creator,
	}
}

func featured(c *models.Content, order int) *models.Content {
	c.Featured = true
	c.FeaturedOrder = order
	return c
}

// sampleCatalog is inserted in this order, which becomes repository order.
func sampleCatalog() []*models.Content {
	return []*models.Content{
		featured(sampleMovie("interstellar", "interstellar", "Interstellar", "Christopher Nolan", 2014, 8.6, 1500, "Sci-Fi", "Drama"), 1),
		featured(sampleMovie("inception", "inception", "Inception", "Christopher Nolan", 2010, 8.8, 1400, "Sci-Fi", "Action", "Thriller"), 2),
		sampleMovie("the-dark-knight", "the-dark-knight", "The Dark Knight", "Christopher Nolan", 2008, 9.0, 1800, "Action", "Crime", "Drama"),
		featured(sampleMovie("dune", "dune", "Dune", "Denis Villeneuve", 2021, 8.0, 1100, "Sci-Fi", "Adventure"), 3),
		sampleMovie("arrival", "arrival", "Arrival", "Denis Villeneuve", 2016, 7.9, 700, "Sci-Fi", "Drama"),
		sampleMovie("parasite", "parasite", "Parasite", "Bong Joon-ho", 2019, 8.5, 900, "Thriller", "Drama"),
		featured(sampleSeries("breaking-bad", "breaking-bad", "Breaking Bad", "Vince Gilligan", 2008, 9.5, 2000, "Crime", "Drama", "Thriller"), 1),
		featured(sampleSeries("stranger-things", "stranger-things", "Stranger Things", "Matt Duffer, Ross Duffer", 2016, 8.7, 1600, "Sci-Fi", "Horror", "Drama"), 2),
		sampleSeries("game-of-thrones", "game-of-thrones", "Game of Thrones", "David Benioff, D.B. Weiss", 2011, 9.2, 1900, "Action", "Adventure", "Drama"),
		sampleSeries("the-mandalorian", "the-mandalorian", "The Mandalorian", "Jon Favreau", 2019, 8.7, 1200, "Sci-Fi", "Action", "Adventure"),
		sampleSeries("black-mirror", "black-mirror", "Black Mirror", "Charlie Brooker", 2011, 8.8, 1000, "Sci-Fi", "Drama", "Thriller"),
	}
}

func sampleEdges() []*models.RecommendationEdge {
	movie := func(id string) models.ContentRef { return models.ContentRef{ID: id, Type: models.ContentTypeMovie} }
	series := func(id string) models.ContentRef { return models.ContentRef{ID: id, Type: models.ContentTypeSeries} }

	return []*models.RecommendationEdge{
		{From: movie("interstellar"), To: movie("inception"), Reason: models.ReasonSameDirector, Score: 0.9},
		{From: movie("interstellar"), To: movie("arrival"), Reason: models.ReasonSameGenre, Score: 0.7},
		{From: movie("interstellar"), To: series("black-mirror"), Reason: models.ReasonSameGenre, Score: 0.5},
		{From: series("breaking-bad"), To: movie("the-dark-knight"), Reason: models.ReasonSameGenre, Score: 0.6},
	}
}

// SeedSampleData inserts the sample catalog when the content table is empty.
// It reports whether anything was inserted.
func (db *DB) SeedSampleData(ctx context.Context) (bool, error) {
	empty, err := db.contentEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		logging.Debug().Msg("Content table not empty, skipping sample data")
		return false, nil
	}

	catalog := sampleCatalog()
	for _, c := range catalog {
		if err := db.InsertContent(ctx, c); err != nil {
			return false, fmt.Errorf("seed content: %w", err)
		}
	}

	episodes := []string{"Pilot", "Cat's in the Bag...", "...And the Bag's in the River"}
	for i, title := range episodes {
		if err := db.InsertEpisode(ctx, "breaking-bad", 1, i+1, title); err != nil {
			return false, fmt.Errorf("seed episodes: %w", err)
		}
	}

	edges := sampleEdges()
	for _, e := range edges {
		if err := db.InsertEdge(ctx, e); err != nil {
			return false, fmt.Errorf("seed recommendations: %w", err)
		}
	}

	logging.Info().
		Int("content", len(catalog)).
		Int("episodes", len(episodes)).
		Int("recommendations", len(edges)).
		Msg("Sample data seeded")
	return true, nil
}
