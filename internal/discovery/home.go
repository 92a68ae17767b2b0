// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package discovery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/marquee/internal/models"
)

const (
	heroTitle     = "Featured"
	ctaPlay       = "Play"
	ctaViewSeries = "View series"
)

type carouselSpec struct {
	title string
	slug  string
	fetch func(ctx context.Context) ([]models.ContentSummary, error)
}

// Home builds the home page: a hero banner of featured movies then featured
// series, and the default carousels. All queries run concurrently.
func (s *Service) Home(ctx context.Context) (*models.HomePage, error) {
	specs := []carouselSpec{
		{"Trending Now", "trending", func(ctx context.Context) ([]models.ContentSummary, error) {
			return s.catalog.FindTopByViews(ctx, models.ContentTypeMovie, carouselLength)
		}},
		{"New Releases", "new-releases", func(ctx context.Context) ([]models.ContentSummary, error) {
			return s.catalog.FindNewReleases(ctx, models.ContentTypeMovie, carouselLength)
		}},
		{"Top Rated", "top-rated", func(ctx context.Context) ([]models.ContentSummary, error) {
			return s.catalog.FindTopRated(ctx, models.ContentTypeMovie, carouselLength)
		}},
		{"Popular Series", "trending-series", func(ctx context.Context) ([]models.ContentSummary, error) {
			return s.catalog.FindTopByViews(ctx, models.ContentTypeSeries, carouselLength)
		}},
		{"Featured Series", "featured-series", func(ctx context.Context) ([]models.ContentSummary, error) {
			return s.catalog.FindFeatured(ctx, models.ContentTypeSeries, carouselLength)
		}},
	}

	var featuredMovies, featuredSeries []models.ContentSummary
	carousels := make([]models.Carousel, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.catalog.FindFeatured(gctx, models.ContentTypeMovie, heroMovies)
		if err != nil {
			return fmt.Errorf("featured movies: %w", err)
		}
		featuredMovies = items
		return nil
	})
	g.Go(func() error {
		items, err := s.catalog.FindFeatured(gctx, models.ContentTypeSeries, heroSeries)
		if err != nil {
			return fmt.Errorf("featured series: %w", err)
		}
		featuredSeries = items
		return nil
	})
	for i, spec := range specs {
		g.Go(func() error {
			items, err := spec.fetch(gctx)
			if err != nil {
				return fmt.Errorf("carousel %s: %w", spec.slug, err)
			}
			carousels[i] = models.Carousel{Title: spec.title, Slug: spec.slug, Items: emptyIfNil(items)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.HomePage{
		Hero:      models.HomeHero{Title: heroTitle, Items: heroItems(featuredMovies, featuredSeries)},
		Carousels: carousels,
	}, nil
}

// heroItems numbers movies first, then series, in featured order.
func heroItems(movies, series []models.ContentSummary) []models.HeroItem {
	items := make([]models.HeroItem, 0, len(movies)+len(series))
	for _, m := range movies {
		items = append(items, heroItem(m, models.ContentTypeMovie, ctaPlay, len(items)))
	}
	for _, sr := range series {
		items = append(items, heroItem(sr, models.ContentTypeSeries, ctaViewSeries, len(items)))
	}
	return items
}

func heroItem(c models.ContentSummary, t models.ContentType, cta string, position int) models.HeroItem {
	genres := c.Genres
	if genres == nil {
		genres = []string{}
	}
	return models.HeroItem{
		ID:          string(t) + "-" + c.ID,
		ContentID:   c.ID,
		ContentType: t,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.BackdropURL,
		CTAText:     cta,
		Position:    position,
		Genres:      genres,
		Rating:      c.Rating,
		Year:        c.ReleaseYear,
	}
}
