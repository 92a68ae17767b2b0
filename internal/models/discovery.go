// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// SearchResults holds matches split by type.
type SearchResults struct {
	Movies []ContentSummary `json:"movies"`
	Series []ContentSummary `json:"series"`
	Total  int              `json:"total"`
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Text      string      `json:"text"`
	Type      ContentType `json:"type"`
	Slug      string      `json:"slug"`
	PosterURL string      `json:"posterUrl,omitempty"`
	Year      int         `json:"year,omitempty"`
}

// GenreResults is the response of a browse-by-genre query.
type GenreResults struct {
	Genre  string           `json:"genre"`
	Movies []ContentSummary `json:"movies"`
	Series []ContentSummary `json:"series"`
}

// GenreCount is a genre with per-type catalog counts.
type GenreCount struct {
	Name        string `json:"name"`
	MovieCount  int64  `json:"movieCount"`
	SeriesCount int64  `json:"seriesCount"`
}

// Pagination describes a page of results.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// AdvancedSearchResults is a filtered, paginated search result.
type AdvancedSearchResults struct {
	Movies     []ContentSummary `json:"movies"`
	Series     []ContentSummary `json:"series"`
	Pagination Pagination       `json:"pagination"`
}

// HeroItem is one entry of the home page banner.
type HeroItem struct {
	ID          string      `json:"id"`
	ContentID   string      `json:"contentId"`
	ContentType ContentType `json:"contentType"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	CTAText     string      `json:"ctaText"`
	Position    int         `json:"position"`
	Genres      []string    `json:"genres"`
	Rating      float64     `json:"rating"`
	Year        int         `json:"year,omitempty"`
}

// Carousel is a titled row of content on the home page.
type Carousel struct {
	Title string           `json:"title"`
	Slug  string           `json:"slug"`
	Items []ContentSummary `json:"items"`
}

// HomePage is the home page payload.
type HomePage struct {
	Hero      HomeHero   `json:"hero"`
	Carousels []Carousel `json:"carousels"`
}

type HomeHero struct {
	Title string     `json:"title"`
	Items []HeroItem `json:"items"`
}

// Sort orders accepted by advanced search. SortRelevance ranks by rating.
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortViews     = "views"
	SortYear      = "year"
	SortTitle     = "title"
)

// AdvancedFilter narrows an advanced search. Zero values disable a filter.
type AdvancedFilter struct {
	Query     string
	Genres    []string
	YearFrom  int
	YearTo    int
	RatingMin float64
	SortBy    string
}
