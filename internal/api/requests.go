// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

// Request shapes. Query structs are filled by handlers from the URL; body
// structs are decoded from JSON. Both are checked with validation.ValidateStruct
// before any service call.

type recommendationsQuery struct {
	ID    string `json:"id" validate:"required,max=128"`
	Type  string `json:"type" validate:"required,content_type"`
	Limit int    `json:"limit" validate:"gte=0"`
}

type trendingQuery struct {
	Limit int `json:"limit" validate:"gte=0"`
}

// CreateRecommendationRequest is the body of POST /recommendations.
type CreateRecommendationRequest struct {
	FromID   string   `json:"fromId" validate:"required,max=128"`
	FromType string   `json:"fromType" validate:"required,content_type"`
	ToID     string   `json:"toId" validate:"required,max=128"`
	ToType   string   `json:"toType" validate:"required,content_type"`
	Reason   string   `json:"reason" validate:"required,reason"`
	Score    *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// TrackViewRequest is the body of POST /analytics/view.
type TrackViewRequest struct {
	ContentID   string `json:"contentId" validate:"required,max=128"`
	ContentType string `json:"contentType" validate:"required,content_type"`
	DeviceType  string `json:"deviceType,omitempty" validate:"omitempty,max=32"`
	DeviceName  string `json:"deviceName,omitempty" validate:"omitempty,max=128"`
}

type statsQuery struct {
	ID   string `json:"id" validate:"required,max=128"`
	Type string `json:"type" validate:"required,content_type"`
	Days int    `json:"days" validate:"gte=0"`
}

type popularQuery struct {
	Type  string `json:"type" validate:"required,content_selector"`
	Limit int    `json:"limit" validate:"gte=0"`
	Days  int    `json:"days" validate:"gte=0"`
}

type searchQuery struct {
	Q     string `json:"q" validate:"max=200"`
	Type  string `json:"type" validate:"required,content_selector"`
	Limit int    `json:"limit" validate:"gte=0"`
}

type suggestionsQuery struct {
	Q     string `json:"q" validate:"max=200"`
	Limit int    `json:"limit" validate:"gte=0"`
}

type advancedSearchQuery struct {
	Q         string   `json:"q" validate:"max=200"`
	Genres    []string `json:"genres" validate:"max=20,dive,max=64"`
	YearFrom  int      `json:"year_from" validate:"gte=0"`
	YearTo    int      `json:"year_to" validate:"gte=0"`
	RatingMin float64  `json:"rating_min" validate:"gte=0,lte=10"`
	Type      string   `json:"type" validate:"required,content_selector"`
	SortBy    string   `json:"sort_by" validate:"required,oneof=relevance rating views year title"`
	Page      int      `json:"page" validate:"gte=1"`
	Limit     int      `json:"limit" validate:"gte=0"`
}

type genreQuery struct {
	Genre string `json:"genre" validate:"required,max=64"`
	Type  string `json:"type" validate:"required,content_selector"`
	Limit int    `json:"limit" validate:"gte=0"`
}
