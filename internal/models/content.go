// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"errors"
	"time"
)

// ContentType distinguishes the two catalog variants.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

// ContentTypes lists the catalog variants in merge order (movies first).
var ContentTypes = []ContentType{ContentTypeMovie, ContentTypeSeries}

// ErrUnknownContentType is returned by ParseContentType.
var ErrUnknownContentType = errors.New("unknown content type")

// ParseContentType accepts exactly "movie" or "series".
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeMovie, ContentTypeSeries:
		return ContentType(s), nil
	default:
		return "", ErrUnknownContentType
	}
}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeSeries
}

// ContentRef identifies a movie or series.
type ContentRef struct {
	ID   string      `json:"id"`
	Type ContentType `json:"contentType"`
}

// ContentSummary is the ranking and display projection of a movie or series.
// DirectorOrCreator holds the director for movies and the creator for series.
type ContentSummary struct {
	ID                string      `json:"id"`
	Type              ContentType `json:"contentType"`
	Slug              string      `json:"slug"`
	Title             string      `json:"title"`
	Description       string      `json:"description,omitempty"`
	Genres            []string    `json:"genres"`
	DirectorOrCreator string      `json:"directorOrCreator,omitempty"`
	Rating            float64     `json:"rating"`
	ReleaseYear       int         `json:"releaseYear,omitempty"`
	ViewsCount        int64       `json:"viewsCount"`
	PosterURL         string      `json:"posterUrl,omitempty"`
	BackdropURL       string      `json:"backdropUrl,omitempty"`
	Featured          bool        `json:"featured,omitempty"`
	FeaturedOrder     int         `json:"-"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// Ref returns the item's ContentRef.
func (c *ContentSummary) Ref() ContentRef {
	return ContentRef{ID: c.ID, Type: c.Type}
}

// Content is a full catalog record as stored, including soft-delete state.
type Content struct {
	ContentSummary
	Director  string     `json:"director,omitempty"`
	Creator   string     `json:"creator,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Summary projects the record, filling DirectorOrCreator from the field the
// content type defines and normalising Genres to a non-nil slice.
func (c *Content) Summary() ContentSummary {
	s := c.ContentSummary
	if c.Type == ContentTypeMovie {
		s.DirectorOrCreator = c.Director
	} else {
		s.DirectorOrCreator = c.Creator
	}
	if s.Genres == nil {
		s.Genres = []string{}
	}
	return s
}
