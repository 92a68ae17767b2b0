// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package analytics aggregates view events into per-item device statistics,
// windowed popularity rankings and dashboard totals, and records new views.
//
// The service depends only on the interfaces below. In production all of
// them are satisfied by *database.DB; when the event pipeline is enabled the
// ViewRecorder is replaced by an event publisher.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/models"
)

// ContentResolver resolves catalog items. Missing and soft-deleted items do
// not resolve.
type ContentResolver interface {
	FindByID(ctx context.Context, id string, contentType models.ContentType) (*models.ContentSummary, error)
	FindByIDs(ctx context.Context, ids []string, contentType models.ContentType) ([]models.ContentSummary, error)
}

// ViewStore aggregates stored view events.
type ViewStore interface {
	CountByDevice(ctx context.Context, contentID string, contentType models.ContentType, since time.Time) ([]models.DeviceCount, error)
	CountByContent(ctx context.Context, contentType models.ContentType, since time.Time, limit int) ([]models.ContentCount, error)
	CountViews(ctx context.Context, since time.Time) (int64, error)
	CountContent(ctx context.Context) (models.DashboardContent, error)
}

// ViewRecorder accepts a validated view event.
type ViewRecorder interface {
	RecordView(ctx context.Context, ev *models.ViewEvent) error
}

// Config bounds the analytics windows.
type Config struct {
	Enabled  bool
	MaxDays  int
	MaxLimit int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		MaxDays:  365,
		MaxLimit: 100,
	}
}

// ConfigFrom maps the application configuration section.
func ConfigFrom(cfg config.AnalyticsConfig) Config {
	c := DefaultConfig()
	c.Enabled = cfg.Enabled
	if cfg.MaxDays > 0 {
		c.MaxDays = cfg.MaxDays
	}
	return c
}

// Service answers analytics queries.
type Service struct {
	cfg      Config
	content  ContentResolver
	views    ViewStore
	recorder ViewRecorder
	outcome  string
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService creates an analytics service. Views are recorded synchronously
// through recorder until UsePublisher is called.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(content ContentResolver, views ViewStore, recorder ViewRecorder, cfg Config, logger zerolog.Logger) (*Service, error) {
	if content == nil || views == nil || recorder == nil {
		return nil, fmt.Errorf("content resolver, view store and recorder are required")
	}
	if cfg.MaxDays < 1 {
		return nil, fmt.Errorf("invalid analytics window: max %d days", cfg.MaxDays)
	}
	if cfg.MaxLimit < 1 {
		cfg.MaxLimit = DefaultConfig().MaxLimit
	}
	return &Service{
		cfg:      cfg,
		content:  content,
		views:    views,
		recorder: recorder,
		outcome:  outcomeRecorded,
		logger:   logger.With().Str("component", "analytics").Logger(),
		now:      time.Now,
	}, nil
}

// UsePublisher routes tracked views to an asynchronous publisher instead of
// the synchronous recorder.
func (s *Service) UsePublisher(p ViewRecorder) {
	s.recorder = p
	s.outcome = outcomePublished
}

// Enabled reports whether view tracking is on.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// window validates days and returns the inclusive start of [now-days, now].
// Zero is an empty window ending now; values above MaxDays are capped. The
// HTTP layer substitutes the configured default when the parameter is absent.
func (s *Service) window(days int) (int, time.Time, error) {
	if days < 0 {
		return 0, time.Time{}, invalidParameter("days must not be negative, got %d", days)
	}
	if days > s.cfg.MaxDays {
		days = s.cfg.MaxDays
	}
	return days, s.now().UTC().AddDate(0, 0, -days), nil
}

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func contentNotFound(id string, contentType models.ContentType) error {
	return fmt.Errorf("%s %s: %w", contentType, id, models.ErrContentNotFound)
}
