// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

const (
	outcomeRecorded  = "recorded"
	outcomePublished = "published"
	outcomeDisabled  = "disabled"
	outcomeFailed    = "failed"
)

// TrackRequest is a view reported by a client.
type TrackRequest struct {
	ContentID   string
	ContentType models.ContentType
	DeviceType  string
	DeviceName  string
	IPAddress   string
}

// TrackView records one view of a catalog item. With analytics disabled it
// does nothing and reports Tracked=false.
func (s *Service) TrackView(ctx context.Context, req TrackRequest) (models.TrackResult, error) {
	if !s.cfg.Enabled {
		metrics.ViewsTracked.WithLabelValues(typeLabel(req.ContentType), outcomeDisabled).Inc()
		return models.TrackResult{Tracked: false}, nil
	}
	if !req.ContentType.Valid() {
		return models.TrackResult{}, invalidParameter("unknown content type %q", req.ContentType)
	}
	if req.ContentID == "" {
		return models.TrackResult{}, invalidParameter("content id is required")
	}

	item, err := s.content.FindByID(ctx, req.ContentID, req.ContentType)
	if err != nil {
		return models.TrackResult{}, fmt.Errorf("resolve content: %w", err)
	}
	if item == nil {
		return models.TrackResult{}, contentNotFound(req.ContentID, req.ContentType)
	}

	device := req.DeviceType
	if device == "" {
		device = models.DefaultDeviceType
	}
	ev := &models.ViewEvent{
		ID:          uuid.New().String(),
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		DeviceType:  device,
		DeviceName:  req.DeviceName,
		IPAddress:   req.IPAddress,
		ViewedAt:    s.now().UTC(),
	}

	if err := s.recorder.RecordView(ctx, ev); err != nil {
		metrics.ViewsTracked.WithLabelValues(string(req.ContentType), outcomeFailed).Inc()
		if errors.Is(err, models.ErrRecordNotFound) {
			return models.TrackResult{}, contentNotFound(req.ContentID, req.ContentType)
		}
		return models.TrackResult{}, fmt.Errorf("record view: %w", err)
	}

	metrics.ViewsTracked.WithLabelValues(string(req.ContentType), s.outcome).Inc()
	s.logger.Debug().
		Str("event_id", ev.ID).
		Str("content_id", ev.ContentID).
		Str("device_type", ev.DeviceType).
		Str("outcome", s.outcome).
		Msg("view tracked")
	return models.TrackResult{Tracked: true}, nil
}

func typeLabel(t models.ContentType) string {
	if t.Valid() {
		return string(t)
	}
	return "unknown"
}
