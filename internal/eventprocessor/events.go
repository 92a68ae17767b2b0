// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

// ViewTrackedEvent is the wire form of a tracked view.
type ViewTrackedEvent struct {
	EventID     string    `json:"event_id"`
	ContentID   string    `json:"content_id"`
	ContentType string    `json:"content_type"`
	DeviceType  string    `json:"device_type"`
	DeviceName  string    `json:"device_name,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	ViewedAt    time.Time `json:"viewed_at"`
	PublishedAt time.Time `json:"published_at"`
}

// NewViewTrackedEvent converts a domain view into its wire form.
func NewViewTrackedEvent(ev *models.ViewEvent) *ViewTrackedEvent {
	return &ViewTrackedEvent{
		EventID:     ev.ID,
		ContentID:   ev.ContentID,
		ContentType: string(ev.ContentType),
		DeviceType:  ev.DeviceType,
		DeviceName:  ev.DeviceName,
		IPAddress:   ev.IPAddress,
		ViewedAt:    ev.ViewedAt.UTC(),
		PublishedAt: time.Now().UTC(),
	}
}

// Validate checks required fields.
func (e *ViewTrackedEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	}
	if e.ContentID == "" {
		return fmt.Errorf("%w: content_id is required", ErrInvalidEvent)
	}
	if _, err := models.ParseContentType(e.ContentType); err != nil {
		return fmt.Errorf("%w: content_type %q", ErrInvalidEvent, e.ContentType)
	}
	if e.ViewedAt.IsZero() {
		return fmt.Errorf("%w: viewed_at is required", ErrInvalidEvent)
	}
	return nil
}

// ToModel converts the event back to a domain view. The event must be valid.
func (e *ViewTrackedEvent) ToModel() *models.ViewEvent {
	device := e.DeviceType
	if device == "" {
		device = models.DefaultDeviceType
	}
	return &models.ViewEvent{
		ID:          e.EventID,
		ContentID:   e.ContentID,
		ContentType: models.ContentType(e.ContentType),
		DeviceType:  device,
		DeviceName:  e.DeviceName,
		IPAddress:   e.IPAddress,
		ViewedAt:    e.ViewedAt,
	}
}
