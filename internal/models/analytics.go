// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// DefaultDeviceType is recorded when a view arrives without one.
const DefaultDeviceType = "web"

// ViewEvent is an immutable playback or view fact.
type ViewEvent struct {
	ID          string      `json:"id"`
	ContentID   string      `json:"contentId"`
	ContentType ContentType `json:"contentType"`
	DeviceType  string      `json:"deviceType"`
	DeviceName  string      `json:"deviceName,omitempty"`
	IPAddress   string      `json:"ipAddress,omitempty"`
	ViewedAt    time.Time   `json:"viewedAt"`
}

// DeviceCount is a grouped view count for one device type.
type DeviceCount struct {
	DeviceType string `json:"deviceType"`
	Count      int64  `json:"count"`
}

// ContentCount is a grouped view count for one content id.
type ContentCount struct {
	ContentID string `json:"contentId"`
	Count     int64  `json:"count"`
}

// DeviceBreakdown is one row of a StatsReport.
type DeviceBreakdown struct {
	DeviceType string `json:"deviceType"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

// StatsReport summarises views of one item inside a window.
type StatsReport struct {
	ContentID   string            `json:"contentId"`
	ContentType ContentType       `json:"contentType"`
	Period      string            `json:"period"`
	TotalViews  int64             `json:"totalViews"`
	ByDevice    []DeviceBreakdown `json:"byDevice"`
}

// PopularItem is a content item with its windowed view count.
type PopularItem struct {
	ContentSummary
	Views int64 `json:"views"`
}

// PopularContent groups popular items by type.
type PopularContent struct {
	Movies []PopularItem `json:"movies"`
	Series []PopularItem `json:"series"`
}

// DashboardStats holds catalog and view totals.
type DashboardStats struct {
	Content DashboardContent `json:"content"`
	Views   DashboardViews   `json:"views"`
}

type DashboardContent struct {
	Movies   int64 `json:"movies"`
	Series   int64 `json:"series"`
	Episodes int64 `json:"episodes"`
	Total    int64 `json:"total"`
}

type DashboardViews struct {
	Total       int64 `json:"total"`
	Last24Hours int64 `json:"last24Hours"`
}

// TrackResult reports whether a view was recorded.
type TrackResult struct {
	Tracked bool `json:"tracked"`
}
