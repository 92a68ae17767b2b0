// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models holds the catalog, recommendation, analytics and API
// envelope types shared by the database, service and HTTP layers.
//
// JSON tags use camelCase to match the public API.
package models
