// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package middleware holds the HTTP middleware that is specific to Marquee.
// Generic concerns (real IP, panic recovery, CORS, global rate limiting,
// compression) come from chi and its companion modules and are assembled in
// internal/api.
//
// # Request IDs
//
// RequestID honours an inbound X-Request-ID, generates one otherwise, echoes
// it on the response and stores it in the logging context so every
// logging.Ctx(ctx) line carries request_id.
//
// # Metrics
//
// Metrics records api_requests_total and api_request_duration_seconds by chi
// route pattern, so /content/{id}/recommendations is one series rather than
// one per id. Requests slower than SlowRequestThreshold are logged at warn.
//
// # View throttling
//
// ViewLimiter is a per-IP token bucket (golang.org/x/time/rate) placed in
// front of POST /analytics/view only. It is stricter than the global limit
// because each accepted view writes to the database.
package middleware
