// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package api exposes the recommendation, analytics and discovery services
// over HTTP.
//
// # Routing
//
// Routes are registered on a chi router under /api/v1. The global
// middleware stack, outermost first:
//
//  1. RequestID (request and correlation ids in the logging context)
//  2. chi RealIP
//  3. chi Recoverer
//  4. go-chi/cors
//  5. go-chi/httprate, keyed by client IP
//  6. per-route Prometheus metrics
//
// POST /analytics/view additionally passes through a per-IP token bucket,
// and POST /recommendations requires an admin bearer token.
//
// # Envelope
//
// Every body is a models.APIResponse:
//
//	{"success": true, "data": {...}, "timestamp": "2026-03-15T12:00:00Z"}
//
// Errors map to status codes in one place (respondServiceError):
//
//	models.ErrInvalidParameter  -> 400 BAD_REQUEST
//	validation failure          -> 400 VALIDATION_FAILED
//	models.ErrContentNotFound   -> 404 NOT_FOUND
//	database.ErrCircuitOpen     -> 503 SERVICE_UNAVAILABLE
//	anything else               -> 500 DATABASE_ERROR
package api
