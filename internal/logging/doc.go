// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides the process-wide zerolog logger used by Marquee.
//
// Call Init once at startup, then log through the package helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	logging.Info().Str("content_id", id).Int("results", n).Msg("Recommendations served")
//	logging.Error().Err(err).Msg("Trending query failed")
//
// LOG_LEVEL accepts trace, debug, info, warn (or warning), error and
// disabled. Unknown values fall back to info. LOG_FORMAT is json or console.
//
// # Request context
//
// The HTTP request-id middleware stores an id with ContextWithRequestID. The
// event pipeline tags each view message with a correlation id. Ctx(ctx)
// returns the global logger with both ids attached when present:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("View rejected")
//
// # Adapters
//
// Two libraries expect their own logger interface:
//
//   - SlogHandler / NewSlogLogger feed the suture supervisor (via sutureslog)
//   - WatermillAdapter implements watermill.LoggerAdapter for the router
//
// Both write into the same zerolog stream so a single log pipeline sees
// HTTP, supervisor and event output.
//
// NewTestLogger builds a JSON logger over any io.Writer for assertions in
// tests.
package logging
