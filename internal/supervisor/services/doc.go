// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package services adapts Marquee components to suture.Service.
//
//   - HTTPServerService: ListenAndServe/Shutdown to Serve
//   - EventRouterService: the watermill view router's Run/Close
//   - PeriodicService: a func(ctx) job such as the view limiter sweep
//
// Each wrapper implements fmt.Stringer so suture logs a readable name.
package services
