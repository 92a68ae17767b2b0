// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

// APIResponse wraps every HTTP response body.
//
//	{
//	  "success": true,
//	  "data": {"recommendations": [...]},
//	  "timestamp": "2026-03-15T12:00:00Z",
//	  "meta": {"queryTimeMs": 4}
//	}
//
// Failures set success=false and error, and leave data null:
//
//	{
//	  "success": false,
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "movie dune: content not found"},
//	  "timestamp": "2026-03-15T12:00:00Z"
//	}
type APIResponse struct {
	Success   bool          `json:"success"`
	Data      any           `json:"data"`
	Error     *APIError     `json:"error,omitempty"`
	Timestamp string        `json:"timestamp"`
	Meta      *ResponseMeta `json:"meta,omitempty"`
}

// APIError is the machine-readable part of a failed response.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ResponseMeta carries optional timing and paging details.
type ResponseMeta struct {
	QueryTimeMS int64       `json:"queryTimeMs,omitempty"`
	Pagination  *Pagination `json:"pagination,omitempty"`
}

// HealthStatus is returned by the liveness and readiness probes.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"databaseConnected"`
	CircuitBreaker    string  `json:"circuitBreaker"`
	EventBus          string  `json:"eventBus,omitempty"`
	CacheBackend      string  `json:"cacheBackend"`
	UptimeSeconds     float64 `json:"uptimeSeconds"`
}
