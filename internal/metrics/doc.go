// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics defines the Prometheus collectors exported on /metrics.

Collectors are registered on the default registry through promauto. Callers
update them through the Record* helpers so label sets stay consistent.

# Available Metrics

Database:
  - duckdb_query_duration_seconds (histogram; operation, table)
  - duckdb_query_errors_total (counter; operation, table, error_type)

API:
  - api_requests_total (counter; method, endpoint, status_code)
  - api_request_duration_seconds (histogram; method, endpoint)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total (counter; limiter)

The endpoint label is the chi route pattern, never the raw path, so
/api/v1/content/{id}/recommendations is one series regardless of id.

Cache:
  - cache_hits_total, cache_misses_total (counter; cache)

Circuit breaker:
  - circuit_breaker_state (gauge; name) 0=closed, 1=half-open, 2=open
  - circuit_breaker_state_transitions_total (counter; name, from_state, to_state)

Recommendations and views:
  - recommendations_served_total (counter; path) persisted, fallback, cache
  - recommendation_result_size (histogram)
  - views_tracked_total (counter; content_type, result)
  - view_events_processed_total (counter; result)
  - view_event_processing_duration_seconds (histogram)

Build:
  - marquee_info (gauge; version, go_version)
*/
package metrics
