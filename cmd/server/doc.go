// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee serves catalog recommendations, trending lists, viewing analytics
and discovery pages for a streaming platform over a JSON HTTP API backed by
DuckDB.

# Application Architecture

	Tree ("marquee")
	├── events       view event router (EVENTS_ENABLED=true)
	├── maintenance  view limiter and memory cache sweeps
	└── api          HTTP server

Component initialization order:

 1. Configuration: Koanf v2 (defaults, optional YAML, environment)
 2. Logging: zerolog, bridged to slog for suture and to watermill
 3. Database: DuckDB behind a gobreaker circuit breaker
 4. Result cache: in-process or Redis
 5. Services: recommendation engine, analytics, discovery
 6. Event pipeline: watermill over GoChannel or NATS JetStream
 7. HTTP: chi router, admin JWT, Prometheus metrics, Swagger UI
 8. Supervisor tree: suture v4

# Configuration

	PORT=3000
	DATABASE_PATH=/data/marquee.duckdb   # ":memory:" for a throwaway catalog
	SEED_SAMPLE_DATA=true                # load the demo catalog when empty
	CACHE_BACKEND=memory                 # memory, redis, none
	REDIS_URL=redis://localhost:6379/0
	EVENTS_ENABLED=true
	EVENTS_BACKEND=nats                  # gochannel or nats
	NATS_EMBEDDED=true
	ADMIN_JWT_SECRET=<32+ chars>         # enables POST /api/v1/recommendations
	LOG_LEVEL=info
	LOG_FORMAT=json

# Admin Tokens

POST /api/v1/recommendations requires a bearer token with the admin role.
Issue one with the configured secret and exit:

	ADMIN_JWT_SECRET=... marquee -issue-admin-token ops@example.com

# Signal Handling

SIGINT and SIGTERM cancel the tree. The HTTP server drains for
SHUTDOWN_TIMEOUT, the event router finishes in-flight messages, then the bus
and database are closed.
*/
package main
