// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// General API annotations consumed by swag init.
//
// @title Marquee API
// @version 1.0
// @description Catalog recommendations, viewing analytics and discovery for a streaming platform.
// @description
// @description ## Envelope
// @description
// @description Every response uses the same shape:
// @description ```json
// @description {
// @description   "success": true,
// @description   "data": {},
// @description   "error": {"code": "NOT_FOUND", "message": "..."},
// @description   "timestamp": "2026-01-01T12:00:00Z",
// @description   "meta": {"queryTimeMs": 3}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description 100 requests per 15 minutes per IP by default. POST /analytics/view has its own per-IP limit.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/marquee/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin JWT issued with marquee -issue-admin-token. Send as: Bearer <token>
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Recommendations
// @tag.description Related content, trending lists and curated edges
//
// @tag.name Analytics
// @tag.description View tracking and aggregated statistics
//
// @tag.name Discovery
// @tag.description Search, genres and the home page
package main
