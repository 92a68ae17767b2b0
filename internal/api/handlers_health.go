// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

const pingTimeout = 2 * time.Second

// Health handles GET /api/v1/health. It always answers 200 while the
// process runs; status is "degraded" when the database is unreachable.
//
// @Summary Liveness and dependency status
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.status(r.Context())
	if !status.DatabaseConnected {
		status.Status = "degraded"
	}
	respondJSON(w, http.StatusOK, status, nil)
}

// HealthReady handles GET /api/v1/health/ready. It answers 503 until the
// database responds and its circuit breaker is not open.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.status(r.Context())
	code := http.StatusOK
	status.Status = "ready"
	if !status.DatabaseConnected || status.CircuitBreaker == "open" {
		code = http.StatusServiceUnavailable
		status.Status = "not_ready"
	}
	writeJSON(w, code, &models.APIResponse{
		Success:   code == http.StatusOK,
		Data:      status,
		Timestamp: timestamp(),
	})
}

func (h *Handler) status(ctx context.Context) models.HealthStatus {
	s := models.HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		CacheBackend:   h.cacheBackend,
		CircuitBreaker: "unknown",
		UptimeSeconds:  time.Since(h.startTime).Seconds(),
	}
	if h.eventBus != nil {
		s.EventBus = h.eventBus()
	}
	if h.health == nil {
		return s
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	s.DatabaseConnected = h.health.Ping(ctx) == nil
	s.CircuitBreaker = h.health.BreakerState()
	return s
}
