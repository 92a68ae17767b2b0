// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/analytics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// TrackView handles POST /api/v1/analytics/view.
//
// @Summary Track a view
// @Description Records one view and increments the item's view counter. Returns tracked=false when analytics is disabled.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body TrackViewRequest true "View"
// @Success 200 {object} models.APIResponse{data=models.TrackResult}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 429 {object} models.APIResponse
// @Router /analytics/view [post]
func (h *Handler) TrackView(w http.ResponseWriter, r *http.Request) {
	var req TrackViewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, verr)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.analytics.TrackView(ctx, analytics.TrackRequest{
		ContentID:   req.ContentID,
		ContentType: models.ContentType(req.ContentType),
		DeviceType:  req.DeviceType,
		DeviceName:  req.DeviceName,
		IPAddress:   remoteIP(r),
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result, nil)
}

// GetContentStats handles GET /api/v1/analytics/content/{id}/stats.
//
// @Summary View statistics for one item
// @Tags Analytics
// @Produce json
// @Param id path string true "Content id"
// @Param type query string false "Content type" Enums(movie, series) default(movie)
// @Param days query int false "Window in days (capped)" default(30)
// @Success 200 {object} models.APIResponse{data=models.StatsReport}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /analytics/content/{id}/stats [get]
func (h *Handler) GetContentStats(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := statsQuery{
		ID:   chi.URLParam(r, "id"),
		Type: qp.str("type", string(models.ContentTypeMovie)),
		Days: qp.int("days", h.defaults.AnalyticsDays),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	stats, err := h.analytics.GetContentStats(ctx, q.ID, models.ContentType(q.Type), q.Days)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats, nil)
}

// GetPopularContent handles GET /api/v1/analytics/popular.
//
// @Summary Most viewed content in a window
// @Tags Analytics
// @Produce json
// @Param type query string false "Content type" Enums(movie, series, all) default(all)
// @Param limit query int false "Maximum results per type" default(20)
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} models.APIResponse{data=models.PopularContent}
// @Failure 400 {object} models.APIResponse
// @Router /analytics/popular [get]
func (h *Handler) GetPopularContent(w http.ResponseWriter, r *http.Request) {
	qp := newQueryParser(r)
	q := popularQuery{
		Type:  qp.str("type", "all"),
		Limit: qp.int("limit", h.defaults.Limit),
		Days:  qp.int("days", h.defaults.AnalyticsDays),
	}
	if !h.check(w, r, qp, &q) {
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	popular, err := h.analytics.GetPopularContent(ctx, q.Type, q.Limit, q.Days)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, popular, nil)
}

// GetDashboardStats handles GET /api/v1/analytics/dashboard.
//
// @Summary Catalog and view totals
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DashboardStats}
// @Router /analytics/dashboard [get]
func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	stats, err := h.analytics.GetDashboardStats(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats, nil)
}

// remoteIP relies on chi's RealIP having normalised RemoteAddr.
func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
