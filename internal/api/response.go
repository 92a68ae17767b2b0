// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/database"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeRateLimited        = "RATE_LIMITED"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// now is swapped in tests for stable timestamps.
var now = time.Now

func timestamp() string {
	return now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, resp *models.APIResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, status int, data any, meta *models.ResponseMeta) {
	writeJSON(w, status, &models.APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: timestamp(),
		Meta:      meta,
	})
}

// respondError writes a failure envelope. err is logged, never sent.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Err(err).
			Str("code", code).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("API error")
	}

	writeJSON(w, status, &models.APIResponse{
		Success:   false,
		Error:     &models.APIError{Code: code, Message: message},
		Timestamp: timestamp(),
	})
}

// respondValidationError reports every failed field.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	fields := make([]map[string]any, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = map[string]any{"field": f.Field, "tag": f.Tag, "message": f.Message}
	}
	writeJSON(w, http.StatusBadRequest, &models.APIResponse{
		Success: false,
		Error: &models.APIError{
			Code:    CodeValidationFailed,
			Message: verr.Error(),
			Details: map[string]any{"fields": fields},
		},
		Timestamp: timestamp(),
	})
}

// respondServiceError maps a service error onto the envelope.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(w, verr)
	case errors.Is(err, models.ErrInvalidParameter):
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
	case errors.Is(err, models.ErrContentNotFound):
		respondError(w, r, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, database.ErrCircuitOpen):
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"Catalog temporarily unavailable, retry shortly", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		logging.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("Request canceled by client")
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, CodeServiceUnavailable, "Request timed out", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeDatabaseError, "Failed to query the catalog", err)
	}
}

// sanitizeLogValue escapes control characters so a crafted path cannot
// forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
