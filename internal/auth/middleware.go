// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/marquee/internal/logging"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// DenyFunc writes a rejection. status is 401 or 403.
type DenyFunc func(w http.ResponseWriter, r *http.Request, status int, message string)

// Middleware guards admin-only routes.
type Middleware struct {
	jwt  *JWTManager
	deny DenyFunc
}

// NewMiddleware creates the admin guard. A nil manager rejects every request,
// which is how admin writes stay closed without a configured secret.
func NewMiddleware(manager *JWTManager, deny DenyFunc) *Middleware {
	if deny == nil {
		deny = func(w http.ResponseWriter, _ *http.Request, status int, message string) {
			http.Error(w, message, status)
		}
	}
	return &Middleware{jwt: manager, deny: deny}
}

// RequireAdmin accepts only "Authorization: Bearer <token>" with the admin role.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.jwt == nil {
			m.deny(w, r, http.StatusUnauthorized, "admin access is not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.deny(w, r, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("Rejected admin token")
			m.deny(w, r, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Role != RoleAdmin {
			m.deny(w, r, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims)))
	})
}

// ClaimsFromContext returns the claims RequireAdmin accepted.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
