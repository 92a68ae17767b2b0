// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// queryParser reads typed query parameters and keeps the first error.
type queryParser struct {
	values map[string][]string
	err    error
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query()}
}

func (p *queryParser) str(key, def string) string {
	if v := strings.TrimSpace(firstValue(p.values, key)); v != "" {
		return v
	}
	return def
}

func (p *queryParser) int(key string, def int) int {
	raw := strings.TrimSpace(firstValue(p.values, key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail("%s must be an integer, got %q", key, raw)
		return def
	}
	return n
}

func (p *queryParser) float(key string, def float64) float64 {
	raw := strings.TrimSpace(firstValue(p.values, key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail("%s must be a number, got %q", key, raw)
		return def
	}
	return f
}

// list accepts repeated keys and comma-separated values.
func (p *queryParser) list(key string) []string {
	var out []string
	for _, v := range p.values[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (p *queryParser) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s", models.ErrInvalidParameter, fmt.Sprintf(format, args...))
	}
}

func firstValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// decodeJSON reads one JSON object from the body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: request body is empty", models.ErrInvalidParameter)
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: request body exceeds %d bytes", models.ErrInvalidParameter, maxErr.Limit)
		default:
			return fmt.Errorf("%w: malformed JSON body: %v", models.ErrInvalidParameter, err)
		}
	}
	return nil
}
