// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGeneratedIDs(t *testing.T) {
	t.Parallel()

	if a, b := GenerateCorrelationID(), GenerateCorrelationID(); len(a) != 8 || a == b {
		t.Errorf("correlation ids %q, %q: want 8 chars and distinct", a, b)
	}
	if a, b := GenerateRequestID(), GenerateRequestID(); len(a) != 36 || a == b {
		t.Errorf("request ids %q, %q: want UUIDs and distinct", a, b)
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "" {
		t.Errorf("CorrelationIDFromContext(empty) = %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-1", got)
	}
}

// Not parallel: swaps the global logger.
func TestCtx_AddsIDs(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	ctx := ContextWithCorrelationID(ContextWithRequestID(context.Background(), "req-9"), "abcd1234")
	Ctx(ctx).Info().Msg("view tracked")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-9"`, `"correlation_id":"abcd1234"`, `"message":"view tracked"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}

	buf.Reset()
	Ctx(context.Background()).Info().Msg("plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("bare context leaked ids: %s", buf.String())
	}
}
