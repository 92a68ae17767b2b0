// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDBQueryClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", fmt.Errorf("query content: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"breaker", errors.New("circuit breaker is open"), "circuit_open"},
		{"other", errors.New("syntax error"), "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := "test_" + tt.name
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", table, tt.want))
			RecordDBQuery("select", table, time.Millisecond, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", table, tt.want))
			if after-before != 1 {
				t.Errorf("error_type %q counter delta = %v, want 1", tt.want, after-before)
			}
		})
	}
}

func TestRecordDBQuerySuccessObservesDuration(t *testing.T) {
	RecordDBQuery("select", "test_success", 5*time.Millisecond, nil)

	m := &dto.Metric{}
	h, ok := DBQueryDuration.WithLabelValues("select", "test_success").(interface{ Write(*dto.Metric) error })
	if !ok {
		t.Fatal("histogram does not expose Write")
	}
	if err := h.Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := m.GetHistogram().GetSampleCount(); got < 1 {
		t.Errorf("sample count = %d, want >= 1", got)
	}
}

func TestRecordBreakerTransition(t *testing.T) {
	RecordBreakerTransition("test-db", "closed", "open")
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-db")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}

	RecordBreakerTransition("test-db", "open", "half-open")
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-db")); got != 1 {
		t.Errorf("state gauge = %v, want 1", got)
	}

	RecordBreakerTransition("test-db", "half-open", "closed")
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-db")); got != 0 {
		t.Errorf("state gauge = %v, want 0", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	RecordCacheLookup("test", true)
	RecordCacheLookup("test", false)
	RecordCacheLookup("test", false)

	if d := testutil.ToFloat64(CacheHits.WithLabelValues("test")) - hits; d != 1 {
		t.Errorf("hit delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(CacheMisses.WithLabelValues("test")) - misses; d != 2 {
		t.Errorf("miss delta = %v, want 2", d)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}
