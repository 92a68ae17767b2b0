// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// countingService fails until failures is exhausted, then runs until
// canceled.
type countingService struct {
	name     string
	starts   atomic.Int32
	failures int32
	running  chan struct{}
}

func newCountingService(name string, failures int32) *countingService {
	return &countingService{name: name, failures: failures, running: make(chan struct{}, 1)}
}

func (s *countingService) Serve(ctx context.Context) error {
	if n := s.starts.Add(1); n <= s.failures {
		return errors.New("simulated failure")
	}
	select {
	case s.running <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string { return s.name }

func TestNewTree_Defaults(t *testing.T) {
	tree := NewTree(quietLogger(), TreeConfig{FailureBackoff: time.Second})
	cfg := tree.Config()

	if cfg.FailureThreshold != 5 || cfg.FailureDecay != 30 {
		t.Errorf("threshold/decay = %v/%v, want 5/30", cfg.FailureThreshold, cfg.FailureDecay)
	}
	if cfg.FailureBackoff != time.Second {
		t.Errorf("explicit backoff overwritten: %v", cfg.FailureBackoff)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestTree_RunsEveryLayerAndRestartsFailures(t *testing.T) {
	tree := NewTree(quietLogger(), TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})

	events := newCountingService("event-router", 2)
	sweeper := newCountingService("sweeper", 0)
	api := newCountingService("http-server", 0)
	tree.AddEventService(events)
	tree.AddMaintenanceService(sweeper)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for _, svc := range []*countingService{events, sweeper, api} {
		select {
		case <-svc.running:
		case <-time.After(3 * time.Second):
			t.Fatalf("%s never reached its running state", svc.name)
		}
	}
	if got := events.starts.Load(); got < 3 {
		t.Errorf("failing service started %d times, want at least 3", got)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) != 0 {
		t.Errorf("unstopped services: %v", unstopped)
	}
}
