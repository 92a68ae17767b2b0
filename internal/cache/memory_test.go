// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newClockedStore(t *testing.T, ttl time.Duration) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, clock := newClockedStore(t, time.Minute)

	_ = s.Set(ctx, "trending:a", []byte("default"), 0)
	_ = s.Set(ctx, "trending:b", []byte("short"), 10*time.Second)

	clock.Advance(30 * time.Second)
	if _, ok, _ := s.Get(ctx, "trending:b"); ok {
		t.Error("entry with 10s ttl still served after 30s")
	}
	if v, ok, _ := s.Get(ctx, "trending:a"); !ok || string(v) != "default" {
		t.Errorf("default-ttl entry = %q, %v; want hit", v, ok)
	}

	clock.Advance(31 * time.Second)
	if _, ok, _ := s.Get(ctx, "trending:a"); ok {
		t.Error("entry served past the store default ttl")
	}

	st := s.Stats()
	if st.Hits != 1 || st.Misses != 2 || st.Evictions != 2 || st.Keys != 0 {
		t.Errorf("Stats = %+v, want 1 hit, 2 misses, 2 evictions, 0 keys", st)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s, clock := newClockedStore(t, time.Minute)

	for i := 0; i < 3; i++ {
		_ = s.Set(ctx, fmt.Sprintf("old:%d", i), []byte("x"), time.Second)
	}
	_ = s.Set(ctx, "fresh", []byte("x"), time.Hour)

	clock.Advance(2 * time.Second)
	if removed := s.Sweep(); removed != 3 {
		t.Errorf("Sweep removed %d, want 3", removed)
	}
	if st := s.Stats(); st.Keys != 1 || st.Evictions != 3 {
		t.Errorf("Stats = %+v, want 1 key and 3 evictions", st)
	}
	if removed := s.Sweep(); removed != 0 {
		t.Errorf("second Sweep removed %d, want 0", removed)
	}
}

func TestMemoryStore_RunStopsOnCancel(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMemoryStore_DefaultTTL(t *testing.T) {
	if s := NewMemoryStore(0); s.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultTTL)
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("recommendations:%d", n%5)
			for j := 0; j < 50; j++ {
				_ = s.Set(ctx, key, []byte("v"), 0)
				_, _, _ = s.Get(ctx, key)
				if j%10 == 0 {
					s.Sweep()
				}
			}
		}(i)
	}
	wg.Wait()

	if keys := s.Stats().Keys; keys != 5 {
		t.Errorf("Keys = %d, want 5", keys)
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		ContentID string
		Limit     int
	}

	a := GenerateKey("recommendations", params{ContentID: "m1", Limit: 10})
	b := GenerateKey("recommendations", params{ContentID: "m1", Limit: 10})
	c := GenerateKey("recommendations", params{ContentID: "m1", Limit: 11})

	if a != b {
		t.Error("equal params produced different keys")
	}
	if a == c {
		t.Error("different params produced the same key")
	}
	if !strings.HasPrefix(a, "recommendations:") || len(a) != len("recommendations:")+32 {
		t.Errorf("key %q: want operation prefix and 32 hex chars", a)
	}

	fallback := GenerateKey("trending", struct{ Ch chan int }{Ch: make(chan int)})
	if !strings.HasPrefix(fallback, "trending:") {
		t.Errorf("fallback key %q lacks operation prefix", fallback)
	}
}
