// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Backend names accepted by NewStore.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Store is a byte-oriented cache with per-entry TTL.
type Store interface {
	// Get returns the value and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Name labels the backend in metrics and logs.
	Name() string
	Close() error
}

// NewStore builds the backend selected by cfg. It returns nil, nil for the
// "none" backend; callers treat a nil Store as caching disabled.
func NewStore(ctx context.Context, cfg config.CacheConfig, defaultTTL time.Duration) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(defaultTTL), nil
	case BackendRedis:
		rs, err := NewRedisStore(ctx, cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// GetJSON decodes the value under key into dest. Backend and decode errors
// are logged and reported as a miss so a broken cache never fails a request.
func GetJSON(ctx context.Context, s Store, key string, dest any) bool {
	if s == nil {
		return false
	}
	data, ok, err := s.Get(ctx, key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("backend", s.Name()).Str("key", key).Msg("Cache read failed")
		ok = false
	}
	if ok {
		if err := json.Unmarshal(data, dest); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
			ok = false
		}
	}
	metrics.RecordCacheLookup(s.Name(), ok)
	return ok
}

// SetJSON encodes value and stores it under key. Failures are logged only.
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) {
	if s == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return
	}
	if err := s.Set(ctx, key, data, ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("backend", s.Name()).Str("key", key).Msg("Cache write failed")
	}
}
