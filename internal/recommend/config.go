// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/config"
)

// Config contains the engine's ranking and caching parameters.
type Config struct {
	// DefaultLimit is the HTTP limit for recommendation and trending requests
	// that omit one.
	DefaultLimit int

	// MaxLimit caps every requested limit.
	MaxLimit int

	// DirectorBoost is the minimum score of a same-director movie.
	DirectorBoost float64

	// CacheTTL bounds how long cached results may be served. Zero disables
	// result caching even when a store is attached.
	CacheTTL time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit:  20,
		MaxLimit:      100,
		DirectorBoost: 0.8,
		CacheTTL:      time.Minute,
	}
}

// ConfigFrom maps the application configuration section.
func ConfigFrom(cfg config.RecommendConfig) *Config {
	return &Config{
		DefaultLimit:  cfg.DefaultLimit,
		MaxLimit:      cfg.MaxLimit,
		DirectorBoost: cfg.DirectorBoost,
		CacheTTL:      cfg.CacheTTL,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.MaxLimit < 1 {
		return fmt.Errorf("max limit must be positive, got %d", c.MaxLimit)
	}
	if c.DefaultLimit < 1 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default limit must be in [1, %d], got %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.DirectorBoost < 0 || c.DirectorBoost > 1 {
		return fmt.Errorf("director boost must be in [0, 1], got %v", c.DirectorBoost)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got %v", c.CacheTTL)
	}
	return nil
}
