// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DATABASE_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DATABASE_QUERY_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE (%d) must be >= DEFAULT_PAGE_SIZE (%d)", c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}
	if c.Security.ViewRateLimitPerMin < 0 {
		return fmt.Errorf("VIEW_RATE_LIMIT_PER_MINUTE must be >= 0")
	}
	if s := c.Security.AdminJWTSecret; s != "" && len(s) < 32 {
		return fmt.Errorf("ADMIN_JWT_SECRET must be at least 32 characters")
	}
	if c.Server.Environment == "production" {
		for _, o := range c.Security.CORSOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxLimit < 1 {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must be at least 1")
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be between 1 and %d", r.MaxLimit)
	}
	if r.DirectorBoost < 0 || r.DirectorBoost > 1 {
		return fmt.Errorf("RECOMMEND_DIRECTOR_BOOST must be in [0,1], got %v", r.DirectorBoost)
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be >= 0")
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.MaxDays < 1 {
		return fmt.Errorf("ANALYTICS_MAX_DAYS must be at least 1")
	}
	if a.DefaultDays < 0 || a.DefaultDays > a.MaxDays {
		return fmt.Errorf("ANALYTICS_DEFAULT_DAYS must be between 0 and %d", a.MaxDays)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "memory", "none":
		return nil
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
		if err := validateRedisURL(c.Cache.RedisURL); err != nil {
			return fmt.Errorf("REDIS_URL: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, redis or none, got %q", c.Cache.Backend)
	}
}

func (c *Config) validateEvents() error {
	e := c.Events
	if !e.Enabled {
		return nil
	}
	if e.Topic == "" {
		return fmt.Errorf("EVENTS_TOPIC is required when EVENTS_ENABLED=true")
	}
	switch e.Backend {
	case "gochannel":
	case "nats":
		if !e.EmbeddedServer {
			if err := validateNATSURL(e.NATSURL); err != nil {
				return fmt.Errorf("NATS_URL: %w", err)
			}
		}
		if e.SubscribersCount < 1 {
			return fmt.Errorf("NATS_SUBSCRIBERS must be at least 1")
		}
	default:
		return fmt.Errorf("EVENTS_BACKEND must be gochannel or nats, got %q", e.Backend)
	}
	if e.RetryCount < 0 {
		return fmt.Errorf("EVENTS_RETRY_COUNT must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}
