// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Path:         "/data/marquee.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			QueryTimeout: 10 * time.Second,
			SeedSample:   false,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			CORSOrigins:         []string{"*"},
			RateLimitReqs:       100,
			RateLimitWindow:     15 * time.Minute,
			RateLimitDisabled:   false,
			ViewRateLimitPerMin: 30,
			AdminJWTSecret:      "",
			AdminTokenTTL:       time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			DefaultLimit:  20,
			MaxLimit:      100,
			DirectorBoost: 0.8,
			CacheTTL:      time.Minute,
		},
		Analytics: AnalyticsConfig{
			Enabled:     true,
			DefaultDays: 30,
			MaxDays:     365,
		},
		Cache: CacheConfig{
			Backend:  "memory",
			RedisURL: "",
			Prefix:   "marquee:",
		},
		Events: EventsConfig{
			Enabled:          false,
			Backend:          "gochannel",
			Topic:            "views.tracked",
			PoisonTopic:      "views.poison",
			NATSURL:          "nats://127.0.0.1:4222",
			EmbeddedServer:   false,
			EmbeddedPort:     4222,
			StoreDir:         "/data/nats",
			DurableName:      "view-recorder",
			QueueGroup:       "recorders",
			SubscribersCount: 1,
			RetryCount:       3,
			RetryInterval:    100 * time.Millisecond,
			CloseTimeout:     15 * time.Second,
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			FailureThreshold: 5,
		},
	}
}

// LoadWithKoanf builds the configuration from three layers:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables listed in envMappings
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	applyLegacyToggles(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) == 0 {
			continue
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"port":                  "server.port",
	"host":                  "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Database
	"database_path":          "database.path",
	"database_max_memory":    "database.max_memory",
	"database_threads":       "database.threads",
	"database_query_timeout": "database.query_timeout",
	"seed_sample_data":       "database.seed_sample",

	// API
	"default_page_size": "api.default_page_size",
	"max_page_size":     "api.max_page_size",

	// Security
	"cors_origin":                "security.cors_origins",
	"cors_origins":               "security.cors_origins",
	"rate_limit_requests":        "security.rate_limit_reqs",
	"rate_limit_max_requests":    "security.rate_limit_reqs",
	"rate_limit_window":          "security.rate_limit_window",
	"rate_limit_disabled":        "security.rate_limit_disabled",
	"view_rate_limit_per_minute": "security.view_rate_limit_per_minute",
	"admin_jwt_secret":           "security.admin_jwt_secret",
	"admin_token_ttl":            "security.admin_token_ttl",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation engine
	"recommend_default_limit":  "recommend.default_limit",
	"recommend_max_limit":      "recommend.max_limit",
	"recommend_director_boost": "recommend.director_boost",
	"recommend_cache_ttl":      "recommend.cache_ttl",

	// Analytics
	"analytics_enabled":      "analytics.enabled",
	"analytics_default_days": "analytics.default_days",
	"analytics_max_days":     "analytics.max_days",

	// Cache
	"cache_backend": "cache.backend",
	"redis_url":     "cache.redis_url",
	"cache_prefix":  "cache.prefix",

	// Events
	"events_enabled":        "events.enabled",
	"events_backend":        "events.backend",
	"events_topic":          "events.topic",
	"events_poison_topic":   "events.poison_topic",
	"nats_url":              "events.nats_url",
	"nats_embedded":         "events.embedded_server",
	"nats_embedded_port":    "events.embedded_port",
	"nats_store_dir":        "events.store_dir",
	"nats_durable_name":     "events.durable_name",
	"nats_queue_group":      "events.queue_group",
	"nats_subscribers":      "events.subscribers_count",
	"events_retry_count":    "events.retry_count",
	"events_retry_interval": "events.retry_interval",
	"events_close_timeout":  "events.close_timeout",

	// Circuit breaker
	"cb_max_requests":      "circuit_breaker.max_requests",
	"cb_interval":          "circuit_breaker.interval",
	"cb_timeout":           "circuit_breaker.timeout",
	"cb_failure_threshold": "circuit_breaker.failure_threshold",
}

// applyLegacyToggles honours REDIS_ENABLED=true, which selects the redis
// cache backend when a REDIS_URL is present.
func applyLegacyToggles(cfg *Config) {
	if strings.EqualFold(os.Getenv("REDIS_ENABLED"), "true") && cfg.Cache.RedisURL != "" {
		cfg.Cache.Backend = "redis"
	}
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it. REDIS_ENABLED=true is folded into cache.backend by
// applyLegacyToggles after unmarshalling.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
