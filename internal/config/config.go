// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig         `koanf:"server"`
	Database       DatabaseConfig       `koanf:"database"`
	API            APIConfig            `koanf:"api"`
	Security       SecurityConfig       `koanf:"security"`
	Logging        LoggingConfig        `koanf:"logging"`
	Recommend      RecommendConfig      `koanf:"recommend"`
	Analytics      AnalyticsConfig      `koanf:"analytics"`
	Cache          CacheConfig          `koanf:"cache"`
	Events         EventsConfig         `koanf:"events"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path         string        `koanf:"path"` // ":memory:" for an ephemeral catalog
	MaxMemory    string        `koanf:"max_memory"`
	Threads      int           `koanf:"threads"` // 0 = runtime.NumCPU()
	QueryTimeout time.Duration `koanf:"query_timeout"`
	SeedSample   bool          `koanf:"seed_sample"`
}

// APIConfig holds pagination settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS, rate limiting and admin token settings.
type SecurityConfig struct {
	CORSOrigins         []string      `koanf:"cors_origins"`
	RateLimitReqs       int           `koanf:"rate_limit_reqs"`
	RateLimitWindow     time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled   bool          `koanf:"rate_limit_disabled"`
	ViewRateLimitPerMin int           `koanf:"view_rate_limit_per_minute"`
	AdminJWTSecret      string        `koanf:"admin_jwt_secret"`
	AdminTokenTTL       time.Duration `koanf:"admin_token_ttl"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	DefaultLimit  int           `koanf:"default_limit"`
	MaxLimit      int           `koanf:"max_limit"`
	DirectorBoost float64       `koanf:"director_boost"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
}

// AnalyticsConfig holds view analytics settings.
type AnalyticsConfig struct {
	Enabled     bool `koanf:"enabled"`
	DefaultDays int  `koanf:"default_days"`
	MaxDays     int  `koanf:"max_days"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend  string `koanf:"backend"` // memory, redis, none
	RedisURL string `koanf:"redis_url"`
	Prefix   string `koanf:"prefix"`
}

// EventsConfig configures the view event pipeline.
type EventsConfig struct {
	Enabled          bool          `koanf:"enabled"`
	Backend          string        `koanf:"backend"` // gochannel, nats
	Topic            string        `koanf:"topic"`
	PoisonTopic      string        `koanf:"poison_topic"`
	NATSURL          string        `koanf:"nats_url"`
	EmbeddedServer   bool          `koanf:"embedded_server"`
	EmbeddedPort     int           `koanf:"embedded_port"`
	StoreDir         string        `koanf:"store_dir"`
	DurableName      string        `koanf:"durable_name"`
	QueueGroup       string        `koanf:"queue_group"`
	SubscribersCount int           `koanf:"subscribers_count"`
	RetryCount       int           `koanf:"retry_count"`
	RetryInterval    time.Duration `koanf:"retry_interval"`
	CloseTimeout     time.Duration `koanf:"close_timeout"`
}

// CircuitBreakerConfig guards repository queries.
type CircuitBreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (later wins).
func Load() (*Config, error) {
	return LoadWithKoanf()
}
