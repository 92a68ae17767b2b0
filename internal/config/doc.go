// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads and validates Marquee's runtime configuration.

# Sources

Configuration is layered with koanf. Later layers win:

 1. built-in defaults (defaultConfig)
 2. an optional YAML file: $CONFIG_PATH, then config.yaml / config.yml in the
    working directory, then /etc/marquee/config.yaml
 3. environment variables

Only the environment variables listed in envMappings are read. Unknown
variables are ignored, so the process environment can be shared with other
tools.

# Groups

  - ServerConfig: PORT, HOST, HTTP_*_TIMEOUT, ENVIRONMENT
  - DatabaseConfig: DATABASE_PATH, DATABASE_MAX_MEMORY, DATABASE_THREADS,
    DATABASE_QUERY_TIMEOUT, SEED_SAMPLE_DATA
  - APIConfig: DEFAULT_PAGE_SIZE, MAX_PAGE_SIZE
  - SecurityConfig: CORS_ORIGIN(S), RATE_LIMIT_*, VIEW_RATE_LIMIT_PER_MINUTE,
    ADMIN_JWT_SECRET, ADMIN_TOKEN_TTL
  - LoggingConfig: LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - RecommendConfig: RECOMMEND_DEFAULT_LIMIT, RECOMMEND_MAX_LIMIT,
    RECOMMEND_DIRECTOR_BOOST, RECOMMEND_CACHE_TTL
  - AnalyticsConfig: ANALYTICS_ENABLED, ANALYTICS_DEFAULT_DAYS,
    ANALYTICS_MAX_DAYS
  - CacheConfig: CACHE_BACKEND (memory, redis, none), REDIS_URL,
    CACHE_PREFIX. REDIS_ENABLED=true with a REDIS_URL selects redis.
  - EventsConfig: EVENTS_*, NATS_*
  - CircuitBreakerConfig: CB_MAX_REQUESTS, CB_INTERVAL, CB_TIMEOUT,
    CB_FAILURE_THRESHOLD

List values (CORS_ORIGINS) accept a comma-separated string.

# Validation

Validate runs once after loading. It checks ranges (ports, page sizes, day
windows, the director boost), enumerations (log level and format, cache and
event backends) and URL shapes (REDIS_URL, NATS_URL). A non-empty
ADMIN_JWT_SECRET must be at least 32 characters. ENVIRONMENT=production
also rejects a wildcard CORS origin.
*/
package config
