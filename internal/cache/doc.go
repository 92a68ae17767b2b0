// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package cache provides the short-lived result cache used by the
// recommendation and trending paths.
//
// Two backends implement Store: MemoryStore, an in-process TTL map, and
// RedisStore for deployments running several replicas. Values are JSON
// documents written with SetJSON and read with GetJSON under keys built by
// GenerateKey. A nil Store disables caching.
package cache
