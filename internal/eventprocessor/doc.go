// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package eventprocessor moves tracked views from the HTTP path to storage
// through a Watermill message bus.
//
// When events are enabled, analytics.Service publishes each accepted view
// instead of writing it synchronously:
//
//	POST /analytics/view -> ViewPublisher -> topic "views.tracked"
//	                                              |
//	                                        Router (Recoverer, Retry, PoisonQueue)
//	                                              |
//	                                        ViewHandler -> DuckDB
//
// Two backends are supported:
//   - gochannel: in-process Watermill GoChannel. No durability; used for
//     single-instance deployments and tests.
//   - nats: NATS JetStream through watermill-nats, against an external server
//     or an embedded nats-server started by this package.
//
// Messages that still fail after the retry budget are forwarded to the
// poison topic. Payloads that cannot be decoded and views of content that
// no longer exists are acknowledged and dropped; retrying them cannot
// succeed.
package eventprocessor
