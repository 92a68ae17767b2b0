// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package supervisor runs Marquee's long-lived goroutines under a suture v4
supervisor tree.

The tree has three layers, each its own child supervisor so a crash loop in
one cannot starve the others:

	marquee
	├── events       view event router (when EVENTS_ENABLED=true)
	├── maintenance  view limiter and memory cache sweeps
	└── api          HTTP server

Supervisor events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger. Service wrappers live in the services subpackage.
*/
package supervisor
