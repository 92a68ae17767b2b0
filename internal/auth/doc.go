// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package auth guards admin writes with HS256 bearer tokens.
//
// Read endpoints are public. Creating recommendation edges requires a token
// whose role claim is "admin", signed with ADMIN_JWT_SECRET. Tokens are
// minted offline with `marquee -issue-admin-token <subject>`.
package auth
