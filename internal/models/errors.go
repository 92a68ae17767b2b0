// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "errors"

// Domain errors shared by the recommendation, analytics and discovery
// services. Wrap them with fmt.Errorf("...: %w", err) and test with
// errors.Is.
var (
	// ErrContentNotFound means the referenced movie or series does not exist
	// or has been soft-deleted.
	ErrContentNotFound = errors.New("content not found")

	// ErrRecordNotFound is returned by repository writes that target a
	// missing or soft-deleted record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidParameter means a request parameter was rejected before any
	// repository call.
	ErrInvalidParameter = errors.New("invalid parameter")
)
