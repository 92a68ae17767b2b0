// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"

	"github.com/tomtom215/marquee/internal/models"
)

var (
	// ErrContentNotFound is returned when the source item does not resolve.
	ErrContentNotFound = models.ErrContentNotFound

	// ErrInvalidParameter is returned for a negative limit, an empty id or an
	// unknown content type.
	ErrInvalidParameter = models.ErrInvalidParameter
)

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func contentNotFound(ref models.ContentRef) error {
	return fmt.Errorf("%s %s: %w", ref.Type, ref.ID, ErrContentNotFound)
}
