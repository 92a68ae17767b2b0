// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// GenerateKey derives a compact key from an operation name and its
// parameters, e.g. "trending:3f2a...". Equal parameters always produce the
// same key. Parameters that cannot be encoded fall back to their %v form.
func GenerateKey(operation string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", operation, params)
	}
	sum := sha256.Sum256(data)
	return operation + ":" + hex.EncodeToString(sum[:16])
}
