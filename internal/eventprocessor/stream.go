// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// streamMaxAge bounds how long view events stay in JetStream after they
// have been consumed into DuckDB.
const streamMaxAge = 7 * 24 * time.Hour

// JetStreamContext is the subset of jetstream.JetStream used to manage the
// view stream.
type JetStreamContext interface {
	Stream(ctx context.Context, name string) (jetstream.Stream, error)
	CreateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
	UpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

// EnsureStream creates or updates the stream that captures subjects. Stream
// names cannot contain dots, so topics are bound to one named stream rather
// than auto-provisioned per topic.
func EnsureStream(ctx context.Context, js JetStreamContext, subjects []string) error {
	cfg := jetstream.StreamConfig{
		Name:       StreamName,
		Subjects:   subjects,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     streamMaxAge,
		Duplicates: 2 * time.Minute,
		Storage:    jetstream.FileStorage,
		Discard:    jetstream.DiscardOld,
	}

	_, err := js.Stream(ctx, StreamName)
	switch {
	case err == nil:
		if _, err := js.UpdateStream(ctx, cfg); err != nil {
			return fmt.Errorf("update stream %s: %w", StreamName, err)
		}
		return nil
	case errors.Is(err, jetstream.ErrStreamNotFound):
		if _, err := js.CreateStream(ctx, cfg); err != nil {
			return fmt.Errorf("create stream %s: %w", StreamName, err)
		}
		return nil
	default:
		return fmt.Errorf("check stream %s: %w", StreamName, err)
	}
}
