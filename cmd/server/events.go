// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/eventprocessor"
	"github.com/tomtom215/marquee/internal/logging"
)

// initEvents connects the bus and builds the view pipeline. The router is
// not started here; the supervisor tree runs it.
func initEvents(ctx context.Context, cfg config.EventsConfig, store eventprocessor.ViewStore) (*eventprocessor.Pipeline, error) {
	evCfg := eventprocessor.ConfigFrom(cfg)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pipeline, err := eventprocessor.NewPipeline(connectCtx, &evCfg, store)
	if err != nil {
		return nil, fmt.Errorf("initialize event pipeline: %w", err)
	}

	logging.Info().
		Str("backend", pipeline.Bus.Backend()).
		Str("topic", evCfg.Topic).
		Str("poison_topic", evCfg.PoisonTopic).
		Bool("embedded_server", evCfg.EmbeddedServer).
		Int("retry_count", evCfg.RetryCount).
		Msg("Event pipeline initialized")
	return pipeline, nil
}
