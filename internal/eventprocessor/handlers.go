// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package eventprocessor

import (
	"context"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// ViewStore persists a view and increments the item's view count.
type ViewStore interface {
	RecordView(ctx context.Context, ev *models.ViewEvent) error
}

// ViewHandler consumes view events into the store.
type ViewHandler struct {
	store ViewStore
}

// NewViewHandler creates a handler.
func NewViewHandler(store ViewStore) *ViewHandler {
	return &ViewHandler{store: store}
}

// Handle is a message.NoPublishHandlerFunc. Returning an error triggers the
// router's retry and poison queue.
func (h *ViewHandler) Handle(msg *message.Message) error {
	start := time.Now()
	ctx := msg.Context()
	log := logging.Ctx(ctx)

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		log.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable view event")
		metrics.EventsProcessed.WithLabelValues("rejected").Inc()
		return nil
	}

	err = h.store.RecordView(ctx, event.ToModel())
	switch {
	case err == nil:
		metrics.EventsProcessed.WithLabelValues("stored").Inc()
		metrics.EventProcessingDuration.Observe(time.Since(start).Seconds())
		return nil
	case errors.Is(err, models.ErrRecordNotFound):
		log.Info().Str("event_id", event.EventID).Str("content_id", event.ContentID).
			Msg("Dropping view of missing content")
		metrics.EventsProcessed.WithLabelValues("rejected").Inc()
		return nil
	case errors.Is(err, context.Canceled):
		return err
	default:
		metrics.EventsProcessed.WithLabelValues("failed").Inc()
		return err
	}
}

// Register subscribes the handler to cfg.Topic on router.
func (h *ViewHandler) Register(router *Router, subscriber message.Subscriber, topic string) {
	router.AddConsumerHandler("view_recorder", topic, subscriber, h.Handle)
}

// Pipeline bundles the bus, the router and the publisher handed to the
// analytics service.
type Pipeline struct {
	Bus       *Bus
	Router    *Router
	Publisher *ViewPublisher
}

// NewPipeline builds the complete view pipeline around store.
func NewPipeline(ctx context.Context, cfg *Config, store ViewStore) (*Pipeline, error) {
	logger := logging.NewWatermillAdapter()

	bus, err := NewBus(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(cfg, bus.Publisher, logger)
	if err != nil {
		_ = bus.Close(ctx)
		return nil, err
	}
	NewViewHandler(store).Register(router, bus.Subscriber, cfg.Topic)

	return &Pipeline{
		Bus:       bus,
		Router:    router,
		Publisher: NewViewPublisher(bus.Publisher, cfg),
	}, nil
}

// Close stops publishing, stops the router and releases the bus.
func (p *Pipeline) Close(ctx context.Context) error {
	_ = p.Publisher.Close()
	routerErr := p.Router.Close()
	busErr := p.Bus.Close(ctx)
	return errors.Join(routerErr, busErr)
}
