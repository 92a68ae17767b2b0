// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// ViewPublisher publishes tracked views to the bus. It satisfies the
// analytics view recorder contract, so the HTTP path returns once the
// broker has accepted the message.
type ViewPublisher struct {
	publisher message.Publisher
	topic     string
	breaker   *gobreaker.CircuitBreaker[any]

	mu     sync.RWMutex
	closed bool
}

// NewViewPublisher wraps pub with a circuit breaker that opens after
// cfg.BreakerFailureThreshold consecutive publish failures.
func NewViewPublisher(pub message.Publisher, cfg *Config) *ViewPublisher {
	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	settings := gobreaker.Settings{
		Name:    "event-publisher",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Event publisher circuit breaker state changed")
			metrics.RecordBreakerTransition(name, from.String(), to.String())
		},
	}

	return &ViewPublisher{
		publisher: pub,
		topic:     cfg.Topic,
		breaker:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

// RecordView publishes ev. The event id doubles as the message UUID and the
// NATS dedup header.
func (p *ViewPublisher) RecordView(ctx context.Context, ev *models.ViewEvent) error {
	p.mu.RLock()
	closed := p.closed
	p.mu.RUnlock()
	if closed {
		return ErrPublisherClosed
	}

	data, err := SerializeEvent(NewViewTrackedEvent(ev))
	if err != nil {
		return err
	}

	msg := message.NewMessage(ev.ID, data)
	msg.SetContext(ctx)
	msg.Metadata.Set(natsgo.MsgIdHdr, ev.ID)
	msg.Metadata.Set("content_type", string(ev.ContentType))

	_, err = p.breaker.Execute(func() (any, error) {
		return nil, p.publisher.Publish(p.topic, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("publish view %s: event bus unavailable: %w", ev.ID, err)
	}
	if err != nil {
		return fmt.Errorf("publish view %s: %w", ev.ID, err)
	}

	logging.Ctx(ctx).Debug().Str("event_id", ev.ID).Str("topic", p.topic).Msg("View event published")
	return nil
}

// BreakerState returns the publish circuit breaker state.
func (p *ViewPublisher) BreakerState() string {
	return p.breaker.State().String()
}

// Close stops accepting new views. The underlying publisher is owned by the
// Bus and closed there.
func (p *ViewPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
