// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/config"
)

// Backend names.
const (
	BackendGoChannel = "gochannel"
	BackendNATS      = "nats"
)

// StreamName is the JetStream stream that captures every view subject.
const StreamName = "VIEWS"

// Config holds event bus settings.
type Config struct {
	Backend string
	Topic   string
	// PoisonTopic receives messages that exhausted their retries.
	PoisonTopic string

	// NATS connection. Ignored by the gochannel backend.
	NATSURL        string
	EmbeddedServer bool
	EmbeddedPort   int
	StoreDir       string
	DurableName    string
	QueueGroup     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	AckWaitTimeout time.Duration
	MaxDeliver     int

	SubscribersCount int

	// Router retry policy.
	RetryCount    int
	RetryInterval time.Duration
	CloseTimeout  time.Duration

	// Publish circuit breaker.
	BreakerFailureThreshold uint32
	BreakerTimeout          time.Duration
}

// DefaultConfig returns production defaults for the in-process backend.
func DefaultConfig() Config {
	return Config{
		Backend:                 BackendGoChannel,
		Topic:                   "views.tracked",
		PoisonTopic:             "views.poison",
		NATSURL:                 "nats://127.0.0.1:4222",
		EmbeddedPort:            4222,
		StoreDir:                "/data/nats/jetstream",
		DurableName:             "view-processor",
		QueueGroup:              "view-processors",
		MaxReconnects:           -1,
		ReconnectWait:           2 * time.Second,
		AckWaitTimeout:          30 * time.Second,
		MaxDeliver:              5,
		SubscribersCount:        1,
		RetryCount:              3,
		RetryInterval:           100 * time.Millisecond,
		CloseTimeout:            30 * time.Second,
		BreakerFailureThreshold: 5,
		BreakerTimeout:          30 * time.Second,
	}
}

// ConfigFrom overlays the application configuration on the defaults.
func ConfigFrom(cfg config.EventsConfig) Config {
	c := DefaultConfig()
	if cfg.Backend != "" {
		c.Backend = cfg.Backend
	}
	if cfg.Topic != "" {
		c.Topic = cfg.Topic
	}
	if cfg.PoisonTopic != "" {
		c.PoisonTopic = cfg.PoisonTopic
	}
	if cfg.NATSURL != "" {
		c.NATSURL = cfg.NATSURL
	}
	c.EmbeddedServer = cfg.EmbeddedServer
	if cfg.EmbeddedPort > 0 {
		c.EmbeddedPort = cfg.EmbeddedPort
	}
	if cfg.StoreDir != "" {
		c.StoreDir = cfg.StoreDir
	}
	if cfg.DurableName != "" {
		c.DurableName = cfg.DurableName
	}
	if cfg.QueueGroup != "" {
		c.QueueGroup = cfg.QueueGroup
	}
	if cfg.SubscribersCount > 0 {
		c.SubscribersCount = cfg.SubscribersCount
	}
	if cfg.RetryCount > 0 {
		c.RetryCount = cfg.RetryCount
	}
	if cfg.RetryInterval > 0 {
		c.RetryInterval = cfg.RetryInterval
	}
	if cfg.CloseTimeout > 0 {
		c.CloseTimeout = cfg.CloseTimeout
	}
	return c
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGoChannel, BackendNATS:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidConfig)
	}
	if c.PoisonTopic == c.Topic {
		return fmt.Errorf("%w: poison topic must differ from topic", ErrInvalidConfig)
	}
	if c.Backend == BackendNATS && !c.EmbeddedServer && c.NATSURL == "" {
		return fmt.Errorf("%w: nats url is required without the embedded server", ErrInvalidConfig)
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("%w: retry count must not be negative", ErrInvalidConfig)
	}
	return nil
}
