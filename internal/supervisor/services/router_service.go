// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// EventRouter is satisfied by *eventprocessor.Router.
type EventRouter interface {
	Run(ctx context.Context) error
	Close() error
}

// EventRouterService supervises the view event router. Run returns when
// ctx is canceled, after the router has drained in-flight handlers.
type EventRouterService struct {
	router EventRouter
}

// NewEventRouterService wraps router.
func NewEventRouterService(router EventRouter) *EventRouterService {
	return &EventRouterService{router: router}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	if err := s.router.Run(ctx); err != nil {
		return fmt.Errorf("event router stopped: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	// Closed from outside. A watermill router cannot run twice.
	return suture.ErrDoNotRestart
}

func (s *EventRouterService) String() string {
	return "event-router"
}
