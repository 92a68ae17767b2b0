// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
)

// PeriodicService supervises a job that loops until its context ends, such
// as ViewLimiter.Run.
type PeriodicService struct {
	name string
	run  func(ctx context.Context)
}

// NewPeriodicService wraps run under name.
func NewPeriodicService(name string, run func(ctx context.Context)) *PeriodicService {
	return &PeriodicService{name: name, run: run}
}

// Serve implements suture.Service. A job that returns while ctx is still
// live is reported as a failure and restarted.
func (s *PeriodicService) Serve(ctx context.Context) error {
	s.run(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.New(s.name + " exited early")
}

func (s *PeriodicService) String() string {
	return s.name
}
