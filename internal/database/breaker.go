// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

const defaultFailureThreshold = 5

// newBreaker builds the circuit breaker every repository query runs through.
// Cancellations, empty results and missing-record writes do not count as
// failures.
func newBreaker(name string, cfg config.CircuitBreakerConfig) *gobreaker.CircuitBreaker[any] {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, sql.ErrNoRows) ||
				errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.RecordBreakerTransition(name, from.String(), to.String())
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	return gobreaker.NewCircuitBreaker[any](settings)
}

// run executes fn through the circuit breaker under the per-query timeout and
// records the query metrics. An open breaker surfaces as ErrCircuitOpen.
func (db *DB) run(ctx context.Context, operation, table string, fn func(ctx context.Context) error) error {
	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.breaker.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = ErrCircuitOpen
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	return err
}

// withTx runs fn inside a transaction through the circuit breaker.
func (db *DB) withTx(ctx context.Context, operation, table string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return db.run(ctx, operation, table, func(ctx context.Context) error {
		tx, err := db.conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(ctx, tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Warn().Err(rbErr).Str("table", table).Msg("Failed to roll back transaction")
			}
			return err
		}
		return tx.Commit()
	})
}
