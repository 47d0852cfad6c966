// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package understanding

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
	"github.com/tomtom215/cinequery/internal/resilience"
)

// CircuitBreakerClient wraps a Completer with circuit breaker protection.
// When the language model service fails repeatedly the breaker opens and
// calls fail fast instead of stacking up against a dead upstream. Search
// degrades to an empty intent in that state; identification surfaces the
// error to the caller.
type CircuitBreakerClient struct {
	inner Completer
	cb    *gobreaker.CircuitBreaker[string]
	name  string
}

// Ensure CircuitBreakerClient implements Completer
var _ Completer = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps the given Completer in a circuit breaker
// named "understanding-llm".
func NewCircuitBreakerClient(inner Completer) *CircuitBreakerClient {
	const cbName = "understanding-llm"

	cb := gobreaker.NewCircuitBreaker[string](resilience.Settings(cbName))

	return &CircuitBreakerClient{
		inner: inner,
		cb:    cb,
		name:  cbName,
	}
}

// Complete executes the request through the circuit breaker.
func (c *CircuitBreakerClient) Complete(ctx context.Context, req Request) (string, error) {
	result, err := c.cb.Execute(func() (string, error) {
		return c.inner.Complete(ctx, req)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Str("operation", req.Operation).Msg("[CIRCUIT BREAKER] Completion rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
			counts := c.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(counts.ConsecutiveFailures))
		}
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)

	return result, nil
}
