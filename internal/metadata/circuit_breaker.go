// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package metadata

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
	"github.com/tomtom215/cinequery/internal/models"
	"github.com/tomtom215/cinequery/internal/resilience"
)

// CircuitBreakerClient wraps a Lookup with circuit breaker protection so a
// failing metadata upstream sheds load quickly instead of slowing every
// search down to its timeout.
type CircuitBreakerClient struct {
	inner Lookup
	cb    *gobreaker.CircuitBreaker[[]models.ContentItem]
	name  string
}

// Ensure CircuitBreakerClient implements Lookup
var _ Lookup = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient wraps the given Lookup in a circuit breaker named
// "metadata-api".
func NewCircuitBreakerClient(inner Lookup) *CircuitBreakerClient {
	const cbName = "metadata-api"

	cb := gobreaker.NewCircuitBreaker[[]models.ContentItem](resilience.Settings(cbName))

	return &CircuitBreakerClient{
		inner: inner,
		cb:    cb,
		name:  cbName,
	}
}

// Search executes the lookup through the circuit breaker.
func (c *CircuitBreakerClient) Search(ctx context.Context, query, platform string) ([]models.ContentItem, error) {
	result, err := c.cb.Execute(func() ([]models.ContentItem, error) {
		return c.inner.Search(ctx, query, platform)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Metadata lookup rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
			counts := c.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)

	return result, nil
}
