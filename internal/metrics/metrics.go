// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Language Model Call Metrics
	UnderstandingRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "understanding_request_duration_seconds",
			Help:    "Duration of language model completion calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"}, // "search", "identify"
	)

	UnderstandingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "understanding_requests_total",
			Help: "Total number of language model completion calls",
		},
		[]string{"operation", "result"}, // result: "success", "failure"
	)

	UnderstandingEmptyIntents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "understanding_empty_intents_total",
			Help: "Number of searches that proceeded with an empty intent after extraction failed",
		},
	)

	// Search Pipeline Metrics
	SearchFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_fallbacks_total",
			Help: "Number of searches where no item scored and the fallback slate was served",
		},
	)

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of results returned per search",
			Buckets: []float64{1, 2, 4, 6, 8, 10, 12},
		},
	)

	MetadataLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metadata_lookups_total",
			Help: "Total number of external metadata lookups",
		},
		[]string{"result"}, // result: "success", "failure", "skipped"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// History Recording Metrics
	HistoryEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "history_events_published_total",
			Help: "Total number of history events published to the message bus",
		},
		[]string{"topic"},
	)

	HistoryRecordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "history_records_written_total",
			Help: "Total number of history records written to storage",
		},
		[]string{"kind", "result"}, // kind: "search", "identification"
	)
)

// RecordAPIRequest records HTTP request metrics for an endpoint.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordUnderstandingCall records the outcome of a language model call.
func RecordUnderstandingCall(operation string, duration time.Duration, err error) {
	UnderstandingRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	result := "success"
	if err != nil {
		result = "failure"
	}
	UnderstandingRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordMetadataLookup records an external metadata lookup outcome.
func RecordMetadataLookup(result string) {
	MetadataLookupsTotal.WithLabelValues(result).Inc()
}

// TrackActiveRequest adjusts the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
