// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package metrics defines the Prometheus instrumentation for the service:
// HTTP request counts and latency, language-model call outcomes, circuit
// breaker state, search fallback activity, and history recording.
//
// Metrics are registered with the default registry via promauto at package
// init and exposed on /metrics by the API router.
package metrics
