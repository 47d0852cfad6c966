// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package middleware provides HTTP middleware shared by the API router:
// request ID propagation, structured request logging, and Prometheus
// instrumentation. Rate limiting, CORS and compression come from the chi
// ecosystem and are wired directly in the router.
package middleware
