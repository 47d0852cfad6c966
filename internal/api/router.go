// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinequery/internal/metrics"
	"github.com/tomtom215/cinequery/internal/middleware"
)

// RouterConfig holds the request-surface settings the router needs.
type RouterConfig struct {
	CORSOrigins       []string
	RateLimitReqs     int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// NewRouter wires all routes and middleware. CORS is applied globally so
// OPTIONS preflight requests are answered on every path.
func NewRouter(h *Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
	}))
	r.Use(middleware.RequestLogger)

	r.Handle("/metrics", promhttp.Handler())

	// Health endpoints stay outside the rate limit so monitoring probes
	// never get throttled away.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))
		r.Use(chimiddleware.Compress(5))
		r.Use(middleware.PrometheusMetrics)

		r.Post("/search", h.Search)
		r.Post("/identify", h.Identify)
		r.Get("/catalog", h.Catalog)
		r.Get("/history/searches", h.HistorySearches)
		r.Get("/history/identifications", h.HistoryIdentifications)
	})

	return r
}

// rateLimit builds an IP-keyed limiter from go-chi/httprate. Over-limit
// requests get the standard error envelope and are counted.
func rateLimit(cfg RouterConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.RateLimitReqs,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			respondError(w, r, http.StatusTooManyRequests, ErrCodeRateLimitExceeded,
				"Too many requests, slow down", nil)
		}),
	)
}
