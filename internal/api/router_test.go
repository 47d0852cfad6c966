// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinequery/internal/metrics"
)

func newTestRouter(cfg RouterConfig) http.Handler {
	h := newTestHandlers(&stubExtractor{}, &stubCompleter{}, nil)
	return NewRouter(h, cfg)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(RouterConfig{RateLimitDisabled: true})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{http.MethodGet, "/api/v1/catalog", "", http.StatusOK},
		{http.MethodPost, "/api/v1/search", `{"query": "faroeste"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/history/searches", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/history/identifications", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/nonexistent", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/search", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d\nbody: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(RouterConfig{RateLimitDisabled: true})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Metadata.RequestID == "" {
		t.Error("expected request_id in response metadata")
	}
}

func TestRouterRateLimit(t *testing.T) {
	router := newTestRouter(RouterConfig{
		RateLimitReqs:   2,
		RateLimitWindow: time.Minute,
	})

	hitsBefore := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/catalog"))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	var env envelope
	if err := json.Unmarshal(last.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Error == nil || env.Error.Code != ErrCodeRateLimitExceeded {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeRateLimitExceeded)
	}

	hitsAfter := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/catalog"))
	if hitsAfter != hitsBefore+1 {
		t.Errorf("rate limit hits = %v, want %v", hitsAfter, hitsBefore+1)
	}

	// Health probes bypass the limiter.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health after limit status = %d, want 200", rec.Code)
	}
}
