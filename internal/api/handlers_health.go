// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinequery/internal/models"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Health handles GET /api/v1/health. The service is degraded when the
// catalog is empty, since every search and fallback slate depends on it.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	catalogItems := len(h.catalog.All())

	status := "healthy"
	if catalogItems == 0 {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, models.HealthStatus{
		Status:         status,
		Version:        Version,
		CatalogItems:   catalogItems,
		HistoryEnabled: h.historyDB != nil,
		Uptime:         time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthLive handles GET /api/v1/health/live. Returns 200 whenever the
// process is alive, regardless of dependencies.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady handles GET /api/v1/health/ready. Returns 200 only when the
// service can answer search traffic, 503 otherwise.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	catalogLoaded := len(h.catalog.All()) > 0

	statusCode := http.StatusOK
	if !catalogLoaded {
		statusCode = http.StatusServiceUnavailable
	}

	respondJSON(w, r, statusCode, map[string]interface{}{
		"catalog_loaded": catalogLoaded,
		"ready_to_serve": catalogLoaded,
		"uptime":         time.Since(h.startTime).Seconds(),
	}, start)
}
