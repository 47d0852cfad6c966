// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"results": [...], "total": 5},
//	  "metadata": {"timestamp": "2026-02-10T12:00:00Z", "query_time_ms": 840}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError carries structured error details with a machine-readable code.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - QUERY_REQUIRED / DESCRIPTION_REQUIRED: missing mandatory free text
//   - UNDERSTANDING_FAILED: the language-understanding call failed where no
//     fallback exists (identification only)
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SearchResponse is the payload of a successful /search call. Results carry
// no relevance scores: scoring is internal to the ranking pipeline.
type SearchResponse struct {
	Results  []ContentItem `json:"results"`
	Analysis QueryIntent   `json:"analysis"`
	Total    int           `json:"total"`
}

// IdentifyResponse is the payload of a successful /identify call.
type IdentifyResponse struct {
	Identification IdentificationGuess `json:"identification"`
}

// HealthStatus describes overall service health for the /health endpoint.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	CatalogItems   int     `json:"catalog_items"`
	HistoryEnabled bool    `json:"history_enabled"`
	Uptime         float64 `json:"uptime"`
}
