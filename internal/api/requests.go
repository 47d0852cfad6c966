// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package api

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query    string `json:"query" validate:"required,min=1,max=500"`
	Platform string `json:"platform" validate:"omitempty,max=50"`
	UserID   string `json:"user_id" validate:"omitempty,max=100"`
}

// IdentifyRequest is the body of POST /api/v1/identify.
type IdentifyRequest struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
	UserID      string `json:"user_id" validate:"omitempty,max=100"`
}
