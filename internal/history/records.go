// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package history

import (
	"time"

	"github.com/tomtom215/cinequery/internal/models"
)

// Message bus topics for history events.
const (
	TopicSearchCompleted         = "history.search.completed"
	TopicIdentificationCompleted = "history.identification.completed"
)

// SearchRecord is one completed search.
type SearchRecord struct {
	ID        string               `json:"id"`
	Query     string               `json:"query"`
	Platform  string               `json:"platform"`
	UserID    string               `json:"user_id,omitempty"`
	Results   []models.ContentItem `json:"results"`
	Analysis  models.QueryIntent   `json:"analysis"`
	Fallback  bool                 `json:"fallback"`
	CreatedAt time.Time            `json:"created_at"`
}

// IdentificationRecord is one successful identification. Only identified
// guesses from known users are recorded.
type IdentificationRecord struct {
	ID          string                     `json:"id"`
	UserID      string                     `json:"user_id"`
	Description string                     `json:"description"`
	Title       string                     `json:"title"`
	Year        int                        `json:"year"`
	Synopsis    string                     `json:"synopsis"`
	Confidence  int                        `json:"confidence"`
	Analysis    models.IdentificationGuess `json:"analysis"`
	CreatedAt   time.Time                  `json:"created_at"`
}
