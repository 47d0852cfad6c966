// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package models

// ContentItem is a single entry in the content catalog: a film, series,
// novela, or miniseries available on some streaming platform.
//
// Items are loaded once at process start and never mutated. Identity is the
// ID field, which is unique and stable across the catalog. Relevance scores
// computed during search are intentionally NOT part of this type. They are
// internal to the ranking pipeline and must never appear in API responses.
type ContentItem struct {
	// ID uniquely identifies the item within the catalog.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is a short synopsis used for matching and display.
	Description string `json:"description"`

	// Year is the release year, 0 when unknown.
	Year int `json:"year,omitempty"`

	// Genre is the primary genre label (e.g. "Drama", "Ficção Científica").
	Genre string `json:"genre,omitempty"`

	// Type is the content format: série, novela, minissérie, or empty for films.
	Type string `json:"type,omitempty"`

	// Director is the primary director or showrunner.
	Director string `json:"director,omitempty"`

	// Cast lists the principal cast in billing order.
	Cast []string `json:"cast,omitempty"`

	// Platform is the streaming service the item is hosted on.
	Platform string `json:"platform,omitempty"`

	// Rating is the aggregate audience rating on a 0-10 scale.
	Rating float64 `json:"rating,omitempty"`

	// PosterURL references the poster artwork.
	PosterURL string `json:"poster_url,omitempty"`
}
