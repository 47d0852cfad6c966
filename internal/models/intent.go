// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package models

// QueryIntent is the structured interpretation of a free-text search query,
// produced by the understanding service via the intent extractor.
//
// Every field is optional: an empty QueryIntent is a valid (and deliberate)
// degradation state when the understanding service fails or returns
// unparseable output. Scoring falls through to direct query-token matching
// and the popularity fallback in that case.
//
// An intent is owned by the single request that produced it and is discarded
// after scoring; it is never cached or persisted by the search pipeline.
type QueryIntent struct {
	// Genre is the inferred genre, e.g. "comédia romântica".
	Genre string `json:"genre,omitempty"`

	// Type is the inferred content format (novela, série, minissérie).
	// Only populated by the platform-specific instruction variant.
	Type string `json:"type,omitempty"`

	// Themes are thematic descriptors ("vingança", "espaço").
	Themes []string `json:"themes,omitempty"`

	// Actors are performer names mentioned or implied by the query.
	Actors []string `json:"actors,omitempty"`

	// Director is an inferred director name.
	Director string `json:"director,omitempty"`

	// Keywords are free-form matching terms extracted from the query.
	Keywords []string `json:"keywords,omitempty"`

	// SearchTerms are alternative phrasings suggested by the understanding
	// service for broader lexical matching.
	SearchTerms []string `json:"searchTerms,omitempty"`
}

// IsEmpty reports whether the intent carries no usable signal. An empty
// intent means scoring relies solely on direct query-token matching.
func (q QueryIntent) IsEmpty() bool {
	return q.Genre == "" && q.Type == "" && q.Director == "" &&
		len(q.Themes) == 0 && len(q.Actors) == 0 &&
		len(q.Keywords) == 0 && len(q.SearchTerms) == 0
}
