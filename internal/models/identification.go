// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package models

// IdentificationGuess is the understanding service's answer to "what title
// am I thinking of?". Unlike search, there is no local ranking step: the
// service resolves identity directly and this type only carries its answer.
type IdentificationGuess struct {
	// Identified reports whether the service is confident it named the title.
	Identified bool `json:"identified"`

	// Confidence is the service's self-reported certainty, 0-100.
	Confidence int `json:"confidence"`

	// Title is the identified title (best guess when Identified is false).
	Title string `json:"title,omitempty"`

	// Year is the release year.
	Year int `json:"year,omitempty"`

	// Synopsis is a full plot summary of the identified title.
	Synopsis string `json:"synopsis,omitempty"`

	// Director is the director of the identified title.
	Director string `json:"director,omitempty"`

	// Cast lists the principal cast.
	Cast []string `json:"cast,omitempty"`

	// Genre is the genre of the identified title.
	Genre string `json:"genre,omitempty"`

	// Platform is the streaming service hosting the title, when known.
	Platform string `json:"platform,omitempty"`

	// Reasoning explains how the service arrived at the identification.
	Reasoning string `json:"reasoning,omitempty"`

	// PossibleMatches lists up to three alternate candidates when the
	// service is uncertain.
	PossibleMatches []PossibleMatch `json:"possibleMatches,omitempty"`
}

// PossibleMatch is an alternate identification candidate.
type PossibleMatch struct {
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Synopsis string `json:"synopsis,omitempty"`
}
