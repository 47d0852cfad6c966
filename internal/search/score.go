// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package search

import (
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/cinequery/internal/config"
	"github.com/tomtom215/cinequery/internal/models"
)

// minTokenLength is the shortest raw-query token that participates in
// matching. Shorter tokens (articles, prepositions) produce too many false
// positives under substring matching.
const minTokenLength = 3

// Scorer computes an additive relevance score for a catalog item against a
// raw query and its extracted intent. All matching is case-insensitive,
// unanchored substring matching; partial and plural forms match, at the
// cost of occasional false positives on short terms.
type Scorer struct {
	weights         config.WeightTable
	ratingThreshold float64
}

// NewScorer creates a Scorer from search configuration.
func NewScorer(cfg *config.SearchConfig) *Scorer {
	return &Scorer{
		weights:         cfg.Weights,
		ratingThreshold: cfg.RatingBoostThreshold,
	}
}

// Score returns the non-negative relevance of item for the given query and
// intent. A return of 0 means nothing matched; such items are excluded from
// the primary result set, not down-ranked.
//
// The rating boost rewards well-regarded items but only when the item
// already matched something, so unmatched items still score exactly 0.
func (s *Scorer) Score(item models.ContentItem, rawQuery string, intent models.QueryIntent) int {
	blob := itemText(item)
	score := 0

	// Raw query tokens carry the highest weight: they work even when
	// intent extraction failed and are the most literal relevance signal.
	for _, token := range tokenize(rawQuery) {
		if strings.Contains(blob, token) {
			score += s.weights.QueryToken
		}
	}

	for _, keyword := range intent.Keywords {
		if containsFold(blob, keyword) {
			score += s.weights.Keyword
		}
	}

	for _, term := range intent.SearchTerms {
		if containsFold(blob, term) {
			score += s.weights.SearchTerm
		}
	}

	if containsFold(blob, intent.Genre) {
		score += s.weights.Genre
	}

	for _, actor := range intent.Actors {
		if containsFold(blob, actor) {
			score += s.weights.Actor
		}
	}

	if containsFold(blob, intent.Director) {
		score += s.weights.Director
	}

	for _, theme := range intent.Themes {
		if containsFold(blob, theme) {
			score += s.weights.Theme
		}
	}

	if containsFold(blob, intent.Type) {
		score += s.weights.ContentType
	}

	if score > 0 && item.Rating > s.ratingThreshold {
		score += s.weights.RatingBoost
	}

	return score
}

// itemText builds the lower-cased searchable text for an item: title,
// description, genre, type, director and cast.
func itemText(item models.ContentItem) string {
	parts := []string{item.Title, item.Description, item.Genre, item.Type, item.Director}
	parts = append(parts, item.Cast...)
	return strings.ToLower(strings.Join(parts, " "))
}

// tokenize splits the raw query on whitespace, lower-cases tokens and
// drops those at or below the minimum length.
func tokenize(rawQuery string) []string {
	fields := strings.Fields(strings.ToLower(rawQuery))
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// containsFold reports whether needle appears in the already-lower-cased
// blob, ignoring needle's case. Empty needles never match.
func containsFold(blob, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(blob, strings.ToLower(needle))
}
