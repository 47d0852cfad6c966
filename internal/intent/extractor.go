// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package intent extracts a structured query intent from a free-text
// description using the language model service.
//
// Intent extraction fails open: if the model call or the JSON parse fails,
// the extractor returns an empty intent and the search proceeds on the raw
// query tokens alone. A degraded ranking beats a failed search.
package intent

import (
	"context"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
	"github.com/tomtom215/cinequery/internal/models"
	"github.com/tomtom215/cinequery/internal/understanding"
)

// Variant selects the instruction framing for extraction.
type Variant int

const (
	// VariantSearch is the general catalog framing covering movies,
	// series, soaps and miniseries across platforms.
	VariantSearch Variant = iota

	// VariantPlatform is the Brazilian-content framing used when the
	// search is scoped to Globoplay.
	VariantPlatform
)

const searchInstruction = `Você é um assistente especializado em recomendar filmes, séries, novelas e minisséries.
Analise a descrição do usuário e extraia: gênero, tema, atores, diretor, época, plataforma de streaming.
Retorne um JSON com: { "genre": string, "themes": string[], "actors": string[], "director": string, "keywords": string[], "searchTerms": string[] }`

const platformInstruction = `Você é um assistente especializado em conteúdo brasileiro do Globoplay (novelas, séries, minisséries).
Analise a descrição do usuário e extraia: gênero, tema, tipo de conteúdo (novela/série/minissérie), atores, época.
Retorne um JSON com: { "genre": string, "type": string, "themes": string[], "keywords": string[], "searchTerms": string[] }`

// Extractor turns free-text queries into structured intents.
type Extractor struct {
	completer   understanding.Completer
	temperature float64
}

// NewExtractor creates an Extractor using the given completion client.
// Temperature is typically the configured search temperature.
func NewExtractor(completer understanding.Completer, temperature float64) *Extractor {
	return &Extractor{
		completer:   completer,
		temperature: temperature,
	}
}

// Extract analyzes the query and returns the structured intent. It never
// returns an error: extraction failures degrade to an empty intent.
func (e *Extractor) Extract(ctx context.Context, query string, variant Variant) models.QueryIntent {
	instruction := searchInstruction
	if variant == VariantPlatform {
		instruction = platformInstruction
	}

	content, err := e.completer.Complete(ctx, understanding.Request{
		Operation:   "search",
		Instruction: instruction,
		Input:       query,
		Temperature: e.temperature,
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Intent extraction failed, proceeding with empty intent")
		metrics.UnderstandingEmptyIntents.Inc()
		return models.QueryIntent{}
	}

	var parsed models.QueryIntent
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil {
		logging.Warn().Err(err).Str("content", truncate(content, 200)).Msg("Intent response was not valid JSON, proceeding with empty intent")
		metrics.UnderstandingEmptyIntents.Inc()
		return models.QueryIntent{}
	}

	return parsed
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
