// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package identify names an exact title from a vague or partial
// description using the language model service.
//
// Unlike search, identification has no fallback: there is no meaningful
// degraded answer, so service and parse failures surface to the caller.
package identify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/models"
	"github.com/tomtom215/cinequery/internal/understanding"
)

// ErrEmptyDescription is returned when identification is attempted with no
// description.
var ErrEmptyDescription = errors.New("identification description must not be empty")

const identifyInstruction = `Você é um especialista em cinema e televisão. Sua tarefa é identificar filmes, séries, novelas ou minisséries baseado em descrições vagas ou parciais fornecidas pelo usuário.

Analise a descrição e tente identificar:
- Título exato do filme/série
- Ano de lançamento
- Sinopse completa
- Diretor
- Elenco principal
- Gênero
- Plataforma de streaming onde está disponível (Netflix, Disney+, Prime Video, HBO Max, Apple TV+, Globoplay)

Retorne um JSON com:
{
  "identified": boolean,
  "confidence": number (0-100),
  "title": string,
  "year": number,
  "synopsis": string,
  "director": string,
  "cast": string[],
  "genre": string,
  "platform": string,
  "reasoning": string (explicação de como você identificou)
}

Se não conseguir identificar com certeza, retorne as 3 opções mais prováveis em um array "possibleMatches".`

// Pipeline runs title identification requests.
type Pipeline struct {
	completer   understanding.Completer
	temperature float64
}

// NewPipeline creates a Pipeline using the given completion client.
// Temperature is typically the configured identify temperature, kept low
// to favor determinism over variety.
func NewPipeline(completer understanding.Completer, temperature float64) *Pipeline {
	return &Pipeline{
		completer:   completer,
		temperature: temperature,
	}
}

// Identify sends the description to the language model and returns its
// structured guess. One request, one response, no retries; errors are the
// caller's to handle.
func (p *Pipeline) Identify(ctx context.Context, description string) (*models.IdentificationGuess, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	content, err := p.completer.Complete(ctx, understanding.Request{
		Operation:   "identify",
		Instruction: identifyInstruction,
		Input:       description,
		Temperature: p.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("identification request failed: %w", err)
	}

	var guess models.IdentificationGuess
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &guess); err != nil {
		return nil, fmt.Errorf("identification response was not valid JSON: %w", err)
	}

	return &guess, nil
}
