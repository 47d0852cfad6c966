// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package models defines the shared data types used across Cinequery:
// catalog entities, extracted query intents, identification results, and
// the standardized API response envelope.
//
// The types here are plain data carriers. Catalog items are immutable once
// loaded; intents and identification guesses are ephemeral per-request
// values that are never cached or shared between requests.
package models
