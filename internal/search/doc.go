// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

/*
Package search implements the query-to-results pipeline: intent extraction,
relevance scoring over the catalog, and result assembly with fallback.

The scorer is a pure function over (item, raw query, intent) so it can be
tuned and tested without network access. The assembler guarantees a bounded,
deduplicated, relevance-ordered result set and never returns a hard empty
response from the primary path.
*/
package search
