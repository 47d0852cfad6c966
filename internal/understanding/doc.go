// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

/*
Package understanding provides the client for the language model service
that powers query analysis and title identification.

The client speaks the OpenAI-compatible chat completions protocol and always
requests JSON object responses. Calls are paced by a client-side rate
limiter and can be wrapped with a circuit breaker to shed load when the
upstream is failing.
*/
package understanding
