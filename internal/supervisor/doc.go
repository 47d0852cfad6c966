// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package supervisor builds the suture supervision tree that runs the
// long-lived components: the HTTP server and the history recorder. Each
// layer has its own child supervisor so a crash-looping recorder cannot
// take down request serving.
package supervisor
