// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

// Package catalog provides the content catalog used by search and
// identification. The catalog is loaded once at startup and is immutable
// for the lifetime of the process, so reads need no locking.
package catalog
