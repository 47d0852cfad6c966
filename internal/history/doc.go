// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

/*
Package history records completed searches and identifications.

Recording is decoupled from request handling through a Watermill message
bus: handlers publish events and return immediately, a supervised recorder
consumes them and writes to a BadgerDB store. History failures never fail
a user request; they are logged and counted.
*/
package history
