// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package history

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
)

// Recorder consumes history events from the message bus and writes them to
// the store. It runs as a supervised service: Serve blocks until the
// context is cancelled and returns nil on clean shutdown.
//
// Write failures are acknowledged anyway. History is best-effort and a
// poison message must not wedge the bus.
type Recorder struct {
	sub   message.Subscriber
	store *Store
}

// NewRecorder creates a Recorder consuming from sub and writing to store.
func NewRecorder(sub message.Subscriber, store *Store) *Recorder {
	return &Recorder{sub: sub, store: store}
}

// Serve implements suture.Service.
func (r *Recorder) Serve(ctx context.Context) error {
	searches, err := r.sub.Subscribe(ctx, TopicSearchCompleted)
	if err != nil {
		return err
	}
	identifications, err := r.sub.Subscribe(ctx, TopicIdentificationCompleted)
	if err != nil {
		return err
	}

	logging.Info().Msg("History recorder started")

	for {
		select {
		case <-ctx.Done():
			logging.Info().Msg("History recorder stopping")
			return ctx.Err()
		case msg, ok := <-searches:
			if !ok {
				return nil
			}
			r.handleSearch(msg)
		case msg, ok := <-identifications:
			if !ok {
				return nil
			}
			r.handleIdentification(msg)
		}
	}
}

func (r *Recorder) handleSearch(msg *message.Message) {
	defer msg.Ack()

	var rec SearchRecord
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		logging.Error().Err(err).Str("message_id", msg.UUID).Msg("Malformed search history event")
		metrics.HistoryRecordsWritten.WithLabelValues("search", "failure").Inc()
		return
	}

	if err := r.store.AppendSearch(rec); err != nil {
		logging.Warn().Err(err).Str("record_id", rec.ID).Msg("Failed to write search history record")
		metrics.HistoryRecordsWritten.WithLabelValues("search", "failure").Inc()
		return
	}
	metrics.HistoryRecordsWritten.WithLabelValues("search", "success").Inc()
}

func (r *Recorder) handleIdentification(msg *message.Message) {
	defer msg.Ack()

	var rec IdentificationRecord
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		logging.Error().Err(err).Str("message_id", msg.UUID).Msg("Malformed identification history event")
		metrics.HistoryRecordsWritten.WithLabelValues("identification", "failure").Inc()
		return
	}

	if err := r.store.AppendIdentification(rec); err != nil {
		logging.Warn().Err(err).Str("record_id", rec.ID).Msg("Failed to write identification history record")
		metrics.HistoryRecordsWritten.WithLabelValues("identification", "failure").Inc()
		return
	}
	metrics.HistoryRecordsWritten.WithLabelValues("identification", "success").Inc()
}

// String names the service in supervisor logs.
func (r *Recorder) String() string {
	return "history-recorder"
}
