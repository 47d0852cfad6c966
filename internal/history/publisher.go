// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package history

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinequery/internal/logging"
	"github.com/tomtom215/cinequery/internal/metrics"
)

// NewBus creates the in-process Watermill pub/sub used for history events.
func NewBus() *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 64,
		},
		logging.NewWatermillAdapter(),
	)
}

// Publisher emits history events onto the message bus. Publishing is
// fire-and-forget from the caller's perspective: failures are logged and
// counted, never propagated to the request path.
type Publisher struct {
	pub message.Publisher
}

// NewPublisher creates a Publisher over the given Watermill publisher.
func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{pub: pub}
}

// SearchCompleted publishes a search record. The record's ID and timestamp
// are filled in if unset.
func (p *Publisher) SearchCompleted(rec SearchRecord) {
	stampSearch(&rec)
	p.publish(TopicSearchCompleted, rec)
}

// IdentificationCompleted publishes an identification record. The record's
// ID and timestamp are filled in if unset.
func (p *Publisher) IdentificationCompleted(rec IdentificationRecord) {
	stampIdentification(&rec)
	p.publish(TopicIdentificationCompleted, rec)
}

func (p *Publisher) publish(topic string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Str("topic", topic).Msg("Failed to encode history event")
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := p.pub.Publish(topic, msg); err != nil {
		logging.Warn().Err(err).Str("topic", topic).Msg("Failed to publish history event")
		return
	}
	metrics.HistoryEventsPublished.WithLabelValues(topic).Inc()
}

func stampSearch(rec *SearchRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}

func stampIdentification(rec *IdentificationRecord) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}
