// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package history

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

func publishRaw(t *testing.T, pub message.Publisher, topic string, payload []byte) {
	t.Helper()
	if err := pub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
}

func TestPublishAndRecord(t *testing.T) {
	store := newTestStore(t)
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	recorder := NewRecorder(bus, store)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = recorder.Serve(ctx)
	}()

	// Give the recorder time to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)

	pub := NewPublisher(bus)
	pub.SearchCompleted(SearchRecord{Query: "novela rural", Platform: "Globoplay"})
	pub.IdentificationCompleted(IdentificationRecord{UserID: "user-1", Title: "Pantanal"})

	// The recorder writes asynchronously; poll until both records land.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		searches, err := store.ListSearches(10)
		if err != nil {
			t.Fatalf("ListSearches() error = %v", err)
		}
		idents, err := store.ListIdentifications(10)
		if err != nil {
			t.Fatalf("ListIdentifications() error = %v", err)
		}
		if len(searches) == 1 && len(idents) == 1 {
			if searches[0].ID == "" || searches[0].CreatedAt.IsZero() {
				t.Errorf("published record missing stamped ID/timestamp: %+v", searches[0])
			}
			if searches[0].Query != "novela rural" {
				t.Errorf("search record = %+v", searches[0])
			}
			if idents[0].Title != "Pantanal" {
				t.Errorf("identification record = %+v", idents[0])
			}
			cancel()
			<-done
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("records were not written before the deadline")
}

func TestRecorderSkipsMalformedEvents(t *testing.T) {
	store := newTestStore(t)
	bus := NewBus()
	t.Cleanup(func() { _ = bus.Close() })

	recorder := NewRecorder(bus, store)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() { _ = recorder.Serve(ctx) }()
	time.Sleep(50 * time.Millisecond)

	// Raw publish of a payload that is not a SearchRecord.
	publishRaw(t, bus, TopicSearchCompleted, []byte("not json"))

	pub := NewPublisher(bus)
	pub.SearchCompleted(SearchRecord{Query: "depois do evento ruim"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		searches, err := store.ListSearches(10)
		if err != nil {
			t.Fatalf("ListSearches() error = %v", err)
		}
		if len(searches) == 1 {
			// The malformed event was dropped, the valid one landed.
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("valid record was not written after a malformed event")
}
