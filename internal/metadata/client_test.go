// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/cinequery/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.MetadataConfig{
		Enabled: true,
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestSearchSuccess(t *testing.T) {
	var gotQuery, gotPlatform, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotPlatform = r.URL.Query().Get("platform")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":"ext-1","title":"Renascer","platform":"Globoplay","rating":8.3},
			{"id":"ext-2","title":"Terra e Paixão","platform":"Globoplay","rating":7.6}
		]}`))
	})

	items, err := client.Search(context.Background(), "novela rural", "Globoplay")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Search() returned %d items, want 2", len(items))
	}
	if items[0].ID != "ext-1" || items[0].Title != "Renascer" {
		t.Errorf("first item = %+v", items[0])
	}
	if gotQuery != "novela rural" {
		t.Errorf("query param = %q", gotQuery)
	}
	if gotPlatform != "Globoplay" {
		t.Errorf("platform param = %q", gotPlatform)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestSearchOmitsAllSentinel(t *testing.T) {
	var hasPlatform bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hasPlatform = r.URL.Query().Has("platform")
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	if _, err := client.Search(context.Background(), "qualquer", "all"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if hasPlatform {
		t.Error("platform param sent for the \"all\" sentinel")
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			if _, err := client.Search(context.Background(), "x", ""); err == nil {
				t.Fatal("Search() error = nil, want error")
			}
		})
	}
}

func TestCircuitBreakerPassThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"id":"ext-1","title":"Renascer"}]}`))
	})
	wrapped := NewCircuitBreakerClient(client)

	items, err := wrapped.Search(context.Background(), "novela", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Search() returned %d items, want 1", len(items))
	}
}
