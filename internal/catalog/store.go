// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package catalog

import (
	"strings"

	"github.com/tomtom215/cinequery/internal/models"
)

// Store provides read access to the content catalog.
type Store interface {
	// All returns every item in the catalog.
	All() []models.ContentItem

	// ByPlatform returns items whose platform matches the given name
	// (case-insensitive). An empty platform returns every item.
	ByPlatform(platform string) []models.ContentItem
}

// MemoryStore is an immutable in-memory Store.
type MemoryStore struct {
	items []models.ContentItem
}

// Compile-time interface check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore holding a copy of the given items.
func NewMemoryStore(items []models.ContentItem) *MemoryStore {
	copied := make([]models.ContentItem, len(items))
	copy(copied, items)
	return &MemoryStore{items: copied}
}

// NewSeededStore creates a MemoryStore populated with the built-in catalog.
func NewSeededStore() *MemoryStore {
	return NewMemoryStore(seedItems())
}

// All returns every catalog item. Callers receive a fresh slice header over
// shared backing data and must not mutate the elements.
func (s *MemoryStore) All() []models.ContentItem {
	out := make([]models.ContentItem, len(s.items))
	copy(out, s.items)
	return out
}

// ByPlatform returns items for a single platform, preserving catalog order.
func (s *MemoryStore) ByPlatform(platform string) []models.ContentItem {
	if platform == "" {
		return s.All()
	}
	var out []models.ContentItem
	for _, item := range s.items {
		if strings.EqualFold(item.Platform, platform) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of items in the catalog.
func (s *MemoryStore) Len() int {
	return len(s.items)
}
