// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package history

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinequery/internal/config"
)

// Key prefixes for BadgerDB storage. Keys embed a zero-padded timestamp so
// lexicographic order is chronological order; listings iterate in reverse
// for newest-first.
const (
	searchKeyPrefix         = "search:"
	identificationKeyPrefix = "ident:"
)

// Store persists history records in BadgerDB.
type Store struct {
	db *badger.DB
}

// OpenStore opens a BadgerDB-backed history store from configuration.
func OpenStore(cfg *config.HistoryConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already-open BadgerDB.
func NewStore(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendSearch stores a completed search record.
func (s *Store) AppendSearch(rec SearchRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal search record: %w", err)
	}

	key := recordKey(searchKeyPrefix, rec.CreatedAt.UnixNano(), rec.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// AppendIdentification stores a completed identification record.
func (s *Store) AppendIdentification(rec IdentificationRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal identification record: %w", err)
	}

	key := recordKey(identificationKeyPrefix, rec.CreatedAt.UnixNano(), rec.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// ListSearches returns up to limit search records, newest first.
func (s *Store) ListSearches(limit int) ([]SearchRecord, error) {
	var records []SearchRecord
	err := s.listReverse(searchKeyPrefix, limit, func(val []byte) error {
		var rec SearchRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// ListIdentifications returns up to limit identification records, newest
// first.
func (s *Store) ListIdentifications(limit int) ([]IdentificationRecord, error) {
	var records []IdentificationRecord
	err := s.listReverse(identificationKeyPrefix, limit, func(val []byte) error {
		var rec IdentificationRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	return records, err
}

// listReverse iterates keys under prefix in reverse lexicographic order,
// invoking fn on each value until limit records are consumed.
func (s *Store) listReverse(prefix string, limit int, fn func(val []byte) error) error {
	if limit <= 0 {
		return nil
	}

	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the last possible key under the prefix.
		seek := append([]byte(prefix), 0xFF)
		count := 0
		for it.Seek(seek); it.ValidForPrefix([]byte(prefix)) && count < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				return fn(val)
			})
			if err != nil {
				return err
			}
			count++
		}
		return nil
	})
}

// recordKey builds a prefix:timestamp:id key with the timestamp zero-padded
// to 19 digits so lexicographic and chronological order agree.
func recordKey(prefix string, unixNano int64, id string) []byte {
	return []byte(prefix + fmt.Sprintf("%019d", unixNano) + ":" + id)
}
