// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/listwarden/items"
	"github.com/danielhkuo/listwarden/models"
)

var ErrUnknownList = errors.New("unknown list")

// Store owns the list document for the life of the process. Reads take a
// snapshot; every mutation runs under one lock together with its write, so
// no two mutations interleave.
type Store struct {
	backend Backend
	catalog models.Catalog

	// mu serializes Mutate calls, including the backend write
	mu sync.Mutex

	// rw guards doc, which is replaced wholesale after each write
	rw  sync.RWMutex
	doc models.Document
}

// Open loads the document from backend, reconciles it to the catalog and
// writes the result back once.
func Open(ctx context.Context, backend Backend, catalog models.Catalog) (*Store, error) {
	s := &Store{backend: backend, catalog: catalog}

	loaded, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc := Reconcile(loaded, catalog)
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.doc = doc

	slog.Info("list store ready", "lists", len(doc))
	return s, nil
}

// Load reads and decodes the persisted document. Backend errors are
// returned; unreadable content decodes to an empty document.
func (s *Store) Load(ctx context.Context) (models.Document, error) {
	raw, err := s.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read list document: %w", err)
	}
	return Decode(raw, s.catalog), nil
}

// Save encodes and writes doc in full.
func (s *Store) Save(ctx context.Context, doc models.Document) error {
	raw, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := s.backend.Write(ctx, raw); err != nil {
		storeWriteErrors.Inc()
		return fmt.Errorf("failed to write list document: %w", err)
	}
	return nil
}

func (s *Store) Catalog() models.Catalog {
	return s.catalog
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() models.Document {
	s.rw.RLock()
	defer s.rw.RUnlock()
	return s.doc.Clone()
}

// Entry returns a copy of one list.
func (s *Store) Entry(name string) (models.ListEntry, bool) {
	s.rw.RLock()
	defer s.rw.RUnlock()
	entry, ok := s.doc[name]
	if !ok {
		return models.ListEntry{}, false
	}
	return entry.Clone(), true
}

// Mutate hands fn a copy of the named list's items. The items fn returns
// are natural-sorted and the whole document is persisted before the new
// state becomes visible. If fn or the write fails, nothing changes.
func (s *Store) Mutate(ctx context.Context, name string, fn func(items []string) ([]string, error)) (models.ListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.Entry(name)
	if !ok {
		return models.ListEntry{}, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}

	next, err := fn(current.Items)
	if err != nil {
		return models.ListEntry{}, err
	}
	if next == nil {
		next = []string{}
	}
	items.SortNatural(next)

	doc := s.Snapshot()
	entry := models.ListEntry{Emoji: current.Emoji, Items: next}
	doc[name] = entry

	if err := s.Save(ctx, doc); err != nil {
		return models.ListEntry{}, err
	}

	s.rw.Lock()
	s.doc = doc
	s.rw.Unlock()

	return entry.Clone(), nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
