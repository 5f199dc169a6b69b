// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/items"
	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/models"
)

// Test identities
const (
	OwnerID = "250856281722716161"
	BotID   = "999999999999999999"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Token:              "test-token",
		OwnerID:            OwnerID,
		Prefix:             cliparse.DefaultPrefix,
		DataDir:            "",
		StoreBackend:       cliparse.BackendFile,
		PollDuration:       cliparse.DefaultPollDuration,
		HTTPAddr:           cliparse.DefaultHTTPAddr,
		LogLevel:           "info",
		LogFormat:          "text",
		Catalog:            models.DefaultCatalog(),
		KickWhitelistUsers: []string{OwnerID},
	}
}

// SetupTestStore opens a file-backed store in a temp directory, seeded
// with lists in natural order. Lists not in the catalog are dropped as on
// any startup.
func SetupTestStore(t *testing.T, lists map[string][]string) *liststore.Store {
	t.Helper()

	backend := liststore.NewFileBackend(filepath.Join(t.TempDir(), liststore.DocumentFile))
	catalog := models.DefaultCatalog()

	if len(lists) > 0 {
		doc := models.Document{}
		for name, list := range lists {
			sorted := slices.Clone(list)
			items.SortNatural(sorted)
			doc[name] = models.ListEntry{Emoji: catalog.EmojiFor(name), Items: sorted}
		}
		raw, err := liststore.Encode(doc)
		if err != nil {
			t.Fatalf("Failed to encode test document: %v", err)
		}
		if err := backend.Write(context.Background(), raw); err != nil {
			t.Fatalf("Failed to write test document: %v", err)
		}
	}

	store, err := liststore.Open(context.Background(), backend, catalog)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// Items returns the current items of one list, failing the test if the
// list does not exist.
func Items(t *testing.T, store *liststore.Store, name string) []string {
	t.Helper()

	entry, ok := store.Entry(name)
	if !ok {
		t.Fatalf("list %q not found", name)
	}
	return entry.Items
}

// Instant is a poll sleep that returns immediately after running fn, which
// usually casts votes on the poll message.
func Instant(fn func()) func(ctx context.Context, d time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		if fn != nil {
			fn()
		}
		return ctx.Err()
	}
}
