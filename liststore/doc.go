// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package liststore owns the persisted list document.

# Document Format

One pretty-printed UTF-8 JSON object, one key per catalog list:

	{
	  "banned": {
	    "emoji": "🚫",
	    "items": ["Aditya Lee Sin", "Bendel Corki"]
	  }
	}

# Loading

Decode never fails. A missing or unreadable document is empty. Keys are
lower-cased and trimmed, legacy bare arrays become {emoji, items}, scalar
items are coerced to strings (null is "None", true is "True", 1e2 is
"100.0"), nested arrays and objects inside items are skipped, and
malformed entries are dropped:

	doc := liststore.Decode(raw, catalog)

Reconcile then forces the document to exactly the catalog:

	doc = liststore.Reconcile(doc, catalog)

Open does both and writes the result back once at startup.

# Store

Store is the single owner of the document at runtime:

	store, err := liststore.Open(ctx, backend, cfg.Catalog)
	snap := store.Snapshot()                // read-only copy
	entry, err := store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "Yoshi Talon"), nil
	})

Mutate holds a lock across fn, the natural sort and the backend write, so
concurrent mutations never lose updates. The new state is published only
after the write succeeds.

# Backends

  - FileBackend: DATA_DIR/lists.json, written via temp file and rename
  - SQLBackend: one row of list_document (sqlite or postgres)
  - RedisBackend: one key, listwarden:lists

OpenBackend picks one from cliparse.Config.

# Seeding

Seed writes the embedded dataset when NeedsSeed reports that the stored
document is absent or has no items in any list.
*/
package liststore
