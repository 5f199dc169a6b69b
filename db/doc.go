// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQL connections and schema creation for the SQL-backed
list store.

# Opening

Open connects, pings and creates the schema in one step:

	conn, err := db.Open(ctx, db.DriverSQLite, "file:/app/data/lists.db")

The caller must import the driver (modernc.org/sqlite registers "sqlite",
github.com/lib/pq registers "postgres"); the liststore package does this.

# Schema Creation

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS.

# Tables

	list_document (
	    id         TEXT PRIMARY KEY,   -- document key, "lists" by default
	    payload    TEXT NOT NULL,      -- the JSON document, pretty-printed
	    updated_at TIMESTAMP NOT NULL
	)

The whole list state lives in one row. There are no per-item tables: the
document is read and written as a unit, the same as the file backend.
*/
package db
