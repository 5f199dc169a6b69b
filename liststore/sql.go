// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Row key of the document in the list_document table
const DefaultDocumentKey = "lists"

// SQLBackend keeps the document in one row of list_document. The same
// queries run on sqlite and postgres.
type SQLBackend struct {
	db  *sql.DB
	key string
}

// NewSQLBackend expects the schema to exist (see db.CreateSchema).
func NewSQLBackend(conn *sql.DB, key string) *SQLBackend {
	return &SQLBackend{db: conn, key: key}
}

func (b *SQLBackend) Read(ctx context.Context) ([]byte, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `
		SELECT payload FROM list_document WHERE id = $1
	`, b.key).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (b *SQLBackend) Write(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO list_document (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, b.key, string(data), time.Now().UTC())
	if err != nil {
		return err
	}

	storeWrites.WithLabelValues("sql").Inc()
	return nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
