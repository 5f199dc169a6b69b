// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/db"
)

// Backend stores the serialized document. Read returns (nil, nil) when no
// document has been written yet.
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// File name of the document inside the data directory
const DocumentFile = "lists.json"

// OpenBackend builds the backend selected by cfg.StoreBackend.
func OpenBackend(ctx context.Context, cfg cliparse.Config) (Backend, error) {
	switch cfg.StoreBackend {
	case cliparse.BackendFile, "":
		return NewFileBackend(filepath.Join(cfg.DataDir, DocumentFile)), nil
	case cliparse.BackendSQLite:
		url := cfg.DatabaseURL
		if url == "" {
			url = "file:" + filepath.Join(cfg.DataDir, "lists.db")
		}
		conn, err := db.Open(ctx, db.DriverSQLite, url)
		if err != nil {
			return nil, err
		}
		return NewSQLBackend(conn, DefaultDocumentKey), nil
	case cliparse.BackendPostgres:
		conn, err := db.Open(ctx, db.DriverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewSQLBackend(conn, DefaultDocumentKey), nil
	case cliparse.BackendRedis:
		return NewRedisBackend(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
