// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/listwarden/cliparse"
	"github.com/danielhkuo/listwarden/db"
	"github.com/danielhkuo/listwarden/models"
)

// exerciseBackend runs the contract every backend must satisfy.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	raw, err := b.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, raw, "fresh backend should have no document")

	first := []byte(`{"banned": {"emoji": "🚫", "items": ["Ñandú"]}}`)
	require.NoError(t, b.Write(ctx, first))
	raw, err = b.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, raw)

	second := []byte(`{"banned": {"emoji": "🚫", "items": []}}`)
	require.NoError(t, b.Write(ctx, second))
	raw, err = b.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, raw)
}

func TestFileBackend(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(filepath.Join(dir, DocumentFile))
	exerciseBackend(t, b)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DocumentFile, entries[0].Name())
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "lists.db"))
	require.NoError(t, err)

	b := NewSQLBackend(conn, DefaultDocumentKey)
	defer b.Close()
	exerciseBackend(t, b)

	// schema creation is idempotent
	require.NoError(t, db.CreateSchema(ctx, conn))

	var rows int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM list_document`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestRedisBackend(t *testing.T) {
	s := miniredis.RunT(t)

	b, err := NewRedisBackend(context.Background(), "redis://"+s.Addr())
	require.NoError(t, err)
	defer b.Close()
	exerciseBackend(t, b)

	stored, err := s.Get(DefaultRedisKey)
	require.NoError(t, err)
	assert.Contains(t, stored, `"items": []`)
}

func TestRedisBackendUnreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := NewRedisBackend(context.Background(), "redis://"+addr)
	assert.Error(t, err)
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBackend(ctx, cliparse.Config{StoreBackend: cliparse.BackendFile, DataDir: dir})
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, b)

	b, err = OpenBackend(ctx, cliparse.Config{StoreBackend: cliparse.BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	assert.IsType(t, &SQLBackend{}, b)
	require.NoError(t, b.Close())

	s := miniredis.RunT(t)
	b, err = OpenBackend(ctx, cliparse.Config{StoreBackend: cliparse.BackendRedis, RedisURL: "redis://" + s.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &RedisBackend{}, b)
	require.NoError(t, b.Close())

	_, err = OpenBackend(ctx, cliparse.Config{StoreBackend: "tape"})
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	b := NewFileBackend(filepath.Join(t.TempDir(), DocumentFile))

	seeded, err := Seed(ctx, b)
	require.NoError(t, err)
	assert.True(t, seeded)

	store, err := Open(ctx, b, models.DefaultCatalog())
	require.NoError(t, err)
	assert.Contains(t, store.Snapshot()["banned"].Items, "Aditya Lee Sin")
	assert.Contains(t, store.Snapshot()["limited"].Items, "Richie Vel'koz")

	// populated stores are left alone
	seeded, err = Seed(ctx, b)
	require.NoError(t, err)
	assert.False(t, seeded)
}
