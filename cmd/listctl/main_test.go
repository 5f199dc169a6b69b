// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/listwarden/liststore"
	"github.com/danielhkuo/listwarden/models"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"listctl"}, args...))
	return out.String(), err
}

func TestSeedThenShow(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, "--data-dir", dir, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded")

	out, err = runApp(t, "--data-dir", dir, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "already has items")

	out, err = runApp(t, "--data-dir", dir, "show", "BANNED")
	require.NoError(t, err)
	assert.Contains(t, out, "🚫 Banned")
	assert.Contains(t, out, "   1. Aditya Lee Sin")
	assert.NotContains(t, out, "Semi-limited")
}

func TestShowUnknownList(t *testing.T) {
	_, err := runApp(t, "--data-dir", t.TempDir(), "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list")
}

func TestExportReconciles(t *testing.T) {
	dir := t.TempDir()
	raw := `{"Banned": ["Alpha"], "stale": {"emoji": "x", "items": ["Beta"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, liststore.DocumentFile), []byte(raw), 0o644))

	out, err := runApp(t, "--data-dir", dir, "export")
	require.NoError(t, err)

	doc := liststore.Decode([]byte(out), models.DefaultCatalog())
	assert.Equal(t, []string{"Alpha"}, doc["banned"].Items)
	assert.Contains(t, doc, "limited")
	assert.NotContains(t, doc, "stale")

	// export never writes back
	after, err := os.ReadFile(filepath.Join(dir, liststore.DocumentFile))
	require.NoError(t, err)
	assert.Equal(t, raw, string(after))
}

func TestReconcileWritesBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, liststore.DocumentFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"banned": ["Alpha"]}`), 0o644))

	out, err := runApp(t, "--data-dir", dir, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "reconciled 3 lists")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := liststore.Decode(after, models.DefaultCatalog())
	assert.Equal(t, "🚫", doc["banned"].Emoji)
	assert.Equal(t, []string{"Alpha"}, doc["banned"].Items)
	assert.Empty(t, doc["semi-limited"].Items)
}

func TestCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lists.yaml")
	yaml := "lists:\n  - name: Watch\n    emoji: \"👀\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	out, err := runApp(t, "--data-dir", dir, "--config", cfgPath, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "👀 Watch (0)")
	assert.NotContains(t, out, "Banned")
}

func TestUnknownBackend(t *testing.T) {
	_, err := runApp(t, "--store", "etcd", "show")
	require.Error(t, err)
}
