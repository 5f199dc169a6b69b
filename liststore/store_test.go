// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package liststore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/listwarden/models"
)

// memBackend is an in-memory Backend that can be told to fail writes.
type memBackend struct {
	mu        sync.Mutex
	data      []byte
	writes    int
	failWrite error
}

func (b *memBackend) Read(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data, nil
}

func (b *memBackend) Write(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWrite != nil {
		return b.failWrite
	}
	b.data = append([]byte(nil), data...)
	b.writes++
	return nil
}

func (b *memBackend) Close() error { return nil }

func TestOpenReconcilesAndPersists(t *testing.T) {
	ctx := context.Background()
	backend := &memBackend{data: []byte(`{"Banned": ["Pak Kayle"], "retired": {"emoji": "x", "items": ["Gone"]}}`)}

	store, err := Open(ctx, backend, models.DefaultCatalog())
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.Len(t, snap, 3)
	assert.Equal(t, []string{"Pak Kayle"}, snap["banned"].Items)
	assert.Equal(t, "🚫", snap["banned"].Emoji)
	assert.NotContains(t, snap, "retired")

	// reconciled document was written back once
	assert.Equal(t, 1, backend.writes)
	assert.Equal(t, snap, Decode(backend.data, models.DefaultCatalog()))
}

func TestOpenMissingDocument(t *testing.T) {
	store, err := Open(context.Background(), &memBackend{}, models.DefaultCatalog())
	require.NoError(t, err)

	for _, name := range models.DefaultCatalog().Names() {
		entry, ok := store.Entry(name)
		require.True(t, ok)
		assert.Empty(t, entry.Items)
	}
}

func TestMutateSortsAndPersists(t *testing.T) {
	ctx := context.Background()
	backend := &memBackend{}
	store, err := Open(ctx, backend, models.DefaultCatalog())
	require.NoError(t, err)

	entry, err := store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "Item10", "item2", "Item1"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Item1", "item2", "Item10"}, entry.Items)
	persisted := Decode(backend.data, models.DefaultCatalog())
	assert.Equal(t, entry.Items, persisted["banned"].Items)
}

func TestMutateUnknownList(t *testing.T) {
	store, err := Open(context.Background(), &memBackend{}, models.DefaultCatalog())
	require.NoError(t, err)

	_, err = store.Mutate(context.Background(), "nope", func(items []string) ([]string, error) {
		return items, nil
	})
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestMutateErrorLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	backend := &memBackend{}
	store, err := Open(ctx, backend, models.DefaultCatalog())
	require.NoError(t, err)

	errStop := errors.New("stop")
	_, err = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "A"), errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.Empty(t, store.Snapshot()["banned"].Items)

	backend.failWrite = errors.New("disk full")
	_, err = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "A"), nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, store.Snapshot()["banned"].Items)
}

func TestMutateFnGetsCopy(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, &memBackend{}, models.DefaultCatalog())
	require.NoError(t, err)

	_, err = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "A", "B"), nil
	})
	require.NoError(t, err)

	_, _ = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		items[0] = "Clobbered"
		return nil, errors.New("abort")
	})
	assert.Equal(t, []string{"A", "B"}, store.Snapshot()["banned"].Items)
}

func TestConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	backend := &memBackend{}
	store, err := Open(ctx, backend, models.DefaultCatalog())
	require.NoError(t, err)

	numWriters := 25
	var wg sync.WaitGroup
	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Mutate(ctx, "limited", func(items []string) ([]string, error) {
				return append(items, fmt.Sprintf("Item%d", i)), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got := store.Snapshot()["limited"].Items
	assert.Len(t, got, numWriters)
	assert.Equal(t, "Item0", got[0])
	assert.Equal(t, fmt.Sprintf("Item%d", numWriters-1), got[numWriters-1])
	assert.Equal(t, got, Decode(backend.data, models.DefaultCatalog())["limited"].Items)
}

func TestSnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, &memBackend{}, models.DefaultCatalog())
	require.NoError(t, err)
	_, err = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "A"), nil
	})
	require.NoError(t, err)

	snap := store.Snapshot()
	snap["banned"].Items[0] = "Changed"
	assert.Equal(t, "A", store.Snapshot()["banned"].Items[0])
}

func TestStoreWithFileBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", DocumentFile)

	store, err := Open(ctx, NewFileBackend(path), models.DefaultCatalog())
	require.NoError(t, err)
	_, err = store.Mutate(ctx, "banned", func(items []string) ([]string, error) {
		return append(items, "Aditya Lee Sin"), nil
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Aditya Lee Sin")

	// a second process sees the same state
	again, err := Open(ctx, NewFileBackend(path), models.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), again.Snapshot())
}
