package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mknzz/budget_tracker_app/internal/repositories/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "ledger:u1", []byte(`[]`)))

	value, ok, err := store.Get(ctx, "ledger:u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Delete(ctx, "ledger:u1"))
	_, ok, err = store.Get(ctx, "ledger:u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	original := []byte(`{"a":1}`)
	require.NoError(t, store.Set(ctx, "k", original))

	// Mutating the caller's slice must not reach the stored value.
	original[2] = 'x'

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), value)

	// Nor must mutating a read result.
	value[2] = 'y'
	again, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), again)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "budget-data.json")

	store, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "budgetGoal:u1", []byte(`"1500"`)))
	require.NoError(t, store.Set(ctx, "ledger:u1", []byte(`[{"id":1}]`)))

	reopened, err := kvstore.NewFileStore(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get(ctx, "budgetGoal:u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"1500"`, string(value))

	value, ok, err = reopened.Get(ctx, "ledger:u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(value))
}

func TestFileStore_DeletePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "budget-data.json")

	store, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "users", []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, "users"))

	reopened, err := kvstore.NewFileStore(path)
	require.NoError(t, err)
	_, ok, err := reopened.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_MissingAndEmptyFilesStartEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := kvstore.NewFileStore(filepath.Join(dir, "does-not-exist.json"))
	require.NoError(t, err)
	_, ok, err := store.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	store, err = kvstore.NewFileStore(empty)
	require.NoError(t, err)
	_, ok, err = store.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := kvstore.NewFileStore(path)
	assert.Error(t, err)
}
