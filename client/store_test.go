package client

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	type cart struct {
		Ids []uint `json:"ids"`
	}

	var out cart
	assert.False(t, store.Get(KeyCart, &out))

	require.NoError(t, store.Set(KeyCart, cart{Ids: []uint{1, 2, 3}}))
	require.True(t, store.Get(KeyCart, &out))
	assert.Equal(t, []uint{1, 2, 3}, out.Ids)

	store.Delete(KeyCart)
	assert.False(t, store.Get(KeyCart, &out))
	store.Delete(KeyCart)
}

func TestFileStoreDiscardsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCurrentTxn, map[string]int{"id": 1}))

	path := store.path(KeyCurrentTxn)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out map[string]int
	assert.False(t, store.Get(KeyCurrentTxn, &out), "corrupt entries read as absent")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "corrupt entries are removed")
}

func TestFileStoreKeyNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("Current Transaction!", 1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "current-transaction.json", entries[0].Name())
}

func TestMemoryStoreDiscardsCorruptEntries(t *testing.T) {
	store := NewMemoryStore()
	store.values["bad"] = []byte("{broken")

	var out int
	assert.False(t, store.Get("bad", &out))
	_, still := store.values["bad"]
	assert.False(t, still)
}
