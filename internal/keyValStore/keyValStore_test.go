package keyValStore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) *KeyValStore {
	t.Helper()
	kv, err := NewKeyValStore(StoreConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestReadMissingKey(t *testing.T) {
	t.Parallel()
	kv := newMemoryStore(t)
	v, found, err := kv.Read([]byte("nope"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)
}

func TestWriteBatchAndRead(t *testing.T) { // A
	t.Parallel()
	kv := newMemoryStore(t)
	require.NoError(t, kv.WriteBatch([][2][]byte{
		{[]byte("account/a"), {1}},
		{[]byte("account/b"), {0}},
		{[]byte("other/c"), {1}},
	}))

	v, found, err := kv.Read([]byte("account/a"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte{1}, v)

	items, err := kv.GetItemsWithPrefix([]byte("account/"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "account/a", string(items[0][0]))
	assert.Equal(t, "account/b", string(items[1][0]))

	reads, writes := kv.Counters()
	assert.Equal(t, uint64(3), writes)
	assert.Equal(t, uint64(2), reads)
}

func TestWriteBatchOverwrites(t *testing.T) {
	t.Parallel()
	kv := newMemoryStore(t)
	require.NoError(t, kv.WriteBatch([][2][]byte{{[]byte("k"), {1}}}))
	require.NoError(t, kv.WriteBatch([][2][]byte{{[]byte("k"), {0}}}))
	v, _, err := kv.Read([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, v)
}

func TestPersistsAcrossReopen(t *testing.T) { // A
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "db")
	kv, err := NewKeyValStore(StoreConfig{Path: dir})
	require.NoError(t, err)
	require.NoError(t, kv.WriteBatch([][2][]byte{{[]byte("k"), []byte("v")}}))
	require.NoError(t, kv.Close())

	kv, err = NewKeyValStore(StoreConfig{Path: dir})
	require.NoError(t, err)
	defer kv.Close()
	v, found, err := kv.Read([]byte("k"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), v)
}

func TestClosedStore(t *testing.T) {
	t.Parallel()
	kv, err := NewKeyValStore(StoreConfig{InMemory: true})
	require.NoError(t, err)
	require.NoError(t, kv.Close())
	require.NoError(t, kv.Close())

	_, _, err = kv.Read([]byte("k"))
	assert.True(t, errors.Is(err, ErrClosed))
	assert.True(t, errors.Is(kv.WriteBatch(nil), ErrClosed))
}

func TestMinimumFreeSpaceUnreachable(t *testing.T) {
	t.Parallel()
	_, err := NewKeyValStore(StoreConfig{
		Path:             t.TempDir(),
		MinimumFreeSpace: 1 << 40,
	})
	require.Error(t, err)
}
