package blobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "a/one", []byte("first")))
	require.NoError(t, store.Put(ctx, "a/two", []byte("second")))
	require.NoError(t, store.Put(ctx, "b/three", []byte("third")))

	blob, err := store.Open(ctx, "a/one")
	require.NoError(t, err)
	require.Equal(t, int64(5), blob.Size())

	data, err := ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("first"), data)

	p := make([]byte, 3)
	n, err := blob.ReadAt(p, 2)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("rst"), p)
	require.NoError(t, blob.Close())

	// Put replaces.
	require.NoError(t, store.Put(ctx, "a/one", []byte("replaced")))
	blob, err = store.Open(ctx, "a/one")
	require.NoError(t, err)
	data, err = ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("replaced"), data)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "a/")
	require.NoError(t, err)
	require.Equal(t, []string{"a/one", "a/two"}, names)

	require.NoError(t, store.Delete(ctx, "a/one"))
	require.NoError(t, store.Delete(ctx, "a/one"), "deleting a missing blob is not an error")
	_, err = store.Open(ctx, "a/one")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestLocalStoreZeroCopyOpen(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "snap", []byte("mapped bytes")))

	blob, err := store.Open(ctx, "snap")
	require.NoError(t, err)
	defer blob.Close()

	m, ok := blob.(Mappable)
	require.True(t, ok, "local blobs should be mappable")
	data, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("mapped bytes"), data)
}

func TestMemoryStoreOpenIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "snap", []byte("v1")))

	blob, err := store.Open(ctx, "snap")
	require.NoError(t, err)
	defer blob.Close()

	require.NoError(t, store.Put(ctx, "snap", []byte("v2")))
	data, err := ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), data, "open handles must not see later writes")
}

func TestLocalStoreListMissingRoot(t *testing.T) {
	store := NewLocalStore(t.TempDir() + "/nonexistent")
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = store.Open(context.Background(), "snap")
	require.True(t, errors.Is(err, ErrNotFound))
}
