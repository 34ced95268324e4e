package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/internal/mmap"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = store.Open(ctx, "missing.dict.bin")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "b.dict.bin", []byte("second")))
	require.NoError(t, store.Put(ctx, "a.dict.bin", []byte("first")))
	require.NoError(t, store.Put(ctx, "notes.txt", []byte("x")))

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a.dict.bin", "b.dict.bin", "notes.txt"}, names)

	names, err = store.List(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, []string{"b.dict.bin"}, names)

	blob, err := store.Open(ctx, "a.dict.bin")
	require.NoError(t, err)
	require.Equal(t, int64(5), blob.Size())
	data, err := blob.Bytes(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", string(data))
	require.NoError(t, blob.Close())

	// Put replaces.
	require.NoError(t, store.Put(ctx, "a.dict.bin", []byte("replaced")))
	blob, err = store.Open(ctx, "a.dict.bin")
	require.NoError(t, err)
	data, err = blob.Bytes(ctx)
	require.NoError(t, err)
	require.Equal(t, "replaced", string(data))
	require.NoError(t, blob.Close())
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "x", data))
	data[0] = 'z'

	blob, err := store.Open(ctx, "x")
	require.NoError(t, err)
	got, err := blob.Bytes(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))

	require.NoError(t, store.Delete(ctx, "x"))
	_, err = store.Open(ctx, "x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_MissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "nope"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestLocalStore_SkipsDirectoriesAndTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.dict.bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".a.dict.bin.tmp123"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.dict.bin"), []byte("x"), 0o600))

	store := NewLocalStore(dir).WithAccessPattern(mmap.AccessSequential)
	require.Equal(t, dir, store.Root())

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"a.dict.bin"}, names)
}

func TestLocalStore_BytesAfterClose(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())
	require.NoError(t, store.Put(ctx, "a", []byte("data")))

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, blob.Close())

	_, err = blob.Bytes(ctx)
	require.ErrorIs(t, err, mmap.ErrClosed)
}
