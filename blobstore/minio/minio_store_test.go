package minio

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ctxdict/blobstore"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	client, err := NewClient("localhost:9000", "minioadmin", "minioadmin", false)
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	bucket := "test-ctxdict"
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "en-fr.dict.bin", data))
	t.Cleanup(func() { _ = store.Delete(ctx, "en-fr.dict.bin") })

	blob, err := store.Open(ctx, "en-fr.dict.bin")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	got, err := blob.Bytes(ctx)
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Contains(t, names, "en-fr.dict.bin")

	require.NoError(t, store.Delete(ctx, "en-fr.dict.bin"))
	_, err = store.Open(ctx, "en-fr.dict.bin")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
