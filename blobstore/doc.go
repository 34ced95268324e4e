// Package blobstore provides storage abstraction for dictionary model files.
//
// Store is the interface used to list, fetch and publish models (*.dict.bin
// and packaged variants). Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, models are memory mapped
//   - MemoryStore: in-memory map, for tests
//   - minio.Store: MinIO and other S3-compatible storage
//   - s3.Store: Amazon S3 with parallel ranged downloads
//
// A Blob hands out the complete model through Bytes. For LocalStore the
// slice is the mapping itself and is only valid until the Blob is closed;
// remote stores download into a fresh slice.
package blobstore
