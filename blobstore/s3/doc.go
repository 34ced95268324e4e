// Package s3 provides an Amazon S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	client, err := s3.NewClient(ctx, "eu-west-1")
//	store := s3.NewStore(client, "my-bucket", "dictionaries/")
//	reg, err := registry.Load(ctx, store)
//
// # Features
//
//   - Parallel ranged downloads for large models
//   - Multipart uploads for publishing models
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
