// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for fetching
// and enumerating asset bundles. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
// Bundles are written by the asset pipeline; the inspector only reads.
//
// # Operations
//
//   - BucketExists: Verifies access to the bundle bucket.
//   - GetObject: Retrieves a bundle as a stream.
//   - ListObjects: Lists bundle objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "bundles")
package storage
