// Package objectstore provides an abstraction layer for S3 compatible object
// storage.
//
// It wraps the MinIO Go client behind the Client interface so that callers
// (the transfer journal in particular) can be tested against the mocks in
// core/objectstore/mocks. Both AWS S3 and self-hosted MinIO are supported.
//
// # Usage
//
//	client, err := objectstore.NewClient(cfg.Storage)
//	err = objectstore.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package objectstore
