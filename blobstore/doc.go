// Package blobstore abstracts storage of sieve artifacts (result records and
// prime-set snapshots) behind a small whole-blob interface.
//
// Artifacts are written once and read whole, so the interface is Put/Get
// rather than streaming handles. Backends:
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local filesystem with atomic writes
//   - blobstore/s3: Amazon S3
//   - blobstore/minio: MinIO and other S3-compatible object stores
package blobstore
