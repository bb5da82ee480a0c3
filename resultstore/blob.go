package resultstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/codec"
)

// BlobStore implements Store on top of any blobstore.Store.
// One blob per n; zero-padded keys keep listings sorted by n.
type BlobStore struct {
	store blobstore.Store
	codec codec.Codec
}

// NewBlobStore creates a ledger over the given blob store.
// If c is nil, codec.Default is used.
func NewBlobStore(store blobstore.Store, c codec.Codec) *BlobStore {
	if c == nil {
		c = codec.Default
	}
	return &BlobStore{store: store, codec: c}
}

func blobName(n uint64) string {
	return fmt.Sprintf("results/%020d.json", n)
}

// Put records a result.
func (s *BlobStore) Put(ctx context.Context, rec Record) error {
	existing, err := s.Get(ctx, rec.N)
	switch {
	case errors.Is(err, ErrNotFound):
		// First record for this n.
	case err != nil:
		return err
	case existing.Count != rec.Count:
		return &ErrCountMismatch{N: rec.N, Existing: existing.Count, New: rec.Count}
	default:
		return nil
	}

	data, err := s.codec.Marshal(rec)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, blobName(rec.N), data)
}

// Get returns the stored result for n.
func (s *BlobStore) Get(ctx context.Context, n uint64) (Record, error) {
	data, err := s.store.Get(ctx, blobName(n))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var rec Record
	if err := s.codec.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
