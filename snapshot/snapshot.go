// Package snapshot persists prime sets as self-describing blobs.
//
// A snapshot records its compression scheme in the header, so the scheme may
// change between releases without breaking existing blobs. The payload is the
// portable roaring64 serialization of the set.
package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/codec"
	"github.com/hupe1980/sievego/primeset"
)

// magic identifies sievego prime-set snapshots.
var magic = [4]byte{'S', 'G', 'P', 'S'}

const formatVersion = 1

// ErrBadSnapshot is returned when a blob is not a valid snapshot.
var ErrBadSnapshot = errors.New("malformed snapshot")

// Options configures snapshot creation.
type Options struct {
	// Compression is the payload compression scheme. Default: zstd.
	Compression codec.Compression
}

// DefaultOptions holds the default snapshot options.
var DefaultOptions = Options{
	Compression: codec.CompressionZstd,
}

// header is the self-describing snapshot metadata. It is always encoded as
// standard JSON: the header must be readable before any format selection.
type header struct {
	Compression codec.Compression `json:"compression"`
	Cardinality uint64            `json:"cardinality"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Save writes the set to the store under the given name.
func Save(ctx context.Context, store blobstore.Store, name string, set *primeset.Set, optFns ...func(o *Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if !opts.Compression.Valid() {
		return fmt.Errorf("unknown compression %q", opts.Compression)
	}

	set.Optimize()

	var payload bytes.Buffer
	if _, err := set.WriteTo(&payload); err != nil {
		return err
	}

	compressed, err := codec.Compress(opts.Compression, payload.Bytes())
	if err != nil {
		return err
	}

	hdr, err := json.Marshal(header{
		Compression: opts.Compression,
		Cardinality: set.Cardinality(),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	var blob bytes.Buffer
	blob.Grow(len(magic) + 1 + 2 + len(hdr) + len(compressed))
	blob.Write(magic[:])
	blob.WriteByte(formatVersion)
	var hdrLen [2]byte
	binary.BigEndian.PutUint16(hdrLen[:], uint16(len(hdr)))
	blob.Write(hdrLen[:])
	blob.Write(hdr)
	blob.Write(compressed)

	return store.Put(ctx, name, blob.Bytes())
}

// Load reads a snapshot previously written with Save.
func Load(ctx context.Context, store blobstore.Store, name string) (*primeset.Set, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(data) < len(magic)+3 || !bytes.Equal(data[:4], magic[:]) {
		return nil, ErrBadSnapshot
	}
	if version := data[4]; version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, version)
	}

	hdrLen := int(binary.BigEndian.Uint16(data[5:7]))
	if len(data) < 7+hdrLen {
		return nil, ErrBadSnapshot
	}

	var hdr header
	if err := json.Unmarshal(data[7:7+hdrLen], &hdr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if !hdr.Compression.Valid() {
		return nil, fmt.Errorf("%w: unknown compression %q", ErrBadSnapshot, hdr.Compression)
	}

	payload, err := codec.Decompress(hdr.Compression, data[7+hdrLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	set := primeset.New()
	if _, err := set.ReadFrom(bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if set.Cardinality() != hdr.Cardinality {
		return nil, fmt.Errorf("%w: cardinality mismatch", ErrBadSnapshot)
	}

	return set, nil
}
