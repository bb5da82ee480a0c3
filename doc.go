// Package sievego provides an embedded prime-counting engine for Go, built
// on a segmented Sieve of Eratosthenes.
//
// # Quick Start
//
// Sequential count:
//
//	counter, _ := sievego.New()
//	res, _ := counter.Count(ctx, 1_000_000)
//	fmt.Println(res.Count) // 78498
//
// Parallel count over 8 workers:
//
//	counter, _ := sievego.NewBuilder().
//	    Workers(8).
//	    SegmentWidth(1 << 20).
//	    Build()
//	res, _ := counter.Count(ctx, 100_000_000)
//
// # How it works
//
// The engine first sieves the base primes up to floor(sqrt(n)), then
// partitions [3, n] into fixed-width windows holding only odd candidates.
// Windows are independent units of work: in parallel mode a fixed pool of
// workers pulls windows from a shared queue (dynamic load balancing), each
// producing a private partial count. Partials are summed after all workers
// finish, so the result is bit-identical to the sequential count for any
// worker count.
//
// Memory use is O(sqrt(n)) for the base primes plus one fixed-size buffer per
// worker, independent of n.
//
// # Persistence
//
// Counts can be recorded in a result ledger (local directory, S3, MinIO or
// DynamoDB via the resultstore and blobstore packages), and full prime sets
// can be saved as compressed snapshots via the snapshot package:
//
//	store := blobstore.NewLocalStore("./cache")
//	ledger := resultstore.NewBlobStore(store, nil)
//	rec, hit, _ := counter.CountCached(ctx, ledger, 1_000_000)
package sievego
