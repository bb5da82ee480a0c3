// Package sieve implements a segmented Sieve of Eratosthenes for counting
// primes in [2, n].
//
// The computation has two phases. First the base primes up to floor(sqrt(n))
// are produced with an unsegmented sieve. Then [3, n] is partitioned into
// fixed-width windows; each window is sieved independently against the shared
// immutable base primes using an odd-only bitset buffer, and the per-window
// survivor counts are summed (plus one for the prime 2).
//
// Windows are independent, so the parallel mode distributes them dynamically
// across a fixed pool of workers. Each worker owns its buffer and accumulates
// a private partial sum; partials are combined only after all workers finish.
// The result is bit-identical to the sequential count for any worker count.
package sieve
