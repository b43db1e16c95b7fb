// Package primecount counts primes below a bound with a segmented, bit-packed
// sieve of Eratosthenes running on a fixed worker pool.
//
// # Quick Start
//
//	ctx := context.Background()
//	res, _ := primecount.Count(ctx, 1_000_000_000)
//	fmt.Println(res.Count, res.LastPrime) // 50847534 999999937
//
// Runs accept options for the pool size, logging, progress output and a
// memory cap:
//
//	res, _ := primecount.Count(ctx, 1_000_000_000_000,
//	    primecount.WithWorkers(8),
//	    primecount.WithProgressWriter(os.Stderr),
//	    primecount.WithMemoryLimit(64<<20),
//	)
//
// # Algorithm
//
// The sieve stores only odd values, 16 numbers per byte, with set bits
// marking composites. A factor base covering at least ceil(sqrt(n)) is sieved
// first; the rest of the range is split into base-sized windows that workers
// sieve independently against the shared read-only base. Marking inside a
// window starts at the first odd multiple of each base prime, so a window
// needs no knowledge of its predecessors.
//
// # Concurrency
//
// Slice jobs run on a fixed pool; submission blocks until a worker is free,
// so at most workers+1 window buffers exist at any time (the final slice runs
// on the submitting goroutine). Totals merge through a sum and a
// max-reduction under a mutex, making the result independent of slice
// completion order. WithWorkers(0) disables threading entirely.
//
// # Memory
//
// Buffer sizes are known up front: the base takes ceil(bound/16) bytes and
// each transient window at most as much. WithMemoryLimit throttles slice
// submission against a hard cap; runs whose minimum footprint cannot fit are
// rejected before any sieving starts.
//
// # Supported Range
//
// Bounds run from 10 up to a quadrillion (1e15). With the base pinned to
// ceil(sqrt(n)) above 10^12, even the largest run keeps roughly 32 million
// values in the base buffer, about 2 MiB, and needs as much again for each
// concurrent window.
package primecount
