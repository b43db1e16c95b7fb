// Package sieve implements the segmented sieve of Eratosthenes on top of the
// odd-only bit containers from package bitsieve.
//
// The factor base is built once over [0, bound) and shared read-only by every
// slice; each slice then sieves its own transient window, using the base as
// its factor table.
package sieve

import (
	"math"

	"github.com/hupe1980/primecount/bitsieve"
)

// BuildBase constructs the factor-base sieve over [0, bound). bound must be a
// multiple of 16 so the highest byte is fully populated.
//
// Marking starts at t*t for each surviving odd t: any composite below t*t has
// a smaller prime factor and was already marked when that factor was sieved.
func BuildBase(bound uint64) *bitsieve.Sieve {
	s := bitsieve.New(bound)
	s.MarkComposite(1) // 1 is not prime

	for t := uint64(3); t*t < bound; t += 2 {
		if !s.IsPrime(t) {
			continue
		}
		for c := t * t; c < bound; c += 2 * t {
			s.MarkComposite(c)
		}
	}

	return s
}

// Scan counts the unmarked odd values in [lo, hi) and returns the count
// together with the largest such value. last is 0 when the range holds none.
func Scan(s *bitsieve.Sieve, lo, hi uint64) (count, last uint64) {
	if lo%2 == 0 {
		lo++
	}
	for v := lo; v < hi; v += 2 {
		if s.IsPrime(v) {
			count++
			last = v
		}
	}
	return count, last
}

// CeilSqrt returns the smallest r with r*r >= n.
func CeilSqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for (r-1)*(r-1) >= n {
		r--
	}
	return r
}
