package sieve

import "github.com/hupe1980/primecount/bitsieve"

// Slice sieves one window [start, start+length) and returns the number of
// unmarked odd values in it and the largest one (0 when the window holds
// none). start must be a positive multiple of 16 no smaller than the factor
// base bound, and base must cover every factor up to sqrt(start+length)
// rounded up; the slice plan guarantees both.
//
// The window is sieved over its 16-aligned extension so whole bytes can be
// marked; the padding values past length never reach the final scan.
func Slice(base *bitsieve.Sieve, start, length uint64) (count, last uint64) {
	aligned := (length + 15) &^ 15
	factorLimit := CeilSqrt(start + aligned)

	// Every composite in the window has a prime factor below factorLimit, so
	// marking from the first odd multiple at or above start is enough even for
	// multiples smaller than t*t.
	window := bitsieve.New(aligned)
	for t := uint64(3); t < factorLimit; t += 2 {
		if !base.IsPrime(t) {
			continue
		}
		for c := firstOddMultiple(t, start); c < aligned; c += 2 * t {
			window.MarkComposite(c)
		}
	}

	count, offset := Scan(window, 1, length)
	if count == 0 {
		return 0, 0
	}
	return count, start + offset
}

// firstOddMultiple returns the window offset of the smallest odd multiple of
// t at or above start. With start even and t odd the result is always an odd
// offset below 2t.
func firstOddMultiple(t, start uint64) uint64 {
	return ((start+t-1)/(2*t)*2+1)*t - start
}
