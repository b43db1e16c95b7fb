// Package bitsieve provides the dense bit-packed primality buffer used by the
// segmented sieve.
//
// Only odd values are represented: apart from 2, even numbers are never prime,
// so one byte covers 16 consecutive integers. For a value v the byte index is
// v>>4 and the bit index is (v>>1)&7; a set bit marks the value composite.
// The value 2 has no slot and is accounted for by callers.
//
// A Sieve is not safe for concurrent mutation. The segmented sieve relies on
// a stricter discipline instead of locks: the shared factor base is written
// once during construction and read-only afterwards, while every slice writes
// only its own transient sieve.
package bitsieve

// Sieve is a fixed-range, odd-only composite marker over [0, limit).
type Sieve struct {
	bits  []byte
	limit uint64
}

// New returns a zeroed Sieve covering the half-open range [0, limit), with
// every odd value initially unmarked.
func New(limit uint64) *Sieve {
	return &Sieve{
		bits:  make([]byte, Size(limit)),
		limit: limit,
	}
}

// Size returns the number of bytes backing a Sieve over [0, limit).
func Size(limit uint64) int64 {
	return int64((limit + 15) / 16)
}

// MarkComposite sets the composite bit for v. v must be odd and below Limit.
func (s *Sieve) MarkComposite(v uint64) {
	s.bits[v>>4] |= 1 << ((v >> 1) & 7)
}

// IsPrime reports whether the composite bit for v is still unset. v must be
// odd and below Limit; whoever builds the sieve decides what unset means,
// e.g. the factor base marks 1 composite by hand before sieving.
func (s *Sieve) IsPrime(v uint64) bool {
	return s.bits[v>>4]&(1<<((v>>1)&7)) == 0
}

// Limit returns the exclusive upper bound of representable values.
func (s *Sieve) Limit() uint64 {
	return s.limit
}
