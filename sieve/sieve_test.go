package sieve

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trialDivisionPrimes returns the set of primes below limit, computed the
// slow, obviously correct way.
func trialDivisionPrimes(limit uint64) *roaring.Bitmap {
	set := roaring.New()
	for v := uint64(2); v < limit; v++ {
		prime := true
		for d := uint64(2); d*d <= v; d++ {
			if v%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			set.Add(uint32(v))
		}
	}
	return set
}

func TestBuildBaseMatchesTrialDivision(t *testing.T) {
	const bound = 1 << 16

	base := BuildBase(bound)
	want := trialDivisionPrimes(bound)

	for v := uint64(3); v < bound; v += 2 {
		require.Equal(t, want.Contains(uint32(v)), base.IsPrime(v), "value %d", v)
	}

	count, lastPrime := Scan(base, 3, bound)

	// The oracle includes 2, which has no slot in the sieve.
	assert.Equal(t, want.GetCardinality(), count+1)
	assert.Equal(t, uint64(65521), lastPrime)
}

func TestBuildBaseSmallBound(t *testing.T) {
	base := BuildBase(16)

	assert.False(t, base.IsPrime(1))
	assert.True(t, base.IsPrime(3))
	assert.True(t, base.IsPrime(5))
	assert.True(t, base.IsPrime(7))
	assert.False(t, base.IsPrime(9))
	assert.True(t, base.IsPrime(11))
	assert.True(t, base.IsPrime(13))
	assert.False(t, base.IsPrime(15))
}

func TestScan(t *testing.T) {
	base := BuildBase(32)

	tests := []struct {
		name      string
		lo, hi    uint64
		wantCount uint64
		wantLast  uint64
	}{
		{name: "Below ten", lo: 3, hi: 10, wantCount: 3, wantLast: 7},
		{name: "Half range", lo: 3, hi: 16, wantCount: 5, wantLast: 13},
		{name: "Full range", lo: 3, hi: 32, wantCount: 10, wantLast: 31},
		{name: "Even low bound", lo: 4, hi: 12, wantCount: 3, wantLast: 11},
		{name: "Empty range", lo: 24, hi: 28, wantCount: 0, wantLast: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, last := Scan(base, tt.lo, tt.hi)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestCeilSqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 2, want: 2},
		{n: 3, want: 2},
		{n: 4, want: 2},
		{n: 5, want: 3},
		{n: 9, want: 3},
		{n: 10, want: 4},
		{n: 1 << 20, want: 1024},
		{n: 1<<20 + 1, want: 1025},
		{n: 1_000_000_000_000, want: 1_000_000},
		{n: 1_000_000_000_001, want: 1_000_001},
		{n: 1_000_000_000_000_000, want: 31_622_777},
	}

	for _, tt := range tests {
		got := CeilSqrt(tt.n)
		require.Equal(t, tt.want, got, "CeilSqrt(%d)", tt.n)
		if tt.n > 0 {
			require.GreaterOrEqual(t, got*got, tt.n)
			require.Less(t, (got-1)*(got-1), tt.n)
		}
	}
}

func TestFirstOddMultiple(t *testing.T) {
	tests := []struct {
		t, start uint64
		want     uint64
	}{
		// 3*349527 = 1048581, the first odd multiple of 3 past 2^20.
		{t: 3, start: 1 << 20, want: 5},
		// 5*209717 = 1048585.
		{t: 5, start: 1 << 20, want: 9},
		// 7*149797 = 1048579.
		{t: 7, start: 1 << 20, want: 3},
		// t divides start evenly: the next odd multiple is start+t.
		{t: 3, start: 48, want: 3},
	}

	for _, tt := range tests {
		got := firstOddMultiple(tt.t, tt.start)
		require.Equal(t, tt.want, got, "firstOddMultiple(%d, %d)", tt.t, tt.start)

		v := tt.start + got
		require.Equal(t, uint64(1), v%2, "result must be odd")
		require.Zero(t, v%tt.t, "result must be a multiple of %d", tt.t)
		require.Less(t, got, 2*tt.t, "no earlier odd multiple may exist in the window")
	}
}

func TestSliceMatchesFullSieve(t *testing.T) {
	const baseBound = 1 << 20

	base := BuildBase(baseBound)
	full := BuildBase(4 * baseBound)

	tests := []struct {
		name   string
		start  uint64
		length uint64
	}{
		{name: "Full window", start: baseBound, length: baseBound},
		{name: "Second window", start: 2 * baseBound, length: baseBound},
		{name: "Truncated window", start: baseBound, length: 1000},
		{name: "Unaligned length", start: 2 * baseBound, length: 999},
		{name: "Tiny window", start: 3 * baseBound, length: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantCount, wantLast := Scan(full, tt.start, tt.start+tt.length)

			count, last := Slice(base, tt.start, tt.length)

			assert.Equal(t, wantCount, count)
			assert.Equal(t, wantLast, last)
		})
	}
}

func TestSliceEmptyWindow(t *testing.T) {
	base := BuildBase(1 << 20)

	// 1048592..1048594 holds no primes: 1048593 = 3*349531.
	count, last := Slice(base, 1<<20+16, 2)

	assert.Zero(t, count)
	assert.Zero(t, last)
}

func TestSlicePartitionMatchesDirectCount(t *testing.T) {
	const (
		baseBound = 1 << 20
		n         = 3_000_000
	)

	base := BuildBase(baseBound)
	full := BuildBase((n + 15) &^ 15)

	wantCount, wantLast := Scan(full, 3, n)

	count, last := Scan(base, 3, baseBound)
	for start := uint64(baseBound); start < n; start += baseBound {
		length := uint64(baseBound)
		if start+length > n {
			length = n - start
		}
		sc, sl := Slice(base, start, length)
		count += sc
		if sl > last {
			last = sl
		}
	}

	assert.Equal(t, wantCount, count)
	assert.Equal(t, wantLast, last)
}
