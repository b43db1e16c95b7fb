package primecount

import "github.com/hupe1980/primecount/sieve"

// Bounds accepted by NewPlan.
const (
	// MinValue is the smallest supported bound.
	MinValue = 10

	// MaxValue is the largest supported bound, a quadrillion.
	MaxValue = 1_000_000_000_000_000
)

const (
	// fixedBaseBound is the factor-base size for moderate bounds: large enough
	// to cover sqrt of everything up to sqrtBaseThreshold, small enough that a
	// transient window buffer is only 64 KiB.
	fixedBaseBound = 1 << 20

	// sqrtBaseThreshold is the bound above which the base grows with
	// ceil(sqrt(N)) instead of staying fixed, keeping base memory proportional
	// to sqrt(N) while every slice still finds all its factors in the base.
	sqrtBaseThreshold = 1_000_000_000_000
)

// Plan fixes the factor-base bound and the slice count for one run.
type Plan struct {
	// N is the exclusive upper bound of the run.
	N uint64

	// BaseBound is the exclusive upper bound of the factor base, always a
	// multiple of 16.
	BaseBound uint64

	// Slices is the number of windows above the base. Zero means a single
	// unsliced pass over [0, BaseBound) covers the whole run.
	Slices int
}

// NewPlan validates n and selects the base bound and slice count.
//
// The policy follows the size of n:
//   - above 10^12 the base is ceil(sqrt(n)), rounded up to a multiple of 16
//   - above 2^20 the base stays fixed at 2^20
//   - from 10 up the base covers all of n and the run is unsliced
//
// Everything else is rejected.
func NewPlan(n uint64) (Plan, error) {
	switch {
	case n > MaxValue:
		return Plan{}, ErrRangeUnsupported
	case n > sqrtBaseThreshold:
		b := roundUp16(sieve.CeilSqrt(n))
		return Plan{N: n, BaseBound: b, Slices: int((n - 1) / b)}, nil
	case n > fixedBaseBound:
		return Plan{N: n, BaseBound: fixedBaseBound, Slices: int((n - 1) / fixedBaseBound)}, nil
	case n >= MinValue:
		return Plan{N: n, BaseBound: roundUp16(n), Slices: 0}, nil
	default:
		return Plan{}, ErrBelowMinimum
	}
}

// Window returns the half-open window [start, start+length) of slice i,
// counted from 1 to Slices. Every window starts on a multiple of 16 at or
// above BaseBound; the last one is truncated to end exactly at N.
func (p Plan) Window(i int) (start, length uint64) {
	start = p.BaseBound * uint64(i)
	if i == p.Slices {
		return start, p.N - start
	}
	return start, p.BaseBound
}

func roundUp16(v uint64) uint64 {
	return (v + 15) &^ 15
}
