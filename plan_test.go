package primecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primecount/sieve"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name          string
		n             uint64
		wantBaseBound uint64
		wantSlices    int
	}{
		{name: "Minimum bound", n: 10, wantBaseBound: 16, wantSlices: 0},
		{name: "Unaligned small bound", n: 100, wantBaseBound: 112, wantSlices: 0},
		{name: "Aligned small bound", n: 4096, wantBaseBound: 4096, wantSlices: 0},
		{name: "Fixed base boundary", n: 1 << 20, wantBaseBound: 1 << 20, wantSlices: 0},
		{name: "Just above fixed base", n: 1<<20 + 1, wantBaseBound: 1 << 20, wantSlices: 1},
		{name: "Two full windows", n: 3 << 20, wantBaseBound: 1 << 20, wantSlices: 2},
		{name: "Largest fixed-base bound", n: 1_000_000_000_000, wantBaseBound: 1 << 20, wantSlices: 953674},
		{name: "Just above sqrt threshold", n: 1_000_000_000_001, wantBaseBound: 1_000_016, wantSlices: 999984},
		{name: "Maximum bound", n: MaxValue, wantBaseBound: 31_622_784, wantSlices: 31_622_769},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.n)
			require.NoError(t, err)

			assert.Equal(t, tt.n, plan.N)
			assert.Equal(t, tt.wantBaseBound, plan.BaseBound)
			assert.Equal(t, tt.wantSlices, plan.Slices)
		})
	}
}

func TestNewPlanRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		n       uint64
		wantErr error
	}{
		{name: "Zero", n: 0, wantErr: ErrBelowMinimum},
		{name: "Below minimum", n: 9, wantErr: ErrBelowMinimum},
		{name: "Above maximum", n: MaxValue + 1, wantErr: ErrRangeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.n)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlanWindowPartition(t *testing.T) {
	plan, err := NewPlan(5_000_000)
	require.NoError(t, err)
	require.Equal(t, 4, plan.Slices)

	next := plan.BaseBound
	for i := 1; i <= plan.Slices; i++ {
		start, length := plan.Window(i)

		assert.Equal(t, next, start, "window %d must begin where the previous range ended", i)
		assert.Zero(t, start%16, "window %d start must stay 16-aligned", i)
		assert.Positive(t, length)

		next = start + length
	}

	assert.Equal(t, plan.N, next, "the last window must end exactly at N")
}

func TestPlanBaseCoversEveryWindow(t *testing.T) {
	bounds := []uint64{
		1<<20 + 1,
		5_000_000,
		1_000_000_000,
		1_000_000_000_000,
		1_000_000_000_001,
		123_456_789_012_345,
		MaxValue,
	}

	for _, n := range bounds {
		plan, err := NewPlan(n)
		require.NoError(t, err)

		// Slices look factors up below ceil(sqrt(window end)); with the base
		// bound even and at least ceil(sqrt(N)), every odd factor a window
		// can probe falls inside the base.
		require.GreaterOrEqual(t, plan.BaseBound, sieve.CeilSqrt(n), "n=%d", n)
		require.Zero(t, plan.BaseBound%16, "n=%d", n)
	}
}
