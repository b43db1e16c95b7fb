package primecount

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/primecount/bitsieve"
	"github.com/hupe1980/primecount/resource"
	"github.com/hupe1980/primecount/sieve"
	"github.com/hupe1980/primecount/workers"
)

// Result holds the totals of one completed run.
type Result struct {
	// N is the exclusive bound the run counted below.
	N uint64

	// Count is the number of primes strictly less than N.
	Count uint64

	// LastPrime is the largest prime below N.
	LastPrime uint64

	// BaseBound, BasePrimes and BaseLast describe the factor-base phase: the
	// exclusive bound of the base sieve, the primes found in it (capped at N
	// on unsliced runs) and the largest of them.
	BaseBound  uint64
	BasePrimes uint64
	BaseLast   uint64

	// Slices is the number of windows sieved above the base; 0 means the base
	// covered the whole run.
	Slices int

	// Workers is the pool size used.
	Workers int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// PeakMemoryBytes is the high-water mark of managed sieve memory.
	PeakMemoryBytes int64
}

// BaseStats describes the factor-base phase of a sliced run; see
// WithBaseStatsFunc.
type BaseStats struct {
	Bound   uint64
	Count   uint64
	Last    uint64
	Slices  int
	Workers int
}

// Count computes the number of primes strictly less than n together with the
// largest prime below n, for n from 10 up to a quadrillion (1e15).
//
// The run is a segmented sieve of Eratosthenes: a factor base covering at
// least ceil(sqrt(n)) is sieved first, then the remaining range is split into
// base-sized windows that a pool of workers sieves independently, each against
// the shared read-only base. Slice results merge through a sum and a
// max-reduction, so the totals do not depend on completion order.
//
// ctx bounds the waits for a free worker and for capped memory; a sieving
// slice that already started always runs to completion.
func Count(ctx context.Context, n uint64, optFns ...Option) (Result, error) {
	o := applyOptions(optFns)

	plan, err := NewPlan(n)
	if err != nil {
		return Result{}, err
	}
	if o.workers < 0 || o.workers > maxWorkers {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.workers)
	}

	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
	baseBytes := bitsieve.Size(plan.BaseBound)
	if o.memoryLimit > 0 {
		need := baseBytes
		if plan.Slices > 0 {
			// The run needs the base plus at least one transient window to
			// make progress; windows are never larger than the base buffer.
			need += baseBytes
		}
		if o.memoryLimit < need {
			return Result{}, fmt.Errorf("cannot start run: %w", &resource.ErrMemoryLimit{Requested: need, Limit: o.memoryLimit})
		}
	}

	started := time.Now()

	if err := ctrl.AcquireMemory(ctx, baseBytes); err != nil {
		return Result{}, fmt.Errorf("reserving base sieve memory: %w", err)
	}
	defer ctrl.ReleaseMemory(baseBytes)

	base := sieve.BuildBase(plan.BaseBound)
	baseCount, baseLast := sieve.Scan(base, 3, min(plan.BaseBound, n))
	basePrimes := baseCount + 1 // the sieve has no slot for the prime 2

	o.metricsCollector.RecordBase(time.Since(started))
	o.logger.LogBase(ctx, n, plan.BaseBound, basePrimes, baseLast)

	res := Result{
		N:          n,
		BaseBound:  plan.BaseBound,
		BasePrimes: basePrimes,
		BaseLast:   baseLast,
		Slices:     plan.Slices,
		Workers:    o.workers,
	}

	if plan.Slices == 0 {
		res.Count = basePrimes
		res.LastPrime = baseLast
		res.Elapsed = time.Since(started)
		res.PeakMemoryBytes = ctrl.MemoryPeak()
		o.metricsCollector.RecordRun(res.Elapsed, nil)
		o.logger.LogRun(ctx, res, nil)
		return res, nil
	}

	if o.baseStatsFunc != nil {
		o.baseStatsFunc(BaseStats{
			Bound:   plan.BaseBound,
			Count:   basePrimes,
			Last:    baseLast,
			Slices:  plan.Slices,
			Workers: o.workers,
		})
	}

	var meter *progressMeter
	if o.progressWriter != nil && plan.Slices > progressSliceThreshold {
		meter = newProgressMeter(o.progressWriter, plan.Slices)
	}

	counters := NewCounters(basePrimes, baseLast)

	pool := workers.New(o.workers)
	defer pool.Close()

	var runErr error
	for i := 1; i <= plan.Slices; i++ {
		start, length := plan.Window(i)
		windowBytes := bitsieve.Size((length + 15) &^ 15)

		if err := ctrl.AcquireMemory(ctx, windowBytes); err != nil {
			runErr = fmt.Errorf("reserving memory for slice %d: %w", i, err)
			break
		}

		job := func() {
			defer ctrl.ReleaseMemory(windowBytes)
			jobStarted := time.Now()
			count, last := sieve.Slice(base, start, length)
			counters.Merge(count, last)
			o.metricsCollector.RecordSlice(time.Since(jobStarted))
		}

		if i == plan.Slices {
			// Nothing follows the final slice but Wait, so the calling
			// goroutine sieves it itself.
			pool.RunInline(job)
		} else if err := pool.Submit(ctx, job); err != nil {
			ctrl.ReleaseMemory(windowBytes)
			runErr = fmt.Errorf("submitting slice %d: %w", i, err)
			break
		}

		if meter != nil {
			meter.update(i)
		}
	}

	pool.Wait()

	if runErr != nil {
		o.metricsCollector.RecordRun(time.Since(started), runErr)
		o.logger.LogRun(ctx, res, runErr)
		return Result{}, runErr
	}

	res.Count, res.LastPrime = counters.Totals()
	res.Elapsed = time.Since(started)
	res.PeakMemoryBytes = ctrl.MemoryPeak()

	o.metricsCollector.RecordRun(res.Elapsed, nil)
	o.logger.LogRun(ctx, res, nil)

	return res, nil
}
