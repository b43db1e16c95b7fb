// Package workers provides the fixed worker pool that runs slice jobs.
//
// The pool is deliberately small. Jobs are plain closures and submission
// blocks until a worker picks the job up; the caller decides which job
// bypasses the pool and runs inline. That matches the scheduling contract of
// the segmented driver, which enqueues all but the last slice, sieves the
// last one on its own goroutine and then waits for the stragglers.
package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by Submit after Close.
var ErrPoolClosed = errors.New("worker pool is closed")

// Pool manages a fixed set of goroutines executing submitted jobs.
type Pool struct {
	numWorkers int
	workCh     chan func()
	stopCh     chan struct{}
	workerWG   sync.WaitGroup // running workers
	jobWG      sync.WaitGroup // accepted jobs
	closed     atomic.Bool
}

// New creates a pool with numWorkers goroutines. A pool with zero workers
// disables threading entirely: Submit then executes each job synchronously on
// the calling goroutine.
func New(numWorkers int) *Pool {
	p := &Pool{
		numWorkers: numWorkers,
		// Unbuffered on purpose: a submission completes only when a worker
		// takes the job, so at most numWorkers jobs are in flight and the
		// submitter is paced by the slowest worker instead of a queue.
		workCh: make(chan func()),
		stopCh: make(chan struct{}),
	}

	p.workerWG.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.workerWG.Done()

	for {
		select {
		case <-p.stopCh:
			return
		case task, ok := <-p.workCh:
			if !ok {
				return
			}
			task()
			p.jobWG.Done()
		}
	}
}

// Submit hands task to a free worker, blocking until one accepts it. With
// zero workers the task runs on the calling goroutine instead. The context
// bounds only the wait for a worker, never a job that already started.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	// A dead context must not race the handoff below.
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.numWorkers == 0 {
		task()
		return nil
	}

	p.jobWG.Add(1)
	select {
	case p.workCh <- task:
		return nil
	case <-p.stopCh:
		p.jobWG.Done()
		return ErrPoolClosed
	case <-ctx.Done():
		p.jobWG.Done()
		return ctx.Err()
	}
}

// RunInline executes task immediately on the calling goroutine, bypassing the
// queue. The driver uses it for the final slice: it waits for completion right
// after, so parking the job behind busy workers would only idle the caller.
func (p *Pool) RunInline(task func()) {
	task()
}

// Wait blocks until every job accepted by Submit has finished.
func (p *Pool) Wait() {
	p.jobWG.Wait()
}

// NumWorkers returns the configured worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once their current job finishes. It is idempotent;
// call Wait first if queued work must drain.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.stopCh)
	p.workerWG.Wait()
}
