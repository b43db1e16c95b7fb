// Package resource tracks the memory held in sieve buffers and optionally
// enforces a hard cap on it.
//
// The segmented driver already bounds concurrency structurally: at most
// workers+1 transient windows exist at any moment. The controller adds
// byte-level accounting on top, so callers can pin peak managed memory below
// that structural bound or just observe it.
package resource

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64
}

// ErrMemoryLimit reports a reservation that can never fit under the
// configured cap, no matter how much earlier holders release.
type ErrMemoryLimit struct {
	Requested int64
	Limit     int64
}

func (e *ErrMemoryLimit) Error() string {
	return fmt.Sprintf("memory request of %d bytes exceeds the %d byte limit", e.Requested, e.Limit)
}

// Controller manages sieve buffer memory.
type Controller struct {
	cfg Config

	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64
	memPeak atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	return c
}

// AcquireMemory reserves memory. If a hard limit is configured and usage
// would exceed it, this blocks until enough is released or ctx is canceled.
// A request larger than the whole limit fails immediately with
// *ErrMemoryLimit rather than blocking forever. A nil controller admits
// everything.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if bytes > c.cfg.MemoryLimitBytes {
			return &ErrMemoryLimit{Requested: bytes, Limit: c.cfg.MemoryLimitBytes}
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.recordUsage(bytes)
	return nil
}

// TryAcquireMemory reserves memory without blocking.
// Returns true if acquired, false if the limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return false
	}

	c.recordUsage(bytes)
	return true
}

// ReleaseMemory returns reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

func (c *Controller) recordUsage(bytes int64) {
	used := c.memUsed.Add(bytes)
	for {
		peak := c.memPeak.Load()
		if used <= peak || c.memPeak.CompareAndSwap(peak, used) {
			return
		}
	}
}

// MemoryUsage returns the managed memory currently held, in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryPeak returns the high-water mark of managed memory, in bytes.
func (c *Controller) MemoryPeak() int64 {
	if c == nil {
		return 0
	}
	return c.memPeak.Load()
}
