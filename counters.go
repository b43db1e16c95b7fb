package primecount

import "sync"

// Counters accumulates the totals shared by every slice job. The driver seeds
// it from the base scan, with the prime 2 already counted.
type Counters struct {
	mu          sync.Mutex
	totalPrimes uint64
	lastPrime   uint64
}

// NewCounters seeds the shared totals.
func NewCounters(totalPrimes, lastPrime uint64) *Counters {
	return &Counters{
		totalPrimes: totalPrimes,
		lastPrime:   lastPrime,
	}
}

// Merge folds one slice result into the totals. The count is summed and the
// last prime is a max-reduction, so the outcome is the same no matter in
// which order the slices complete. A slice that found nothing merges (0, 0)
// without effect.
func (c *Counters) Merge(count, last uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalPrimes += count
	if last > c.lastPrime {
		c.lastPrime = last
	}
}

// Totals returns a consistent snapshot of the accumulated totals.
func (c *Counters) Totals() (totalPrimes, lastPrime uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalPrimes, c.lastPrime
}
