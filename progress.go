package primecount

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/time/rate"
)

// progressSliceThreshold is the slice count a run must exceed before progress
// is emitted; shorter runs finish before anyone could read it.
const progressSliceThreshold = 1000

// progressMeter rewrites a single carriage-return terminated percent line as
// slices are handed to the pool. Redraws are rate limited so a fast
// submission loop does not flood the terminal; the final 100% line always
// prints.
type progressMeter struct {
	w       io.Writer
	total   int
	percent int
	redraws *rate.Limiter
}

func newProgressMeter(w io.Writer, total int) *progressMeter {
	return &progressMeter{
		w:       w,
		total:   total,
		percent: -1,
		redraws: rate.NewLimiter(rate.Every(50*time.Millisecond), 1),
	}
}

// update records that done slices have been submitted so far and redraws when
// the rounded percentage moved.
func (p *progressMeter) update(done int) {
	percent := (done*100 + p.total/2) / p.total
	if percent == p.percent {
		return
	}
	if percent != 100 && !p.redraws.Allow() {
		return
	}

	p.percent = percent
	if percent == 100 {
		fmt.Fprintf(p.w, "\rprogress: %d%% (done)\n", percent)
		return
	}
	fmt.Fprintf(p.w, "\rprogress: %d%% ", percent)
}
