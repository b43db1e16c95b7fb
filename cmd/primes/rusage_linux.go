//go:build linux

package main

import "golang.org/x/sys/unix"

// peakRSSBytes returns the high-water resident set size of the process.
func peakRSSBytes() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// ru_maxrss is reported in KiB on Linux.
	return ru.Maxrss * 1024
}
