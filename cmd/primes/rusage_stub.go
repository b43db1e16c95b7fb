//go:build !linux

package main

// peakRSSBytes is unavailable off Linux; the debug log reports 0.
func peakRSSBytes() int64 {
	return 0
}
