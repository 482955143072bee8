// Package tempo estimates a tempo in beats per minute from tap events.
//
// A Tapper accumulates taps, for example key presses made in time with a
// piece of music, and reports the average tempo since the first tap:
//
//	var tap tempo.Tapper
//	tap.Tap() // first tap, no estimate yet
//	if bpm, ok := tap.Tap(); ok {
//		fmt.Printf("%.1f BPM\n", bpm)
//	}
//
// Smoothing, outlier rejection and beat subdivision are left to callers.
package tempo

import (
	"math"
	"time"
)

const millisecondsPerMinute = 60_000.0

// Calculate returns the tempo in beats per minute for taps taps recorded
// between start and end. N taps span N-1 intervals.
//
// ok is false if fewer than two taps were recorded or if start is after end.
// Elapsed time is truncated to whole milliseconds. If start equals end the
// result is +Inf with ok true.
func Calculate(start, end time.Time, taps uint64) (bpm float64, ok bool) {
	if taps < 2 || start.After(end) {
		return 0, false
	}

	intervals := float64(taps - 1)
	minutes := float64(end.Sub(start).Milliseconds()) / millisecondsPerMinute

	if minutes == 0 {
		return math.Inf(1), true
	}

	return intervals / minutes, true
}
