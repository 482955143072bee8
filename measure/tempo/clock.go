package tempo

import "time"

// Clock supplies the timestamp recorded for each tap.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock via time.Now. The returned times carry a
// monotonic reading, so elapsed durations are not affected by clock steps.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
