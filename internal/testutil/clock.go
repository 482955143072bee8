package testutil

import "time"

// StepClock is a manually driven clock for deterministic timing tests.
// After every call to Now the clock advances by Step.
type StepClock struct {
	now  time.Time
	Step time.Duration
}

// NewStepClock returns a clock reading start that advances by step per read.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, Step: step}
}

// Now returns the current reading, then advances the clock by Step.
func (c *StepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Advance moves the clock forward by d. Negative d moves it backwards.
func (c *StepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *StepClock) Set(t time.Time) {
	c.now = t
}

// Epoch is a fixed reference instant for timing fixtures (1990-04-12 UTC).
var Epoch = time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC)

// TapTimes returns n timestamps spaced period apart, starting at start.
func TapTimes(start time.Time, period time.Duration, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(time.Duration(i) * period)
	}
	return out
}
