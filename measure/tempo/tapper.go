package tempo

import "time"

// Tapper accumulates taps and reports the tempo since the first one.
//
// The zero value is ready to use and reads the system clock. A Tapper is
// not safe for concurrent use; callers tapping from several goroutines
// must serialize access.
type Tapper struct {
	clock Clock
	start time.Time
	count uint64
}

// NewTapper creates a Tapper with the given options.
func NewTapper(opts ...TapperOption) *Tapper {
	cfg := ApplyTapperOptions(opts...)

	return &Tapper{clock: cfg.Clock}
}

// Tap records a tap at the current time and returns the tempo estimate.
// ok is false on the first tap, since no interval exists yet.
func (t *Tapper) Tap() (bpm float64, ok bool) {
	now := t.now()
	t.count++

	if t.count == 1 {
		t.start = now
		return 0, false
	}

	return Calculate(t.start, now, t.count)
}

// Count returns the number of recorded taps.
func (t *Tapper) Count() uint64 {
	return t.count
}

// Start returns the time of the first tap. ok is false until Tap has been
// called at least once.
func (t *Tapper) Start() (start time.Time, ok bool) {
	return t.start, t.count > 0
}

func (t *Tapper) now() time.Time {
	if t.clock == nil {
		return SystemClock{}.Now()
	}

	return t.clock.Now()
}
