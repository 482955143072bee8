package tempo

import (
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-tempo/internal/testutil"
)

func TestCalculate(t *testing.T) {
	start := testutil.Epoch

	tests := []struct {
		name     string
		elapsed  time.Duration
		taps     uint64
		expected float64
	}{
		{name: "two taps one second", elapsed: time.Second, taps: 2, expected: 60},
		{name: "four taps fractional", elapsed: 1500 * time.Millisecond, taps: 4, expected: 120},
		{name: "half second beat", elapsed: 500 * time.Millisecond, taps: 2, expected: 120},
		{name: "slow", elapsed: 4 * time.Second, taps: 3, expected: 30},
		{name: "one minute", elapsed: time.Minute, taps: 91, expected: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpm, ok := Calculate(start, start.Add(tt.elapsed), tt.taps)
			testutil.RequireEstimate(t, bpm, ok, tt.expected, 1e-9)
		})
	}
}

func TestCalculateInsufficientTaps(t *testing.T) {
	start := testutil.Epoch
	ends := []time.Time{start, start.Add(time.Second), start.Add(-time.Second)}

	for _, taps := range []uint64{0, 1} {
		for _, end := range ends {
			bpm, ok := Calculate(start, end, taps)
			if ok {
				t.Fatalf("Calculate(taps=%d, end=%v) = %v, want no estimate", taps, end, bpm)
			}
		}
	}
}

func TestCalculateInvertedRange(t *testing.T) {
	start := testutil.Epoch
	end := start.Add(time.Second)

	for _, taps := range []uint64{0, 1, 2, 10, math.MaxUint64} {
		bpm, ok := Calculate(end, start, taps)
		testutil.RequireNoEstimate(t, bpm, ok)
	}

	// One nanosecond out of order is still inverted.
	bpm, ok := Calculate(start.Add(time.Nanosecond), start, 2)
	testutil.RequireNoEstimate(t, bpm, ok)
}

func TestCalculateZeroElapsed(t *testing.T) {
	bpm, ok := Calculate(testutil.Epoch, testutil.Epoch, 2)
	if !ok {
		t.Fatal("expected an estimate for zero elapsed time")
	}

	if !math.IsInf(bpm, 1) {
		t.Fatalf("bpm = %v, want +Inf", bpm)
	}
}

func TestCalculateMillisecondResolution(t *testing.T) {
	start := testutil.Epoch

	// 250ms must not be rounded to whole seconds.
	bpm, ok := Calculate(start, start.Add(250*time.Millisecond), 2)
	testutil.RequireEstimate(t, bpm, ok, 240, 1e-9)

	// Sub-millisecond remainders are truncated.
	bpm, ok = Calculate(start, start.Add(time.Second+999*time.Microsecond), 2)
	testutil.RequireEstimate(t, bpm, ok, 60, 1e-9)

	// Less than a millisecond reads as zero elapsed.
	bpm, ok = Calculate(start, start.Add(999*time.Microsecond), 2)
	if !ok || !math.IsInf(bpm, 1) {
		t.Fatalf("Calculate(999us) = %v, %v, want +Inf, true", bpm, ok)
	}
}

func TestCalculateTimeZoneAgnostic(t *testing.T) {
	start := testutil.Epoch
	berlin := time.FixedZone("CEST", 2*60*60)
	end := start.Add(time.Second).In(berlin)

	bpm, ok := Calculate(start, end, 2)
	testutil.RequireEstimate(t, bpm, ok, 60, 1e-9)
}

func TestCalculateIsPure(t *testing.T) {
	start := testutil.Epoch
	end := start.Add(1500 * time.Millisecond)

	firstBPM, firstOK := Calculate(start, end, 4)
	for i := range 10 {
		bpm, ok := Calculate(start, end, 4)
		if bpm != firstBPM || ok != firstOK {
			t.Fatalf("call %d: got (%v, %v), want (%v, %v)", i, bpm, ok, firstBPM, firstOK)
		}
	}

	for range 3 {
		if _, ok := Calculate(end, start, 4); ok {
			t.Fatal("expected no estimate for repeated inverted input")
		}
	}
}
