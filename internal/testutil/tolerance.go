package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got differs from want by more than eps
// (absolute tolerance). Infinities of the same sign compare equal.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if got == want {
		return
	}
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireEstimate fails t unless ok is set and bpm is within eps of want.
func RequireEstimate(t *testing.T, bpm float64, ok bool, want, eps float64) {
	t.Helper()
	if !ok {
		t.Fatalf("no estimate, want %v BPM", want)
	}
	RequireNearlyEqual(t, bpm, want, eps)
}

// RequireNoEstimate fails t if ok is set.
func RequireNoEstimate(t *testing.T, bpm float64, ok bool) {
	t.Helper()
	if ok {
		t.Fatalf("got estimate %v BPM, want none", bpm)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}
