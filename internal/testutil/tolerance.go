package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t when got and want differ in length or
// any pair of samples differs by more than eps. The report names the worst
// sample.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	worst, idx := 0.0, -1
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > worst || math.IsNaN(d) {
			worst, idx = d, i
			if math.IsNaN(d) {
				break
			}
		}
	}
	if idx >= 0 && (worst > eps || math.IsNaN(worst)) {
		t.Fatalf("sample %d: got %v, want %v (|diff| %g > %g)", idx, got[idx], want[idx], worst, eps)
	}
}
