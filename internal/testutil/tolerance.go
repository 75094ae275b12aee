package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if the
// largest absolute difference exceeds eps. The report names the worst index.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	worst, diff := WorstDiff(got, want)
	if diff > eps {
		t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", worst, got[worst], want[worst], diff, eps)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// WorstDiff returns the index and size of the largest absolute difference
// over the common prefix of a and b.
func WorstDiff(a, b []float64) (int, float64) {
	n := min(len(a), len(b))
	idx, worst := 0, 0.0
	for i := range n {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			return i, math.Inf(1)
		}
		if d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}
