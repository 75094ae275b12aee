package testutil

import (
	"math"
	"testing"
)

func TestWorstDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.05}

	idx, d := WorstDiff(a, b)
	if idx != 1 || math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("WorstDiff = (%d, %v), want (1, 0.1)", idx, d)
	}
}

func TestWorstDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}
	if idx, d := WorstDiff(a, a); idx != 0 || d != 0 {
		t.Fatalf("WorstDiff = (%d, %v), want (0, 0) for identical slices", idx, d)
	}
}

func TestWorstDiffNaN(t *testing.T) {
	idx, d := WorstDiff([]float64{0, math.NaN()}, []float64{0, 0})
	if idx != 1 || !math.IsInf(d, 1) {
		t.Fatalf("WorstDiff = (%d, %v), want (1, +Inf)", idx, d)
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-12}, 1e-9)
	RequireFinite(t, []float64{0, -1, 1e300})
}
