package binaural

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
	"github.com/cwbudde/algo-hrir/internal/testutil"
)

func TestConvolverMatchesDirectConvolution(t *testing.T) {
	pair := hrir.ForAzimuth(-45)
	for _, n := range []int{1, 100, hrir.Length, 3*hrir.Length + 11} {
		signal := testutil.DeterministicNoise(int64(n), 1, n)
		left, right, err := Render(signal, pair)
		if err != nil {
			t.Fatalf("n=%d: Render() error = %v", n, err)
		}
		if len(left) != n+hrir.Length-1 {
			t.Fatalf("n=%d: len = %d, want %d", n, len(left), n+hrir.Length-1)
		}
		testutil.RequireFinite(t, left)
		testutil.RequireSliceNearlyEqual(t, left, testutil.Convolve(signal, pair.Left[:]), 1e-9)
		testutil.RequireSliceNearlyEqual(t, right, testutil.Convolve(signal, pair.Right[:]), 1e-9)
	}
}

func TestConvolverReuse(t *testing.T) {
	c, err := NewConvolver(hrir.Default().Pair(hrir.Rear))
	if err != nil {
		t.Fatal(err)
	}
	signal := testutil.DeterministicNoise(3, 1, 700)
	l1, r1, err := c.Process(signal)
	if err != nil {
		t.Fatal(err)
	}
	l2, r2, err := c.Process(signal)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, l1, l2, 0)
	testutil.RequireSliceNearlyEqual(t, r1, r2, 0)
}

func TestConvolverEmptyInput(t *testing.T) {
	if _, _, err := Render(nil, hrir.ForAzimuth(0)); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Render(nil) error = %v, want ErrEmptyInput", err)
	}
}
