package cues

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

func impulsePair(n, leftPos, rightPos int, leftGain, rightGain float32) ([]float32, []float32) {
	left := make([]float32, n)
	right := make([]float32, n)
	left[leftPos] = leftGain
	right[rightPos] = rightGain
	return left, right
}

func TestAnalyzeRecoversKnownCues(t *testing.T) {
	const fs = 48000.0
	tests := []struct {
		name      string
		lp, rp    int
		lg, rg    float32
		wantLag   int
		wantILDdB float64
	}{
		{"left leads and louder", 10, 15, 1, 0.5, 5, 20 * math.Log10(2)},
		{"right leads and louder", 30, 12, 0.25, 1, -18, -20 * math.Log10(4)},
		{"centred", 20, 20, 0.7, 0.7, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := impulsePair(128, tt.lp, tt.rp, tt.lg, tt.rg)
			m, err := NewAnalyzer(fs).Analyze(left, right)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if m.LagSamples != tt.wantLag {
				t.Errorf("LagSamples = %d, want %d", m.LagSamples, tt.wantLag)
			}
			if want := float64(tt.wantLag) / fs; math.Abs(m.ITD-want) > 1e-12 {
				t.Errorf("ITD = %g, want %g", m.ITD, want)
			}
			if math.Abs(m.ILD-tt.wantILDdB) > 1e-4 {
				t.Errorf("ILD = %.4f dB, want %.4f dB", m.ILD, tt.wantILDdB)
			}
			// An impulse has a flat spectrum, so the high band sees the same ratio.
			if math.Abs(m.HighBandILD-tt.wantILDdB) > 1e-4 {
				t.Errorf("HighBandILD = %.4f dB, want %.4f dB", m.HighBandILD, tt.wantILDdB)
			}
			if m.PeakLeft != tt.lp || m.PeakRight != tt.rp {
				t.Errorf("peaks = %d/%d, want %d/%d", m.PeakLeft, m.PeakRight, tt.lp, tt.rp)
			}
		})
	}
}

func TestAnalyzeLagIsBounded(t *testing.T) {
	// 100 samples at 48 kHz is beyond MaxITD, so the search must not find it.
	left, right := impulsePair(256, 0, 100, 1, 1)
	m, err := NewAnalyzer(48000).Analyze(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if limit := int(math.Ceil(MaxITD * 48000)); m.LagSamples > limit || m.LagSamples < -limit {
		t.Fatalf("LagSamples = %d outside ±%d", m.LagSamples, limit)
	}
}

func TestAnalyzeSilentSide(t *testing.T) {
	left, right := impulsePair(64, 3, 3, 1, 0)
	m, err := NewAnalyzer(44100).Analyze(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(m.ILD, 1) {
		t.Fatalf("ILD = %v, want +Inf", m.ILD)
	}

	silent := make([]float32, 64)
	m, err = NewAnalyzer(44100).Analyze(silent, silent)
	if err != nil {
		t.Fatal(err)
	}
	if m.ILD != 0 || m.HighBandILD != 0 {
		t.Fatalf("silent pair ILD = %v/%v, want 0", m.ILD, m.HighBandILD)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	a := NewAnalyzer(44100)
	if _, err := a.Analyze(nil, nil); !errors.Is(err, ErrEmptyIR) {
		t.Errorf("empty: error = %v", err)
	}
	if _, err := a.Analyze(make([]float32, 4), make([]float32, 5)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatch: error = %v", err)
	}
	if _, err := NewAnalyzer(0).Analyze(make([]float32, 4), make([]float32, 4)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("sample rate: error = %v", err)
	}
}

func TestEnergyAndSilence(t *testing.T) {
	buf := []float32{3, -4}
	if got := Energy(buf); got != 25 {
		t.Fatalf("Energy() = %v, want 25", got)
	}
	if IsSilent(buf, 1) || !IsSilent(make([]float32, 8), 0) {
		t.Fatal("IsSilent() misclassified")
	}
}

func TestDefaultTableCues(t *testing.T) {
	table := hrir.Default()
	a := NewAnalyzer(float64(table.SampleRate()))
	for _, d := range hrir.Directions() {
		pair := table.Pair(d)
		m, err := a.Analyze(pair.Left[:], pair.Right[:])
		if err != nil {
			t.Fatalf("%s: Analyze() error = %v", d, err)
		}
		if IsSilent(pair.Left[:], 1e-6) || IsSilent(pair.Right[:], 1e-6) {
			t.Errorf("%s: silent ear", d)
		}
		switch az := d.Azimuth(); {
		case az > 0 && az < 180:
			if m.ILD <= 3 || m.LagSamples <= 0 {
				t.Errorf("%s: ILD %.2f dB lag %d, want left louder and leading", d, m.ILD, m.LagSamples)
			}
		case az < 0:
			if m.ILD >= -3 || m.LagSamples >= 0 {
				t.Errorf("%s: ILD %.2f dB lag %d, want right louder and leading", d, m.ILD, m.LagSamples)
			}
		default:
			if math.Abs(m.ILD) > 0.5 || m.LagSamples != 0 {
				t.Errorf("%s: ILD %.2f dB lag %d, want a balanced pair", d, m.ILD, m.LagSamples)
			}
		}
	}
}
