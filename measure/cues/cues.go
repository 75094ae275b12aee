package cues

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by cue analysis.
var (
	ErrEmptyIR           = errors.New("cues: impulse response is empty")
	ErrLengthMismatch    = errors.New("cues: left and right lengths differ")
	ErrInvalidSampleRate = errors.New("cues: sample rate must be positive")
)

const (
	// HighBandEdge is the lower edge of the band used for HighBandILD, in Hz.
	HighBandEdge = 1500.0

	// MaxITD bounds the lag search; larger lags cannot come from a human head.
	MaxITD = 0.001
)

// Metrics holds the interaural cues of one HRIR pair.
type Metrics struct {
	EnergyLeft  float64
	EnergyRight float64
	ILD         float64 // dB, left over right
	HighBandILD float64 // dB above HighBandEdge, left over right
	LagSamples  int     // right-ear lag behind the left ear in samples
	ITD         float64 // seconds, positive when the left ear leads
	PeakLeft    int
	PeakRight   int
}

// Analyzer computes interaural cues.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer for responses at the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze computes all cues for a left/right pair of equal length.
func (a *Analyzer) Analyze(left, right []float32) (Metrics, error) {
	if len(left) == 0 || len(right) == 0 {
		return Metrics{}, ErrEmptyIR
	}
	if len(left) != len(right) {
		return Metrics{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(left), len(right))
	}
	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	m := Metrics{
		EnergyLeft:  Energy(left),
		EnergyRight: Energy(right),
		PeakLeft:    peakIndex(left),
		PeakRight:   peakIndex(right),
	}
	m.ILD = levelDifference(m.EnergyLeft, m.EnergyRight)

	spec, err := a.spectra(left, right)
	if err != nil {
		return Metrics{}, err
	}
	m.LagSamples = spec.lag(a.maxLag(len(left)))
	m.ITD = float64(m.LagSamples) / a.SampleRate
	m.HighBandILD = spec.highBandILD(a.SampleRate)

	return m, nil
}

// Energy returns the sum of squared samples.
func Energy(buf []float32) float64 {
	var sum float64
	for _, v := range buf {
		sum += float64(v) * float64(v)
	}
	return sum
}

// IsSilent reports whether buf carries no more than threshold energy.
func IsSilent(buf []float32, threshold float64) bool {
	return Energy(buf) <= threshold
}

func (a *Analyzer) maxLag(n int) int {
	lag := int(math.Ceil(MaxITD * a.SampleRate))
	if lag > n-1 {
		lag = n - 1
	}
	return lag
}

func peakIndex(buf []float32) int {
	idx := 0
	peak := float32(-1)
	for i, v := range buf {
		if abs := float32(math.Abs(float64(v))); abs > peak {
			peak, idx = abs, i
		}
	}
	return idx
}

// levelDifference returns 10·log10(left/right). A silent side yields ±Inf;
// two silent sides yield 0.
func levelDifference(left, right float64) float64 {
	switch {
	case left <= 0 && right <= 0:
		return 0
	case right <= 0:
		return math.Inf(1)
	case left <= 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(left/right)
}

type pairSpectra struct {
	size  int
	left  []complex128
	right []complex128
	corr  []complex128
}

// spectra zero-pads both ears to twice their length, so the inverse of
// right·conj(left) is the linear cross-correlation.
func (a *Analyzer) spectra(left, right []float32) (*pairSpectra, error) {
	size := nextPowerOf2(2 * len(left))
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("cues: failed to create FFT plan: %w", err)
	}

	s := &pairSpectra{
		size:  size,
		left:  make([]complex128, size),
		right: make([]complex128, size),
		corr:  make([]complex128, size),
	}
	for i := range left {
		s.left[i] = complex(float64(left[i]), 0)
		s.right[i] = complex(float64(right[i]), 0)
	}
	if err := plan.Forward(s.left, s.left); err != nil {
		return nil, fmt.Errorf("cues: forward FFT failed: %w", err)
	}
	if err := plan.Forward(s.right, s.right); err != nil {
		return nil, fmt.Errorf("cues: forward FFT failed: %w", err)
	}

	for i := range s.corr {
		l := s.left[i]
		s.corr[i] = s.right[i] * complex(real(l), -imag(l))
	}
	if err := plan.Inverse(s.corr, s.corr); err != nil {
		return nil, fmt.Errorf("cues: inverse FFT failed: %w", err)
	}
	return s, nil
}

// lag returns the lag in [-maxLag, maxLag] with the largest correlation.
// Positive lags are stored at the front of corr, negative ones wrap to the end.
func (s *pairSpectra) lag(maxLag int) int {
	best := 0
	bestVal := math.Inf(-1)
	for k := -maxLag; k <= maxLag; k++ {
		idx := k
		if k < 0 {
			idx += s.size
		}
		if v := real(s.corr[idx]); v > bestVal {
			best, bestVal = k, v
		}
	}
	return best
}

func (s *pairSpectra) highBandILD(sampleRate float64) float64 {
	bins := s.size/2 + 1
	first := int(math.Ceil(HighBandEdge * float64(s.size) / sampleRate))
	if first >= bins {
		return 0
	}
	n := bins - first

	re := make([]float64, n)
	im := make([]float64, n)
	power := make([]float64, n)

	for i := range n {
		re[i], im[i] = real(s.left[first+i]), imag(s.left[first+i])
	}
	vecmath.Power(power, re, im)
	left := sum(power)

	for i := range n {
		re[i], im[i] = real(s.right[first+i]), imag(s.right[first+i])
	}
	vecmath.Power(power, re, im)
	right := sum(power)

	return levelDifference(left, right)
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
