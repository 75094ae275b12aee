package binaural

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

// Errors returned by renderer construction and processing.
var (
	ErrLengthMismatch = errors.New("binaural: buffer length mismatch")
	ErrChannelCount   = errors.New("binaural: wrong number of input channels")
)

// Option mutates construction-time renderer parameters.
type Option func(*config) error

type config struct {
	table *hrir.Table
}

func defaultConfig() config {
	return config{table: hrir.Default()}
}

// WithTable selects the filter table. The embedded default table is used
// otherwise.
func WithTable(t *hrir.Table) Option {
	return func(cfg *config) error {
		if t == nil {
			return fmt.Errorf("binaural: table must not be nil")
		}
		cfg.table = t
		return nil
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// history is a circular record of the last hrir.Length input samples.
type history struct {
	buf [hrir.Length]float32
}

// convolve returns the left and right outputs for the newest sample at pos.
func (h *history) convolve(pos int, pair hrir.FilterPair) (float32, float32) {
	var l, r float64
	k := 0
	for i := pos; i >= 0; i-- {
		x := float64(h.buf[i])
		l += float64(pair.Left[k]) * x
		r += float64(pair.Right[k]) * x
		k++
	}
	for i := hrir.Length - 1; i > pos; i-- {
		x := float64(h.buf[i])
		l += float64(pair.Left[k]) * x
		r += float64(pair.Right[k]) * x
		k++
	}
	return float32(l), float32(r)
}

func (h *history) reset() {
	for i := range h.buf {
		h.buf[i] = 0
	}
}

// Panner places a mono source at an azimuth.
type Panner struct {
	table *hrir.Table
	pair  hrir.FilterPair
	dir   hrir.Direction
	hist  history
	pos   int
}

// NewPanner creates a panner for a source at the given azimuth in degrees.
func NewPanner(azimuth float64, opts ...Option) (*Panner, error) {
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return nil, fmt.Errorf("binaural: panner azimuth must be finite: %f", azimuth)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	p := &Panner{table: cfg.table}
	p.SetAzimuth(azimuth)
	return p, nil
}

// SetAzimuth moves the source. Non-finite values select [hrir.Fallback].
func (p *Panner) SetAzimuth(azimuth float64) {
	p.dir, _ = hrir.Classify(azimuth)
	p.pair = p.table.Pair(p.dir)
}

// Direction returns the canonical direction currently rendered.
func (p *Panner) Direction() hrir.Direction {
	return p.dir
}

// ProcessSample renders one input sample.
func (p *Panner) ProcessSample(x float32) (left, right float32) {
	p.hist.buf[p.pos] = x
	left, right = p.hist.convolve(p.pos, p.pair)
	p.pos++
	if p.pos == hrir.Length {
		p.pos = 0
	}
	return left, right
}

// ProcessBlock renders in into left and right, which must match its length.
func (p *Panner) ProcessBlock(in, left, right []float32) error {
	if len(left) != len(in) || len(right) != len(in) {
		return fmt.Errorf("%w: in=%d left=%d right=%d", ErrLengthMismatch, len(in), len(left), len(right))
	}
	for i, x := range in {
		left[i], right[i] = p.ProcessSample(x)
	}
	return nil
}

// Reset clears the input history.
func (p *Panner) Reset() {
	p.hist.reset()
	p.pos = 0
}
