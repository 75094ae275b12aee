package reduce

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
)

// Measurement is one recorded direction of a spherical HRIR set. Left and
// Right must have the same length across the whole set.
type Measurement struct {
	Azimuth   float64
	Elevation float64
	Left      []float64
	Right     []float64
}

// Target names an azimuth to reduce the measurement set to.
type Target struct {
	Name    string
	Azimuth float64
}

// Source yields a measurement set.
type Source interface {
	Measurements() ([]Measurement, error)
}

// Selection is the measurement chosen for one target.
type Selection struct {
	Target    Target
	Index     int // index into the measurement set
	Azimuth   float64
	Elevation float64
	Score     float64
	Left      []float32
	Right     []float32
}

// Reduction is the result of [Reduce], in target order.
type Reduction struct {
	Length     int
	Selections []Selection
}

// Option configures a reduction.
type Option func(*config) error

type config struct {
	length int
}

func defaultConfig() config {
	return config{length: hrir.Length}
}

// WithLength sets the number of samples extracted per response. It must not
// exceed [hrir.MaxLength].
func WithLength(n int) Option {
	return func(cfg *config) error {
		if n <= 0 || n > hrir.MaxLength {
			return configErr("", -1, fmt.Errorf("%w: %d not in [1, %d]", ErrLengthExceeded, n, hrir.MaxLength))
		}
		cfg.length = n
		return nil
	}
}

// DefaultTargets returns the canonical directions of package hrir as targets.
func DefaultTargets() []Target {
	dirs := hrir.Directions()
	targets := make([]Target, len(dirs))
	for i, d := range dirs {
		targets[i] = Target{Name: d.String(), Azimuth: d.Azimuth()}
	}
	return targets
}

// Reduce picks the closest measurement for every target and extracts its
// responses. It fails as a whole; no partial result is returned.
func Reduce(measurements []Measurement, targets []Target, opts ...Option) (*Reduction, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateMeasurements(measurements); err != nil {
		return nil, err
	}
	if err := validateTargets(targets); err != nil {
		return nil, err
	}

	red := &Reduction{
		Length:     cfg.length,
		Selections: make([]Selection, 0, len(targets)),
	}
	for _, tgt := range targets {
		idx, score := closest(measurements, tgt.Azimuth)
		m := measurements[idx]
		red.Selections = append(red.Selections, Selection{
			Target:    tgt,
			Index:     idx,
			Azimuth:   m.Azimuth,
			Elevation: m.Elevation,
			Score:     score,
			Left:      extract(m.Left, cfg.length),
			Right:     extract(m.Right, cfg.length),
		})
	}
	return red, nil
}

// ReduceSource reads the measurement set from src and reduces it.
func ReduceSource(src Source, targets []Target, opts ...Option) (*Reduction, error) {
	measurements, err := src.Measurements()
	if err != nil {
		return nil, fmt.Errorf("reduce: load measurements: %w", err)
	}
	return Reduce(measurements, targets, opts...)
}

// Lookup returns the selection made for the named target.
func (r *Reduction) Lookup(name string) (Selection, bool) {
	for _, s := range r.Selections {
		if s.Target.Name == name {
			return s, true
		}
	}
	return Selection{}, false
}

// Table converts the reduction into an [hrir.Table]. Target names must be
// the canonical direction names and the length must equal [hrir.Length].
func (r *Reduction) Table(sampleRate int) (*hrir.Table, error) {
	if r.Length != hrir.Length {
		return nil, fmt.Errorf("reduce: table needs %d samples per response, reduction has %d", hrir.Length, r.Length)
	}
	entries := make([]hrir.Entry, 0, len(r.Selections))
	for _, s := range r.Selections {
		d, err := hrir.ParseDirection(s.Target.Name)
		if err != nil {
			return nil, fmt.Errorf("reduce: target %q: %w", s.Target.Name, err)
		}
		entries = append(entries, hrir.Entry{Direction: d, Left: s.Left, Right: s.Right})
	}
	return hrir.NewTable(sampleRate, entries)
}

// closest returns the index and score of the best measurement for az. Ties
// keep the earliest index.
func closest(measurements []Measurement, az float64) (int, float64) {
	best := 0
	bestScore := math.Inf(1)
	for i, m := range measurements {
		if s := Score(m, az); s < bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}

// extract converts the first n samples of src to float32, zero-padding when
// src is shorter.
func extract(src []float64, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n && i < len(src); i++ {
		out[i] = float32(src[i])
	}
	return out
}

func validateMeasurements(measurements []Measurement) error {
	if len(measurements) == 0 {
		return configErr("", -1, ErrNoMeasurements)
	}
	native := len(measurements[0].Left)
	for i, m := range measurements {
		switch {
		case !finite(m.Azimuth) || !finite(m.Elevation):
			return configErr("", i, fmt.Errorf("%w: non-finite position (%g, %g)", ErrMalformedMeasurement, m.Azimuth, m.Elevation))
		case len(m.Left) == 0 || len(m.Right) == 0:
			return configErr("", i, fmt.Errorf("%w: empty response", ErrMalformedMeasurement))
		case len(m.Left) != len(m.Right):
			return configErr("", i, fmt.Errorf("%w: left has %d samples, right %d", ErrMalformedMeasurement, len(m.Left), len(m.Right)))
		case len(m.Left) != native:
			return configErr("", i, fmt.Errorf("%w: %d samples, set uses %d", ErrMalformedMeasurement, len(m.Left), native))
		}
	}
	return nil
}

func validateTargets(targets []Target) error {
	if len(targets) == 0 {
		return configErr("", -1, ErrNoTargets)
	}
	seen := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if t.Name == "" {
			return configErr("", -1, fmt.Errorf("%w: empty name", ErrInvalidTarget))
		}
		if !finite(t.Azimuth) {
			return configErr(t.Name, -1, fmt.Errorf("%w: azimuth %g", ErrInvalidTarget, t.Azimuth))
		}
		if _, dup := seen[t.Name]; dup {
			return configErr(t.Name, -1, ErrDuplicateTarget)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
