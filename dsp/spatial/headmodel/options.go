package headmodel

import (
	"fmt"
	"math"
)

// Option mutates construction-time model parameters.
type Option func(*config) error

type config struct {
	sampleRate   float64
	headRadius   float64
	speedOfSound float64
	samples      int
	azimuthStep  float64
	elevations   []float64
	onset        float64
}

func defaultConfig() config {
	return config{
		sampleRate:   44100,
		headRadius:   0.0875,
		speedOfSound: 343,
		samples:      512,
		azimuthStep:  5,
		elevations:   []float64{-40, -20, 0, 20, 40},
		onset:        8,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *config) error {
		if !positive(sampleRate) {
			return fmt.Errorf("headmodel: sample rate must be > 0 and finite: %f", sampleRate)
		}
		cfg.sampleRate = sampleRate
		return nil
	}
}

// WithHeadRadius sets the sphere radius in metres.
func WithHeadRadius(radius float64) Option {
	return func(cfg *config) error {
		if !positive(radius) {
			return fmt.Errorf("headmodel: head radius must be > 0 and finite: %f", radius)
		}
		cfg.headRadius = radius
		return nil
	}
}

// WithSpeedOfSound sets the speed of sound in m/s.
func WithSpeedOfSound(c float64) Option {
	return func(cfg *config) error {
		if !positive(c) {
			return fmt.Errorf("headmodel: speed of sound must be > 0 and finite: %f", c)
		}
		cfg.speedOfSound = c
		return nil
	}
}

// WithSamples sets the native length of every generated response.
func WithSamples(n int) Option {
	return func(cfg *config) error {
		if n < 64 {
			return fmt.Errorf("headmodel: response length must be >= 64: %d", n)
		}
		cfg.samples = n
		return nil
	}
}

// WithAzimuthStep sets the azimuth grid spacing in degrees. 360 must be an
// integer multiple of step.
func WithAzimuthStep(step float64) Option {
	return func(cfg *config) error {
		if !positive(step) || step > 360 {
			return fmt.Errorf("headmodel: azimuth step must be in (0, 360]: %f", step)
		}
		if n := 360 / step; math.Abs(n-math.Round(n)) > 1e-9 {
			return fmt.Errorf("headmodel: azimuth step %f does not divide 360", step)
		}
		cfg.azimuthStep = step
		return nil
	}
}

// WithElevations sets the elevation rings in degrees.
func WithElevations(elevations ...float64) Option {
	return func(cfg *config) error {
		if len(elevations) == 0 {
			return fmt.Errorf("headmodel: at least one elevation is required")
		}
		for _, el := range elevations {
			if math.IsNaN(el) || el < -90 || el > 90 {
				return fmt.Errorf("headmodel: elevation must be in [-90, 90]: %f", el)
			}
		}
		cfg.elevations = append([]float64(nil), elevations...)
		return nil
	}
}

// WithOnset sets the delay in samples before the earliest arrival.
func WithOnset(samples float64) Option {
	return func(cfg *config) error {
		if samples < 0 || math.IsNaN(samples) || math.IsInf(samples, 0) {
			return fmt.Errorf("headmodel: onset must be >= 0 and finite: %f", samples)
		}
		cfg.onset = samples
		return nil
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
