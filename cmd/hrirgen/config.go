package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-hrir/dsp/spatial/headmodel"
	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir/reduce"
)

// ModelConfig describes the spherical-head measurement source.
type ModelConfig struct {
	HeadRadius   float64   `yaml:"head_radius"`
	SpeedOfSound float64   `yaml:"speed_of_sound"`
	Samples      int       `yaml:"samples"`
	AzimuthStep  float64   `yaml:"azimuth_step"`
	Elevations   []float64 `yaml:"elevations"`
}

// TargetConfig names one output direction.
type TargetConfig struct {
	Name    string  `yaml:"name"`
	Azimuth float64 `yaml:"azimuth"`
}

// Config is the top-level structure of an hrirgen YAML file.
type Config struct {
	SampleRate int            `yaml:"sample_rate"`
	Length     int            `yaml:"length"`
	Model      ModelConfig    `yaml:"model"`
	Targets    []TargetConfig `yaml:"targets"`
}

// DefaultConfig matches the embedded default table.
func DefaultConfig() *Config {
	return &Config{
		SampleRate: hrir.DefaultSampleRate,
		Length:     hrir.Length,
	}
}

// LoadConfig reads and parses an hrirgen YAML file. Fields left out keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ModelOptions translates the non-zero model fields into headmodel options.
func (c *Config) ModelOptions() []headmodel.Option {
	opts := []headmodel.Option{headmodel.WithSampleRate(float64(c.SampleRate))}
	m := c.Model
	if m.HeadRadius != 0 {
		opts = append(opts, headmodel.WithHeadRadius(m.HeadRadius))
	}
	if m.SpeedOfSound != 0 {
		opts = append(opts, headmodel.WithSpeedOfSound(m.SpeedOfSound))
	}
	if m.Samples != 0 {
		opts = append(opts, headmodel.WithSamples(m.Samples))
	}
	if m.AzimuthStep != 0 {
		opts = append(opts, headmodel.WithAzimuthStep(m.AzimuthStep))
	}
	if len(m.Elevations) > 0 {
		opts = append(opts, headmodel.WithElevations(m.Elevations...))
	}
	return opts
}

// ReduceTargets returns the configured targets, or the canonical directions
// when none are listed.
func (c *Config) ReduceTargets() []reduce.Target {
	if len(c.Targets) == 0 {
		return reduce.DefaultTargets()
	}
	targets := make([]reduce.Target, len(c.Targets))
	for i, t := range c.Targets {
		targets[i] = reduce.Target{Name: t.Name, Azimuth: t.Azimuth}
	}
	return targets
}
