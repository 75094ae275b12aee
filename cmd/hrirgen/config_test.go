package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir/reduce"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SampleRate != 48000 || cfg.Length != hrir.Length {
		t.Fatalf("SampleRate/Length = %d/%d", cfg.SampleRate, cfg.Length)
	}
	if cfg.Model.HeadRadius != 0.09 || cfg.Model.AzimuthStep != 15 || len(cfg.Model.Elevations) != 3 {
		t.Fatalf("Model = %+v", cfg.Model)
	}
	if len(cfg.ModelOptions()) != 5 {
		t.Fatalf("ModelOptions() returned %d options, want 5", len(cfg.ModelOptions()))
	}
	if got := cfg.ReduceTargets(); len(got) != hrir.NumDirections {
		t.Fatalf("ReduceTargets() = %d targets, want the canonical %d", len(got), hrir.NumDirections)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join("testdata", "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("sample_rate: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("broken yaml: error = %v", err)
	}
}

func TestGenerateDefault(t *testing.T) {
	red, table, err := generate(DefaultConfig())
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if table.SampleRate() != hrir.DefaultSampleRate {
		t.Fatalf("SampleRate() = %d", table.SampleRate())
	}
	for _, s := range red.Selections {
		if s.Score != 0 {
			t.Errorf("%s selected az %v el %v", s.Target.Name, s.Azimuth, s.Elevation)
		}
	}

	var buf bytes.Buffer
	if err := hrir.WriteTable(&buf, table); err != nil {
		t.Fatal(err)
	}
	decoded, err := hrir.ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	// The embedded table may come from a build with a different exp
	// approximation, so compare energies rather than samples.
	for _, d := range hrir.Directions() {
		got, want := decoded.Pair(d), hrir.Default().Pair(d)
		for _, e := range [][2]float64{
			{got.Left.Energy(), want.Left.Energy()},
			{got.Right.Energy(), want.Right.Energy()},
		} {
			if math.Abs(e[0]-e[1]) > 0.02*e[1] {
				t.Errorf("%s energy %.4f, embedded table has %.4f", d, e[0], e[1])
			}
		}
	}
}

func TestGenerateFromFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "small.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	red, table, err := generate(cfg)
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	if table.SampleRate() != 48000 {
		t.Fatalf("SampleRate() = %d", table.SampleRate())
	}
	if s, ok := red.Lookup("front-left-45"); !ok || s.Azimuth != 45 || s.Elevation != 0 {
		t.Fatalf("front-left-45 selection = %+v", s)
	}
}

func TestGenerateRejectsUnknownTarget(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "bad_target.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := generate(cfg); !errors.Is(err, hrir.ErrDirection) {
		t.Fatalf("generate() error = %v, want hrir.ErrDirection", err)
	}
}

func TestGenerateRejectsLongLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = hrir.MaxLength + 1
	if _, _, err := generate(cfg); !errors.Is(err, reduce.ErrLengthExceeded) {
		t.Fatalf("generate() error = %v, want reduce.ErrLengthExceeded", err)
	}
}

func TestPrintReport(t *testing.T) {
	var out bytes.Buffer
	if err := printReport(&out, hrir.Default()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != hrir.NumDirections+1 {
		t.Fatalf("report has %d lines, want %d", len(lines), hrir.NumDirections+1)
	}
	if !strings.Contains(lines[0], "ILD dB") || !strings.Contains(out.String(), "rear-left") {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
}
