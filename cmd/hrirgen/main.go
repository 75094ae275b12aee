// Command hrirgen builds an HRTB filter table for package hrir.
//
// It synthesizes a dense spherical-head measurement set, reduces it to the
// canonical directions and writes the table artifact.
//
// Usage:
//
//	hrirgen [flags]
//
// Examples:
//
//	hrirgen -out table.hrtb
//	hrirgen -config kemar-like.yaml -out table.hrtb -report
//	hrirgen -report -out /dev/null
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-hrir/dsp/spatial/headmodel"
	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir"
	"github.com/cwbudde/algo-hrir/dsp/spatial/hrir/reduce"
	"github.com/cwbudde/algo-hrir/measure/cues"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (defaults match the embedded table)")
	outPath := flag.String("out", "table.hrtb", "output HRTB file")
	report := flag.Bool("report", false, "print interaural cues for every direction")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hrirgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reduces a spherical-head HRIR set to the canonical directions\n")
		fmt.Fprintf(os.Stderr, "and writes an HRTB table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("hrirgen: ")

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	red, table, err := generate(cfg)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range red.Selections {
		log.Printf("%-15s target %7.1f°: measurement %4d at az=%6.1f° el=%5.1f° (score %.2f)",
			s.Target.Name, s.Target.Azimuth, s.Index, s.Azimuth, s.Elevation, s.Score)
	}

	var buf bytes.Buffer
	if err := hrir.WriteTable(&buf, table); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %s (%d bytes)", *outPath, buf.Len())

	if *report {
		if err := printReport(os.Stdout, table); err != nil {
			log.Fatal(err)
		}
	}
}

// generate runs the model, the reduction and the table conversion. Nothing
// is returned unless every step succeeds.
func generate(cfg *Config) (*reduce.Reduction, *hrir.Table, error) {
	model, err := headmodel.New(cfg.ModelOptions()...)
	if err != nil {
		return nil, nil, err
	}
	red, err := reduce.ReduceSource(model, cfg.ReduceTargets(), reduce.WithLength(cfg.Length))
	if err != nil {
		return nil, nil, err
	}
	table, err := red.Table(cfg.SampleRate)
	if err != nil {
		return nil, nil, err
	}
	return red, table, nil
}

func printReport(w io.Writer, table *hrir.Table) error {
	analyzer := cues.NewAnalyzer(float64(table.SampleRate()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Direction\tAzimuth\tE(L)\tE(R)\tILD dB\tHF ILD dB\tITD µs\t\n")
	for _, d := range hrir.Directions() {
		pair := table.Pair(d)
		m, err := analyzer.Analyze(pair.Left[:], pair.Right[:])
		if err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%.4f\t%.4f\t%.2f\t%.2f\t%.0f\t\n",
			d, d.Azimuth(), m.EnergyLeft, m.EnergyRight, m.ILD, m.HighBandILD, m.ITD*1e6)
	}
	return tw.Flush()
}
