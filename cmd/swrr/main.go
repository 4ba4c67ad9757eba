// Command swrr computes the steering wheel reversal rate of recorded
// steering-angle traces.
//
// Usage:
//
//	swrr [flags] file [file ...]
//
// Each input file holds one recording: angle samples in degrees, one per
// line or separated by whitespace/commas. Lines starting with '#' are
// skipped.
//
// Examples:
//
//	swrr -rate 60 -gap 2 drive.txt
//	swrr -rate 60 -gap 0.5 -cutoff 0.6 baseline.txt distracted.txt
//	swrr -rate 120 -resample 60 -gap 2 -stats drive.csv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-swrr/measure/swrr"
	"github.com/cwbudde/algo-swrr/stats/steering"
)

func main() {
	rate := flag.Float64("rate", 60, "sample rate of the recordings in Hz")
	gap := flag.Float64("gap", 2, "gap size in degrees")
	cutoff := flag.Float64("cutoff", 0, "lowpass cutoff in Hz (0 = no filtering)")
	resampleRate := flag.Float64("resample", 0, "resample rate in Hz (0 = keep input rate)")
	order := flag.Int("order", 2, "lowpass filter order")
	stats := flag.Bool("stats", false, "print descriptive statistics per recording")
	quiet := flag.Bool("quiet", false, "suppress non-fatal warnings")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: swrr [flags] file [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "Computes the steering wheel reversal rate (reversals/minute)\n")
		fmt.Fprintf(os.Stderr, "of steering-angle recordings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  swrr -rate 60 -gap 2 drive.txt\n")
		fmt.Fprintf(os.Stderr, "  swrr -rate 60 -gap 0.5 -cutoff 0.6 baseline.txt distracted.txt\n")
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := swrr.Config{
		SampleRate:   *rate,
		GapSize:      *gap,
		CutoffFreq:   *cutoff,
		ResampleRate: *resampleRate,
		FilterOrder:  *order,
	}

	var opts []swrr.Option
	if *quiet {
		opts = append(opts,
			swrr.WithWarningSuppressed(swrr.WarnSlowResample),
			swrr.WithWarningSuppressed(swrr.WarnDesignFallback))
	}
	calc := swrr.NewCalculator(cfg, opts...)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "file\tsamples\tduration\treversals\trate/min")

	exitCode := 0
	for _, name := range files {
		sig, err := readRecording(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swrr: %s: %v\n", name, err)
			exitCode = 1
			continue
		}

		res, err := calc.Compute(sig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swrr: %s: %v\n", name, err)
			exitCode = 1
			continue
		}

		for _, warning := range res.Warnings {
			fmt.Fprintf(os.Stderr, "swrr: %s: warning (%s): %s\n", name, warning.Code, warning.Message)
		}

		fmt.Fprintf(w, "%s\t%d\t%.1fs\t%d\t%.2f\n",
			name, len(sig), res.Duration, res.ReversalCount, res.Rate)

		if *stats {
			printStats(w, steering.Calculate(sig, *rate))
		}
	}

	w.Flush()
	os.Exit(exitCode)
}

func printStats(w *tabwriter.Writer, s steering.Stats) {
	fmt.Fprintf(w, "\tmean\t%.3f°\tRMS\t%.3f°\n", s.Mean, s.RMS)
	fmt.Fprintf(w, "\trange\t%.3f°\tpeak\t%.3f°\n", s.Range, s.Peak)
	fmt.Fprintf(w, "\tpeak freq\t%.3f Hz\tmean freq\t%.3f Hz\n", s.PeakFreq, s.MeanFreq)
	fmt.Fprintf(w, "\tHF share\t%.1f%%\tzero crossings\t%d\n", 100*s.HighFreqRatio, s.ZeroCrossings)
}

// readRecording parses angle samples from a text file: floats separated by
// newlines, whitespace, commas or semicolons; '#' starts a comment line.
func readRecording(name string) ([]float64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var samples []float64

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		}) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad sample %q: %w", field, err)
			}
			samples = append(samples, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
