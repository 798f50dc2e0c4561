// Command eurofilt applies the One Euro filter to a timestamped CSV stream.
//
// Usage:
//
//	eurofilt [flags] [input.csv]
//
// The input (a file argument or stdin) must carry a header row followed by
// rows of the form
//
//	timestamp,v1,...,vD
//
// with timestamps in seconds, strictly increasing. The sampling rate of
// each step is derived from the timestamp delta, so irregular intervals are
// handled naturally. The filtered rows are written as CSV to stdout with
// the same shape.
//
// Examples:
//
//	eurofilt -mincutoff 1 -beta 0.007 pointer.csv
//	generate-trace | eurofilt -beta 0.02
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-oneeuro/dsp/core"
	"github.com/cwbudde/algo-oneeuro/dsp/oneeuro"
)

var (
	flagMinCutoff = flag.Float64("mincutoff", 1.0, "minimum cutoff frequency in Hz (smoothing at rest)")
	flagBeta      = flag.Float64("beta", 0.007, "cutoff slope (higher = less lag during fast motion)")
	flagDCutoff   = flag.Float64("dcutoff", 1.0, "derivative low-pass cutoff in Hz")
)

func main() {
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "eurofilt:", err)
	os.Exit(1)
}

func run(in io.Reader, out io.Writer) error {
	// The configured rate is never consulted: every row after the seeding
	// one carries its own rate via the timestamp delta.
	cfg := oneeuro.DefaultConfig()
	cfg.MinCutoff = *flagMinCutoff
	cfg.Beta = *flagBeta
	cfg.DCutoff = *flagDCutoff

	filter, err := oneeuro.New(cfg)
	if err != nil {
		return err
	}

	reader := csv.NewReader(in)
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return fmt.Errorf("need a timestamp column and at least one value column, got %d columns", len(header))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	var (
		state    *oneeuro.State
		prevTime float64
		line     = 1
	)
	row := make([]string, len(header))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		line++

		timestamp, sample, err := parseRecord(record, len(header)-1)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if state == nil {
			// First sample seeds the state directly.
			state, err = oneeuro.NewState(sample)
			if err != nil {
				return err
			}
		} else {
			delta := timestamp - prevTime
			if delta <= 0 {
				return fmt.Errorf("line %d: timestamps must be strictly increasing", line)
			}
			if err := filter.FilterRate(state, sample, 1/delta); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		}
		prevTime = timestamp

		row[0] = record[0]
		for i, v := range state.Data() {
			row[i+1] = strconv.FormatFloat(core.FlushDenormals(v), 'g', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseRecord(record []string, dim int) (float64, []float64, error) {
	if len(record) != dim+1 {
		return 0, nil, fmt.Errorf("expected %d columns, got %d", dim+1, len(record))
	}

	timestamp, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return 0, nil, fmt.Errorf("bad timestamp %q: %w", record[0], err)
	}

	sample := make([]float64, dim)
	for i := range sample {
		sample[i], err = strconv.ParseFloat(record[i+1], 64)
		if err != nil {
			return 0, nil, fmt.Errorf("bad value %q: %w", record[i+1], err)
		}
	}
	return timestamp, sample, nil
}
