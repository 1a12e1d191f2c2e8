// Copyright 2025 go-divconq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-divconq/dnc/contrib/datagen"
	"github.com/ajroetker/go-divconq/dnc/contrib/report"
	"github.com/ajroetker/go-divconq/dnc/contrib/workerpool"
)

const (
	defaultSize   = 1000
	defaultRuns   = 1
	defaultOutput = "results.csv"
)

type options struct {
	seed      uint64
	bound     int64
	workers   int
	timestamp bool
	verbose   bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.Uint64Var(&o.seed, "seed", 42, "seed for input generation")
	fs.Int64Var(&o.bound, "bound", 1000, "random values are drawn from [0, bound)")
	fs.IntVar(&o.workers, "workers", 0, "goroutines used to generate inputs (0 means GOMAXPROCS)")
	fs.BoolVar(&o.timestamp, "timestamp", false, "append _YYYYMMDD_HHMMSS to the output file name")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every run and host details")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	names := append(lo.Map(algorithms, func(a algorithm, _ int) string { return a.key }), "all")

	cmd := &cobra.Command{
		Use:   "dncbench <algorithm> [size] [runs] [output]",
		Short: "Divide-and-conquer algorithms performance tool",
		Long: "Runs one of the instrumented algorithms on fresh random input for each run\n" +
			"and writes comparisons, array accesses, allocations, swaps, time and maximum\n" +
			"recursion depth to a CSV file.\n\n" +
			"Algorithms: " + strings.Join(names, ", "),
		Example: "  dncbench mergesort 10000 5 results.csv\n" +
			"  dncbench all 1000 10\n" +
			"  dncbench closest 500",
		Args:         cobra.RangeArgs(1, 4),
		ValidArgs:    names,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), o, args)
		},
	}
	addFlags(cmd.Flags(), o)
	return cmd
}

type invocation struct {
	algorithm string
	size      int
	runs      int
	output    string
}

func parseArgs(args []string) (invocation, error) {
	inv := invocation{
		algorithm: strings.ToLower(args[0]),
		size:      defaultSize,
		runs:      defaultRuns,
		output:    defaultOutput,
	}

	var err error
	if len(args) > 1 {
		if inv.size, err = strconv.Atoi(args[1]); err != nil {
			return inv, fmt.Errorf("invalid size %q: %w", args[1], err)
		}
	}
	if len(args) > 2 {
		if inv.runs, err = strconv.Atoi(args[2]); err != nil {
			return inv, fmt.Errorf("invalid runs %q: %w", args[2], err)
		}
	}
	if len(args) > 3 {
		inv.output = args[3]
	}

	if inv.size <= 0 {
		return inv, fmt.Errorf("size must be positive, got %d", inv.size)
	}
	if inv.runs <= 0 {
		return inv, fmt.Errorf("runs must be positive, got %d", inv.runs)
	}
	return inv, nil
}

func run(out io.Writer, o *options, args []string) error {
	inv, err := parseArgs(args)
	if err != nil {
		return err
	}
	if o.bound <= 0 {
		return fmt.Errorf("bound must be positive, got %d", o.bound)
	}

	log, err := newLogger(o.verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck
	logHost(log)

	pool := workerpool.New(o.workers)
	defer pool.Close()

	f := report.NewFormatter(language.English)
	r := &Runner{
		Gen:       datagen.New(o.seed, pool),
		Bound:     o.bound,
		Log:       log,
		Formatter: f,
		Out:       out,
	}

	fmt.Fprintf(out, "Running %s with size %d for %d runs\n", inv.algorithm, inv.size, inv.runs)
	rows, err := r.Run(inv.algorithm, inv.size, inv.runs)
	if err != nil {
		return err
	}

	path := inv.output
	if o.timestamp {
		path = report.TimestampedPath(path, time.Now())
	}
	if err := report.WriteFile(path, rows); err != nil {
		return err
	}
	log.Debug("results written", zap.String("path", path), zap.Int("rows", len(rows)))

	for _, a := range report.Summarize(rows) {
		fmt.Fprintln(out, f.Aggregate(a))
	}
	fmt.Fprintf(out, "Results written to %s\n", path)
	return nil
}
