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
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ajroetker/go-divconq/dnc"
	"github.com/ajroetker/go-divconq/dnc/contrib/closest"
	"github.com/ajroetker/go-divconq/dnc/contrib/datagen"
	"github.com/ajroetker/go-divconq/dnc/contrib/report"
	"github.com/ajroetker/go-divconq/dnc/contrib/selection"
	"github.com/ajroetker/go-divconq/dnc/contrib/sort"
)

// pointSpan is the side of the square random points are drawn from.
const pointSpan = 1000

type algorithm struct {
	key   string // command-line name
	label string // CSV name
	run   func(r *Runner, size int, c *dnc.Counters) error
}

var algorithms = []algorithm{
	{"mergesort", "MergeSort", func(r *Runner, size int, c *dnc.Counters) error {
		sort.MergeSortWithCounters(r.Gen.Ints(size, r.Bound), c)
		return nil
	}},
	{"quicksort", "QuickSort", func(r *Runner, size int, c *dnc.Counters) error {
		sort.QuickSortWithCounters(r.Gen.Ints(size, r.Bound), c)
		return nil
	}},
	{"select", "Select", func(r *Runner, size int, c *dnc.Counters) error {
		data := r.Gen.Ints(size, r.Bound)
		_, err := selection.SelectWithCounters(data, r.Gen.IntN(size), c)
		return err
	}},
	{"closest", "ClosestPair", func(r *Runner, size int, c *dnc.Counters) error {
		_, err := closest.FindWithCounters(r.Gen.Points(size, pointSpan), c)
		return err
	}},
}

// Runner executes measured runs one after another, each on fresh input.
type Runner struct {
	Gen       *datagen.Generator
	Bound     int64
	Log       *zap.Logger
	Formatter *report.Formatter
	Out       io.Writer // per-run summaries; nil discards them
}

// Run measures algorithm name ("all" for every algorithm) runs times at the
// given size.
func (r *Runner) Run(name string, size, runs int) ([]report.Row, error) {
	selected := algorithms
	if name != "all" {
		a, ok := lo.Find(algorithms, func(a algorithm) bool { return a.key == name })
		if !ok {
			keys := lo.Map(algorithms, func(a algorithm, _ int) string { return a.key })
			return nil, fmt.Errorf("unknown algorithm %q (want one of %s, all)", name, strings.Join(keys, ", "))
		}
		selected = []algorithm{a}
	}

	rows := make([]report.Row, 0, len(selected)*runs)
	for _, a := range selected {
		for i := 1; i <= runs; i++ {
			row, err := r.measure(a, size, i)
			if err != nil {
				return rows, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (r *Runner) measure(a algorithm, size, run int) (report.Row, error) {
	c := dnc.NewCounters()
	if err := a.run(r, size, c); err != nil {
		return report.Row{}, fmt.Errorf("%s run %d: %w", a.label, run, err)
	}

	row := report.Row{Algorithm: a.label, Size: size, Run: run, Stats: c.Snapshot()}
	r.Log.Debug("run complete",
		zap.String("algorithm", row.Algorithm),
		zap.Int("size", row.Size),
		zap.Int("run", row.Run),
		zap.Duration("elapsed", row.Stats.Elapsed),
		zap.Int64("comparisons", row.Stats.Comparisons),
		zap.Int64("arrayAccesses", row.Stats.ArrayAccesses),
		zap.Int64("allocations", row.Stats.Allocations),
		zap.Int64("swaps", row.Stats.Swaps),
		zap.Int("maxDepth", row.Stats.MaxDepth),
	)
	if r.Out != nil && r.Formatter != nil {
		fmt.Fprintln(r.Out, r.Formatter.Row(row))
	}
	return row, nil
}
