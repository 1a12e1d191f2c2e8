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

package report

import (
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Aggregate summarizes all runs of one algorithm at one size.
type Aggregate struct {
	Algorithm         string
	Size              int
	Runs              int
	MeanMillis        float64
	MeanComparisons   float64
	MeanArrayAccesses float64
	MeanSwaps         float64
	MaxDepth          int
}

// Summarize groups rows by algorithm and size, in order of first
// appearance.
func Summarize(rows []Row) []Aggregate {
	type key struct {
		algorithm string
		size      int
	}
	keyOf := func(r Row) key { return key{r.Algorithm, r.Size} }

	groups := lo.GroupBy(rows, keyOf)
	keys := lo.Uniq(lo.Map(rows, func(r Row, _ int) key { return keyOf(r) }))

	return lo.Map(keys, func(k key, _ int) Aggregate {
		g := groups[k]
		runs := float64(len(g))
		return Aggregate{
			Algorithm:         k.algorithm,
			Size:              k.size,
			Runs:              len(g),
			MeanMillis:        lo.SumBy(g, func(r Row) float64 { return r.Stats.ElapsedMillis() }) / runs,
			MeanComparisons:   float64(lo.SumBy(g, func(r Row) int64 { return r.Stats.Comparisons })) / runs,
			MeanArrayAccesses: float64(lo.SumBy(g, func(r Row) int64 { return r.Stats.ArrayAccesses })) / runs,
			MeanSwaps:         float64(lo.SumBy(g, func(r Row) int64 { return r.Stats.Swaps })) / runs,
			MaxDepth:          lo.Max(lo.Map(g, func(r Row, _ int) int { return r.Stats.MaxDepth })),
		}
	})
}

// Formatter renders rows and aggregates for people, with locale digit
// grouping.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a Formatter for tag. English is used when tag is
// the zero value.
func NewFormatter(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.English
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

// Row formats one run.
func (f *Formatter) Row(r Row) string {
	s := r.Stats
	return f.p.Sprintf("Run %d: Time: %vms, Comparisons: %d, ArrayAccesses: %d, Allocations: %d, Swaps: %d, MaxDepth: %d",
		r.Run, millis(s.ElapsedMillis()), s.Comparisons, s.ArrayAccesses, s.Allocations, s.Swaps, s.MaxDepth)
}

// Aggregate formats one summary line.
func (f *Formatter) Aggregate(a Aggregate) string {
	return f.p.Sprintf("%s n=%d runs=%d: mean %vms, %v comparisons, %v array accesses, %v swaps, max depth %d",
		a.Algorithm, a.Size, a.Runs, millis(a.MeanMillis),
		number.Decimal(a.MeanComparisons, number.MaxFractionDigits(0)),
		number.Decimal(a.MeanArrayAccesses, number.MaxFractionDigits(0)),
		number.Decimal(a.MeanSwaps, number.MaxFractionDigits(0)),
		a.MaxDepth)
}

func millis(v float64) number.Formatter {
	return number.Decimal(v, number.MinFractionDigits(3), number.MaxFractionDigits(3))
}
