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

// Package datagen builds benchmark inputs: random, sorted, reversed and
// constant sequences, and random point sets.
//
// A Generator is deterministic for a given seed. Large inputs are filled in
// fixed-size chunks, each from its own PCG stream, so the output does not
// depend on how many workers the pool has.
package datagen

import (
	"math/rand/v2"

	"github.com/ajroetker/go-divconq/dnc/contrib/closest"
	"github.com/ajroetker/go-divconq/dnc/contrib/workerpool"
)

// chunkSize is the number of elements filled from one stream.
const chunkSize = 1 << 14

// Generator produces reproducible inputs. It is not safe for concurrent use.
type Generator struct {
	r    *rand.Rand
	pool *workerpool.Pool
}

// New returns a Generator seeded with seed. pool may be nil, in which case
// every chunk is filled on the calling goroutine.
func New(seed uint64, pool *workerpool.Pool) *Generator {
	return &Generator{
		r:    rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15)),
		pool: pool,
	}
}

// fill calls fn for each chunk of [0, n) with a source private to that chunk.
func (g *Generator) fill(n int, fn func(r *rand.Rand, start, end int)) {
	stream := g.r.Uint64()
	numChunks := (n + chunkSize - 1) / chunkSize
	g.pool.ForEach(numChunks, func(chunk int) {
		start := chunk * chunkSize
		end := min(start+chunkSize, n)
		fn(rand.New(rand.NewPCG(stream, uint64(chunk))), start, end)
	})
}

// Ints returns n values drawn uniformly from [0, bound). It panics if
// bound <= 0.
func (g *Generator) Ints(n int, bound int64) []int64 {
	if bound <= 0 {
		panic("datagen: bound must be positive")
	}
	data := make([]int64, n)
	g.fill(n, func(r *rand.Rand, start, end int) {
		for i := start; i < end; i++ {
			data[i] = r.Int64N(bound)
		}
	})
	return data
}

// IntsRange returns n values drawn uniformly from [lo, hi]. It panics if
// hi < lo.
func (g *Generator) IntsRange(n int, lo, hi int64) []int64 {
	if hi < lo {
		panic("datagen: empty range")
	}
	span := hi - lo + 1
	data := make([]int64, n)
	g.fill(n, func(r *rand.Rand, start, end int) {
		for i := start; i < end; i++ {
			data[i] = lo + r.Int64N(span)
		}
	})
	return data
}

// Points returns n points with both coordinates uniform in [0, span).
func (g *Generator) Points(n int, span float64) []closest.Point {
	points := make([]closest.Point, n)
	g.fill(n, func(r *rand.Rand, start, end int) {
		for i := start; i < end; i++ {
			points[i] = closest.Point{X: r.Float64() * span, Y: r.Float64() * span}
		}
	})
	return points
}

// IntN returns a value in [0, n), for choosing ranks and indices.
func (g *Generator) IntN(n int) int {
	return g.r.IntN(n)
}

// Shuffle permutes data[start..end] (inclusive) uniformly.
func (g *Generator) Shuffle(data []int64, start, end int) {
	for i := end; i > start; i-- {
		j := start + g.r.IntN(i-start+1)
		data[i], data[j] = data[j], data[i]
	}
}

// Sorted returns 0, 1, ..., n-1.
func Sorted(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(i)
	}
	return data
}

// Reversed returns n-1, n-2, ..., 0.
func Reversed(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(n - i - 1)
	}
	return data
}

// Constant returns n copies of v.
func Constant(n int, v int64) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = v
	}
	return data
}
