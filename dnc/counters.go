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

package dnc

import (
	"fmt"
	"time"

	"go.uber.org/atomic"
)

// Counters accumulates the work done by one algorithm invocation.
//
// The zero value is ready to use. A nil *Counters is valid everywhere and
// ignores every call, which is how the uninstrumented entry points run.
type Counters struct {
	comparisons   atomic.Int64
	arrayAccesses atomic.Int64
	allocations   atomic.Int64
	swaps         atomic.Int64

	startTime atomic.Time
	endTime   atomic.Time

	depth DepthTracker
}

// NewCounters returns a fresh Counters.
func NewCounters() *Counters {
	return &Counters{}
}

// Start resets every counter and records the start timestamp.
func (c *Counters) Start() {
	if c == nil {
		return
	}
	c.Reset()
	c.startTime.Store(time.Now())
}

// Stop records the end timestamp.
func (c *Counters) Stop() {
	if c == nil {
		return
	}
	c.endTime.Store(time.Now())
}

// Reset zeroes all counters, both timestamps and the depth tracker.
func (c *Counters) Reset() {
	if c == nil {
		return
	}
	c.comparisons.Store(0)
	c.arrayAccesses.Store(0)
	c.allocations.Store(0)
	c.swaps.Store(0)
	c.startTime.Store(time.Time{})
	c.endTime.Store(time.Time{})
	c.depth.Reset()
}

// Elapsed returns the time between Start and Stop. It is zero if either was
// not called or Stop came first.
func (c *Counters) Elapsed() time.Duration {
	if c == nil {
		return 0
	}
	start, end := c.startTime.Load(), c.endTime.Load()
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return max(end.Sub(start), 0)
}

// AddComparisons adds n to the comparison counter.
func (c *Counters) AddComparisons(n int64) {
	if c == nil {
		return
	}
	c.comparisons.Add(n)
}

// AddArrayAccesses adds n to the array access counter.
func (c *Counters) AddArrayAccesses(n int64) {
	if c == nil {
		return
	}
	c.arrayAccesses.Add(n)
}

// AddAllocations adds n to the allocation counter. Allocations are counted in
// elements, not bytes.
func (c *Counters) AddAllocations(n int64) {
	if c == nil {
		return
	}
	c.allocations.Add(n)
}

// AddSwaps adds n to the swap counter.
func (c *Counters) AddSwaps(n int64) {
	if c == nil {
		return
	}
	c.swaps.Add(n)
}

// Compare counts one comparison and the given number of element reads.
func (c *Counters) Compare(reads int64) {
	if c == nil {
		return
	}
	c.comparisons.Inc()
	c.arrayAccesses.Add(reads)
}

// Swap counts one swap, which reads and writes both slots.
func (c *Counters) Swap() {
	if c == nil {
		return
	}
	c.swaps.Inc()
	c.arrayAccesses.Add(4)
}

// EnterRecursion marks entry into a recursive frame and returns the new depth.
func (c *Counters) EnterRecursion() int {
	if c == nil {
		return 0
	}
	return c.depth.Enter()
}

// ExitRecursion marks exit from a recursive frame and returns the new depth.
func (c *Counters) ExitRecursion() int {
	if c == nil {
		return 0
	}
	return c.depth.Exit()
}

func (c *Counters) Comparisons() int64 {
	if c == nil {
		return 0
	}
	return c.comparisons.Load()
}

func (c *Counters) ArrayAccesses() int64 {
	if c == nil {
		return 0
	}
	return c.arrayAccesses.Load()
}

func (c *Counters) Allocations() int64 {
	if c == nil {
		return 0
	}
	return c.allocations.Load()
}

func (c *Counters) Swaps() int64 {
	if c == nil {
		return 0
	}
	return c.swaps.Load()
}

// Depth returns the recursion depth tracker. It is nil for a nil Counters.
func (c *Counters) Depth() *DepthTracker {
	if c == nil {
		return nil
	}
	return &c.depth
}

// Stats is a plain copy of a Counters, suitable for reporting.
type Stats struct {
	Comparisons   int64
	ArrayAccesses int64
	Allocations   int64
	Swaps         int64
	Elapsed       time.Duration
	MaxDepth      int
}

// ElapsedMillis returns Elapsed as fractional milliseconds.
func (s Stats) ElapsedMillis() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// Snapshot copies the current totals.
func (c *Counters) Snapshot() Stats {
	return Stats{
		Comparisons:   c.Comparisons(),
		ArrayAccesses: c.ArrayAccesses(),
		Allocations:   c.Allocations(),
		Swaps:         c.Swaps(),
		Elapsed:       c.Elapsed(),
		MaxDepth:      c.Depth().Max(),
	}
}

// String summarizes the counters on one line.
func (c *Counters) String() string {
	s := c.Snapshot()
	return fmt.Sprintf("Time: %.3fms, Comparisons: %d, ArrayAccesses: %d, Allocations: %d, Swaps: %d | %s",
		s.ElapsedMillis(), s.Comparisons, s.ArrayAccesses, s.Allocations, s.Swaps, c.Depth())
}
