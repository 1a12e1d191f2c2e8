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

// Package selection finds order statistics in linear worst-case time using
// median-of-medians pivots.
//
// The block-median sorts and the partition kernel come from
// dnc/contrib/sort, so a selection run and a sort run count the same things
// the same way. The nested selection over block medians is the same
// algorithm and accumulates into the same Counters.
package selection

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-divconq/dnc"
	"github.com/ajroetker/go-divconq/dnc/contrib/sort"
)

// groupSize is the block width used to compute medians of medians.
const groupSize = 5

// Select returns the element of 0-indexed rank k in data. data is not
// modified.
func Select(data []int64, k int) (int64, error) {
	return SelectWithCounters(data, k, nil)
}

// SelectWithCounters is Select recording its work in c. The working copy
// counts as n allocations.
func SelectWithCounters(data []int64, k int, c *dnc.Counters) (int64, error) {
	if err := validate(data, k); err != nil {
		return 0, err
	}
	if len(data) == 1 {
		return data[0], nil
	}

	c.Start()
	work := slices.Clone(data)
	c.AddAllocations(int64(len(work)))
	c.AddArrayAccesses(2 * int64(len(work)))
	v := selectRange(work, 0, len(work)-1, k, c)
	c.Stop()
	return v, nil
}

// SelectInPlace is Select working directly on data, which is left
// partitioned around the answer in an unspecified order.
func SelectInPlace(data []int64, k int) (int64, error) {
	return SelectInPlaceWithCounters(data, k, nil)
}

// SelectInPlaceWithCounters is SelectInPlace recording its work in c.
func SelectInPlaceWithCounters(data []int64, k int, c *dnc.Counters) (int64, error) {
	if err := validate(data, k); err != nil {
		return 0, err
	}
	if len(data) == 1 {
		return data[0], nil
	}

	c.Start()
	v := selectRange(data, 0, len(data)-1, k, c)
	c.Stop()
	return v, nil
}

// Median returns the lower median of data without modifying it.
func Median(data []int64) (int64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: median of empty sequence", dnc.ErrDomain)
	}
	return Select(data, (len(data)-1)/2)
}

func validate(data []int64, k int) error {
	if data == nil {
		return fmt.Errorf("%w: sequence is nil", dnc.ErrDomain)
	}
	if k < 0 || k >= len(data) {
		return fmt.Errorf("%w: k=%d must be in range [0, %d]", dnc.ErrDomain, k, len(data)-1)
	}
	return nil
}

// selectRange returns the element of rank k within data[left..right].
func selectRange(data []int64, left, right, k int, c *dnc.Counters) int64 {
	if left == right {
		c.AddArrayAccesses(1)
		return data[left]
	}

	c.EnterRecursion()
	defer c.ExitRecursion()

	pivotIndex := medianOfMedians(data, left, right, c)
	p := sort.Partition(data, left, right, pivotIndex, c)
	c.AddArrayAccesses(1)
	pivot := data[p]

	leftSize := p - left
	if k > leftSize {
		return selectRange(data, p+1, right, k-leftSize-1, c)
	}
	if k == leftSize {
		return pivot
	}

	// Lomuto sends every copy of the pivot left. Pull them next to p so
	// inputs with many duplicates still shrink geometrically.
	q := gatherEqual(data, left, p, pivot, c)
	if k >= q-left {
		return pivot
	}
	return selectRange(data, left, q-1, k, c)
}

// medianOfMedians returns the index of a pivot in data[left..right] that
// has at least ~3/10 of the range on each side.
func medianOfMedians(data []int64, left, right int, c *dnc.Counters) int {
	n := right - left + 1
	if n <= groupSize {
		sort.InsertionSortRange(data, left, right, c)
		return left + (n-1)/2
	}

	numGroups := (n + groupSize - 1) / groupSize
	medians := make([]int64, numGroups)
	c.AddAllocations(int64(numGroups))

	for g := range numGroups {
		lo := left + g*groupSize
		hi := min(lo+groupSize-1, right)
		sort.InsertionSortRange(data, lo, hi, c)
		medians[g] = data[lo+(hi-lo)/2]
		c.AddArrayAccesses(2)
	}

	pivot := selectRange(medians, 0, numGroups-1, (numGroups-1)/2, c)
	return indexOf(data, left, right, pivot, c)
}

// indexOf returns the first index in data[left..right] holding v. v is
// always a block median copied out of this range.
func indexOf(data []int64, left, right int, v int64, c *dnc.Counters) int {
	for i := left; i <= right; i++ {
		c.Compare(1)
		if data[i] == v {
			return i
		}
	}
	panic("selection: pivot not found in range")
}

// gatherEqual moves every element equal to pivot in data[left..p-1] to the
// block ending at p and returns the block's first index q. Afterwards
// data[left:q] < pivot and data[q:p+1] == pivot.
func gatherEqual(data []int64, left, p int, pivot int64, c *dnc.Counters) int {
	q := p
	for i := p - 1; i >= left; i-- {
		c.Compare(1)
		if data[i] == pivot {
			q--
			data[i], data[q] = data[q], data[i]
			c.Swap()
		}
	}
	return q
}
