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

package sort

import "github.com/ajroetker/go-divconq/dnc"

// mergeCutoff: ranges this size or smaller go to insertion sort.
const mergeCutoff = 15

// MergeSort sorts data in place.
func MergeSort(data []int64) {
	MergeSortWithCounters(data, nil)
}

// MergeSortWithCounters sorts data in place, recording its work in c.
//
// Each recursive frame counts toward the depth, including the leaf frames
// that hand their range to insertion sort.
func MergeSortWithCounters(data []int64, c *dnc.Counters) {
	n := len(data)
	if n <= 1 {
		return
	}

	c.Start()
	scratch := make([]int64, n)
	c.AddAllocations(int64(n))
	mergeSort(data, scratch, 0, n-1, c)
	c.Stop()
}

func mergeSort(data, scratch []int64, lo, hi int, c *dnc.Counters) {
	c.EnterRecursion()
	defer c.ExitRecursion()

	if hi-lo+1 <= mergeCutoff {
		InsertionSortRange(data, lo, hi, c)
		return
	}

	mid := lo + (hi-lo)/2
	mergeSort(data, scratch, lo, mid, c)
	mergeSort(data, scratch, mid+1, hi, c)
	merge(data, scratch, lo, mid, hi, c)
}

// merge combines the sorted runs data[lo..mid] and data[mid+1..hi]. Both runs
// are copied into the same positions of scratch and merged back; ties take
// the left element.
func merge(data, scratch []int64, lo, mid, hi int, c *dnc.Counters) {
	copy(scratch[lo:hi+1], data[lo:hi+1])
	c.AddArrayAccesses(2 * int64(hi-lo+1))

	i, j, k := lo, mid+1, lo
	for i <= mid && j <= hi {
		c.Compare(2)
		if scratch[i] <= scratch[j] {
			data[k] = scratch[i]
			i++
		} else {
			data[k] = scratch[j]
			j++
		}
		c.AddArrayAccesses(1)
		k++
	}

	for ; i <= mid; i, k = i+1, k+1 {
		data[k] = scratch[i]
		c.AddArrayAccesses(2)
	}
	for ; j <= hi; j, k = j+1, k+1 {
		data[k] = scratch[j]
		c.AddArrayAccesses(2)
	}
}
