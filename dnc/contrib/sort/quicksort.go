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

import (
	"math/rand/v2"

	"github.com/ajroetker/go-divconq/dnc"
)

// QuickSort sorts data in place using the process-wide random source for
// pivots.
func QuickSort(data []int64) {
	QuickSortRand(data, nil, nil)
}

// QuickSortWithCounters sorts data in place, recording its work in c.
func QuickSortWithCounters(data []int64, c *dnc.Counters) {
	QuickSortRand(data, nil, c)
}

// QuickSortRand sorts data in place, drawing pivots from r. Pinning r makes
// the partition sequence, and so every counter, reproducible. A nil r uses
// the process-wide source; a nil c disables counting.
func QuickSortRand(data []int64, r *rand.Rand, c *dnc.Counters) {
	n := len(data)
	if n <= 1 {
		return
	}

	c.Start()
	quickSort(data, 0, n-1, r, c)
	c.Stop()
}

// quickSort recurses on the smaller side of each partition and loops on the
// larger, bounding the stack at O(log n).
func quickSort(data []int64, left, right int, r *rand.Rand, c *dnc.Counters) {
	for left < right {
		p := RandomPartition(data, left, right, r, c)

		c.EnterRecursion()
		if p-left < right-p {
			quickSort(data, left, p-1, r, c)
			left = p + 1
		} else {
			quickSort(data, p+1, right, r, c)
			right = p - 1
		}
		c.ExitRecursion()
	}
}
