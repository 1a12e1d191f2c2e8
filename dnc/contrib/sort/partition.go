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

// Partition performs a Lomuto partition of data[left..right] around the
// value at pivotIndex and returns the pivot's final position p:
//   - data[left:p] <= pivot
//   - data[p] == pivot
//   - data[p+1:right+1] > pivot
//
// Moving the pivot to the end, every element comparison, every swap and the
// final pivot placement are counted.
func Partition(data []int64, left, right, pivotIndex int, c *dnc.Counters) int {
	swap(data, pivotIndex, right, c)
	pivot := data[right]

	i := left - 1
	for j := left; j < right; j++ {
		c.Compare(2)
		if data[j] <= pivot {
			i++
			swap(data, i, j, c)
		}
	}

	swap(data, i+1, right, c)
	return i + 1
}

// RandomPartition partitions data[left..right] around a uniformly chosen
// element. A nil r draws from the process-wide source.
func RandomPartition(data []int64, left, right int, r *rand.Rand, c *dnc.Counters) int {
	return Partition(data, left, right, left+intN(r, right-left+1), c)
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
