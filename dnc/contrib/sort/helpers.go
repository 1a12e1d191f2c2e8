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

// Helper kernels shared by the sorts and by selection.

// InsertionSortRange sorts data[lo..hi] (inclusive) by shifting larger
// elements right. Every probe is a comparison; every shift is one read and
// one write.
func InsertionSortRange(data []int64, lo, hi int, c *dnc.Counters) {
	for i := lo + 1; i <= hi; i++ {
		key := data[i]
		c.AddArrayAccesses(1)

		j := i - 1
		for j >= lo {
			c.Compare(1)
			if data[j] <= key {
				break
			}
			data[j+1] = data[j]
			c.AddArrayAccesses(2)
			j--
		}

		data[j+1] = key
		c.AddArrayAccesses(1)
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int64) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func swap(data []int64, i, j int, c *dnc.Counters) {
	data[i], data[j] = data[j], data[i]
	c.Swap()
}
