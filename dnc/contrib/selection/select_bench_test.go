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

package selection

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func BenchmarkSelect(b *testing.B) {
	r := rand.New(rand.NewPCG(42, 0))
	for _, n := range []int{1000, 10000, 100000} {
		data := randomInt64s(r, n, 1000)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				_, _ = Select(data, n/2)
			}
		})
	}
}

// BenchmarkSortThenIndex is the baseline: sort a copy and index it.
func BenchmarkSortThenIndex(b *testing.B) {
	r := rand.New(rand.NewPCG(42, 0))
	for _, n := range []int{1000, 10000, 100000} {
		data := randomInt64s(r, n, 1000)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				c := slices.Clone(data)
				slices.Sort(c)
				_ = c[n/2]
			}
		})
	}
}
