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

// Command dncbench measures the divide-and-conquer algorithms on random
// inputs and writes one CSV row per run.
//
// Usage:
//
//	dncbench <algorithm> [size] [runs] [output]
//	dncbench mergesort 10000 5 results.csv
//	dncbench all 1000 10 --seed 7 --timestamp
//	dncbench closest 500
//
// Algorithms: mergesort, quicksort, select, closest, all. size defaults to
// 1000, runs to 1 and output to results.csv. The CSV header is
//
//	Algorithm,Size,Run,Time(ms),Comparisons,ArrayAccesses,Allocations,Swaps,MaxDepth
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
