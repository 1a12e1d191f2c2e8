// Package sort provides instrumented merge sort and quicksort over []int64.
//
// # Algorithms
//
//   - MergeSort: top-down merge sort with one scratch buffer per call and an
//     insertion-sort cutoff for ranges of 15 elements or fewer.
//   - QuickSort: randomized-pivot Lomuto quicksort that recurses on the
//     smaller partition and loops on the larger one, so stack depth stays
//     O(log n) even when comparisons degrade to O(n²).
//
// The insertion sort and partition kernels are exported because
// dnc/contrib/selection builds on them.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-divconq/dnc/contrib/sort"
//
//	func Process(data []int64) {
//	    sort.MergeSort(data) // in-place ascending sort
//	}
//
//	func Measure(data []int64) dnc.Stats {
//	    c := dnc.NewCounters()
//	    sort.QuickSortWithCounters(data, c)
//	    return c.Snapshot()
//	}
//
// A nil or single-element slice is already sorted; both sorts return without
// touching the counters.
package sort
