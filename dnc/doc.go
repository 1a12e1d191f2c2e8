// Package dnc holds the instrumentation shared by the divide-and-conquer
// algorithms in dnc/contrib.
//
// # Counters
//
// A Counters value records comparisons, array accesses, allocations, swaps,
// wall-clock time and recursion depth for a single algorithm invocation.
// Every algorithm in dnc/contrib has two entry points: one that takes only
// data and one that additionally takes a *Counters. All Counters methods are
// no-ops on a nil receiver, so both entry points run the same code.
//
//	c := dnc.NewCounters()
//	sort.MergeSortWithCounters(data, c)
//	fmt.Println(c) // Time: 0.412ms, Comparisons: 8704, ... | CurrentDepth: 0, MaxDepth: 8
//
// Totals are sums over the whole call tree of one top-level invocation. A
// Counters value should not be shared between invocations that run at the
// same time; the cells are atomic, so doing so does not corrupt them, but the
// totals become meaningless.
//
// # Sequences
//
// The algorithms operate on []int64 sequences and on 2-D points. There is no
// generic element support.
package dnc
