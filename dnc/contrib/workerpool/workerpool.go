// Copyright 2025 The go-divconq Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent pool of goroutines for filling
// large benchmark inputs in parallel. Algorithm runs themselves are always
// sequential; the pool only touches input preparation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEach(numChunks, func(chunk int) {
//	    fillChunk(chunk)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines reused across ForEach calls.
// A nil *Pool runs everything on the calling goroutine.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after pending work finishes. It is safe to call
// more than once.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ForEach calls fn(i) for every i in [0, n) and returns when all calls have
// finished. Workers claim indices from a shared counter, so uneven items
// balance out. On a nil or closed pool the calls run sequentially in order.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.NumWorkers(), n)
	if p == nil || p.closed.Load() || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
