// Copyright 2025 go-vapor Authors
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

// Package workerpool provides a persistent worker pool for the bulk slice
// kernels and the verification sweeps. A Pool is created once and reused, so
// splitting a large slice or a 2^32 pattern sweep costs no goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(dst), vapor.MaxLanes, func(start, end int) {
//	    bulk.Sqrt(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close. A closed pool runs every call sequentially on the caller.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run submits fn to every one of workers workers and waits for all of them.
func (p *Pool) run(workers int, fn func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}
	wg.Wait()
}

// ParallelForAligned splits [0, n) into one contiguous range per worker and
// calls fn(start, end) for each. Every range boundary except n is a multiple
// of align, so each range starts on a register boundary of align lanes.
// Blocks until all work completes.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if p.closed.Load() || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomicBatchedContext calls fn(start, end) for consecutive
// batches of batchSize indices in [0, n), handed out through an atomic
// counter so uneven work balances across workers. The counter is 64-bit, so
// n may cover the whole float32 bit-pattern space.
//
// It stops handing out batches once ctx is done. Batches already running
// complete. It returns ctx.Err() if any batch was skipped.
func (p *Pool) ParallelForAtomicBatchedContext(ctx context.Context, n int, batchSize int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() {
		workers = 1
	}

	var next atomic.Int64
	var skipped atomic.Bool
	loop := func() {
		for {
			batch := int(next.Add(1)) - 1
			start := batch * batchSize
			if start >= n {
				return
			}
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			fn(start, min(start+batchSize, n))
		}
	}

	if workers == 1 {
		loop()
	} else {
		p.run(workers, loop)
	}
	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}
