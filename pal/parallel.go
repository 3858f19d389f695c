// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pal provides a deterministic parallel-for with ordered
// reduction, in the style of the worker-channel threading
// infrastructure layered networks use to fan work across goroutines.
// Unlike that infrastructure, pal never touches a Region's tick: the
// tick's Phase A/B/end-of-tick/growth ordering is sequential and
// single-threaded by construction, so this package exists purely for
// batch and benchmark workloads (offline scoring passes, synthetic
// frame generation) that can tolerate out-of-order execution but still
// want a deterministic, reproducible result.
package pal

import (
	"runtime"
	"sort"
	"sync"
)

// Task computes the result for item index i.
type Task[T any] func(i int) T

// indexed pairs a task's result with the index it was computed for, so
// results can be reassembled in ascending order regardless of which
// worker finished first.
type indexed[T any] struct {
	index  int
	result T
}

// For runs task(i) for every i in [0, n) across workers goroutines,
// returning results in ascending index order -- the same order a
// sequential for loop would produce, no matter how the work was
// scheduled. workers <= 0 defaults to runtime.NumCPU(). n <= 0 returns
// an empty, non-nil slice.
func For[T any](n, workers int, task Task[T]) []T {
	if n <= 0 {
		return []T{}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		out := make([]T, n)
		for i := 0; i < n; i++ {
			out[i] = task(i)
		}
		return out
	}

	results := make(chan indexed[T], n)
	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				results <- indexed[T]{index: i, result: task(i)}
			}
		}()
	}
	wg.Wait()
	close(results)

	buffered := make([]indexed[T], 0, n)
	for r := range results {
		buffered = append(buffered, r)
	}
	sort.Slice(buffered, func(a, b int) bool { return buffered[a].index < buffered[b].index })

	out := make([]T, n)
	for _, r := range buffered {
		out[r.index] = r.result
	}
	return out
}

// Reduce runs task(i) for every i in [0, n) across workers goroutines,
// then folds the results together in ascending index order with
// combine, starting from seed. The fold order is deterministic
// regardless of completion order, so combine need not be commutative.
func Reduce[T, A any](n, workers int, task Task[T], seed A, combine func(acc A, item T) A) A {
	for _, item := range For(n, workers, task) {
		seed = combine(seed, item)
	}
	return seed
}
