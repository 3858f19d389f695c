// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pal

import "testing"

func TestForPreservesOrder(t *testing.T) {
	out := For(100, 8, func(i int) int { return i * i })
	if len(out) != 100 {
		t.Fatalf("len(out) = %d, want 100", len(out))
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestForSingleWorkerMatchesMultiWorker(t *testing.T) {
	single := For(50, 1, func(i int) int { return i + 1 })
	multi := For(50, 6, func(i int) int { return i + 1 })
	for i := range single {
		if single[i] != multi[i] {
			t.Fatalf("index %d: single=%d multi=%d", i, single[i], multi[i])
		}
	}
}

func TestForZeroN(t *testing.T) {
	out := For(0, 4, func(i int) int { return i })
	if out == nil || len(out) != 0 {
		t.Fatalf("For(0, ...) = %v, want empty non-nil slice", out)
	}
}

func TestReduceIsOrderDeterministic(t *testing.T) {
	sum := Reduce(200, 8, func(i int) int { return i }, 0, func(acc, v int) int { return acc + v })
	want := 200 * 199 / 2
	if sum != want {
		t.Fatalf("sum = %d, want %d", sum, want)
	}
}
