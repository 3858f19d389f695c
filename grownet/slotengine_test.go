// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import (
	"math"
	"testing"
)

func TestSlotEngineCapacityAndFallback(t *testing.T) {
	e := NewSlotEngine(DomainScalar, 2, 5.0, 1e-6)

	id1 := e.ObserveScalar(10.0)
	if id1.IsFallback() {
		t.Fatalf("bootstrap observation should not fall back")
	}

	id2 := e.ObserveScalar(10.5)
	if id2.IsFallback() {
		t.Fatalf("second distinct bin should allocate, not fall back")
	}

	id3 := e.ObserveScalar(11.0)
	if !id3.IsFallback() {
		t.Fatalf("third distinct bin should fall back at capacity 2, got %v", id3)
	}
	if !e.LastSlotUsedFallback() {
		t.Fatalf("LastSlotUsedFallback should be true after fallback")
	}
}

func TestSlotEngineOneShotReuse(t *testing.T) {
	e := NewSlotEngine(DomainScalar, 1, 5.0, 1e-6)

	first := e.ObserveScalar(100.0)
	if first.IsFallback() {
		t.Fatalf("bootstrap observation should not fall back")
	}

	e.FreezeLastSlot()
	e.UnfreezeLastSlot()

	reused := e.ObserveScalar(103.0)
	if reused != first {
		t.Fatalf("one-shot reuse returned %v, want frozen slot %v", reused, first)
	}
	if e.LastSlotUsedFallback() {
		t.Fatalf("one-shot reuse should not be reported as fallback")
	}

	next := e.ObserveScalar(110.0)
	if !next.IsFallback() {
		t.Fatalf("observation after the one-shot preference is consumed should fall back, got %v", next)
	}
}

func TestSlotEngineBootstrapAllowsFirstSlotPastZeroCapacity(t *testing.T) {
	// Bootstrap exception: an empty engine may always allocate its first
	// slot even when capacity would otherwise deny it.
	e := NewSlotEngine(DomainScalar, 0, 5.0, 1e-6)
	id := e.ObserveScalar(1.0)
	if id.IsFallback() {
		t.Fatalf("bootstrap allocation denied")
	}
}

func TestSlotEngineTwoDRevisitingAnchorReturnsSameSlot(t *testing.T) {
	e := NewSlotEngine(DomainTwoD, 100, 5.0, 1e-6)
	first := e.ObserveTwoD(0, 0)
	if first.IsFallback() {
		t.Fatalf("bootstrap should not fall back")
	}
	// Same key revisited must return the same slot.
	again := e.ObserveTwoD(0, 0)
	if again != first {
		t.Fatalf("revisiting the anchor should return the same slot, got %v want %v", again, first)
	}
}

func TestSlotEngineNonFiniteObservationsAreDeterministic(t *testing.T) {
	e := NewSlotEngine(DomainScalar, 8, 5.0, 1e-6)
	e.ObserveScalar(1.0) // latch anchor

	posInf := e.ObserveScalar(math.Inf(1))
	negInf := e.ObserveScalar(math.Inf(-1))
	nan := e.ObserveScalar(math.NaN())

	// None of these should panic, and repeating the same non-finite value
	// must map to the same slot both times (determinism, not necessarily
	// non-fallback).
	posInf2 := e.ObserveScalar(math.Inf(1))
	if posInf != posInf2 {
		t.Fatalf("+Inf binning is not deterministic: %v != %v", posInf, posInf2)
	}
	_ = negInf
	_ = nan
}
