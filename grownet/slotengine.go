// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import (
	"math"
)

// SlotDomain tags whether a SlotEngine bins a single scalar axis or a
// (row, col) pair.
type SlotDomain int

const (
	// DomainScalar bins a single value relative to a latched anchor.
	DomainScalar SlotDomain = iota
	// DomainTwoD bins a (row, col) pair relative to latched row/col anchors.
	DomainTwoD
)

// twoDPackStride defines how a 2D bin key is packed: rowBin*twoDPackStride
// + colBin.
const twoDPackStride = 100_000

// SlotEngine performs anchor-relative percent binning with strict
// capacity, a one-shot bootstrap exception, and a one-shot "prefer the
// last slot again" reuse channel. It never fails: capacity exhaustion is
// reported as the SlotFallback sentinel, not an error.
type SlotEngine struct {
	domain SlotDomain

	anchorSet bool
	anchorScalar,
	anchorRow,
	anchorCol float64

	binWidthPct  float64
	epsilonScale float64

	capacity int
	slotMap  map[int64]SlotId
	slotOrder []int64

	lastSlotUsedFallback bool
	preferLastSlotOnce   bool
	lastSlotId           *SlotId
	frozenSlot           *SlotId
}

// NewSlotEngine returns an engine for domain with the given capacity and
// binning parameters. capacity, binWidthPct, and epsilonScale must satisfy
// the constraints documented on SlotConfig; this constructor does not
// re-validate them -- callers build engines from an already-validated
// SlotConfig via Neuron construction.
func NewSlotEngine(domain SlotDomain, capacity int, binWidthPct, epsilonScale float64) *SlotEngine {
	return &SlotEngine{
		domain:       domain,
		binWidthPct:  binWidthPct,
		epsilonScale: epsilonScale,
		capacity:     capacity,
		slotMap:      make(map[int64]SlotId),
	}
}

// Domain reports the engine's binning domain.
func (e *SlotEngine) Domain() SlotDomain { return e.domain }

// SlotsLen returns the number of allocated slots.
func (e *SlotEngine) SlotsLen() int { return len(e.slotOrder) }

// IsAtCapacity reports whether the engine has allocated up to its strict
// capacity (so the next novel bin, if any, is guaranteed to fall back).
func (e *SlotEngine) IsAtCapacity() bool { return len(e.slotOrder) >= e.capacity }

// LastSlotUsedFallback reports whether the most recent observation
// returned SlotFallback.
func (e *SlotEngine) LastSlotUsedFallback() bool { return e.lastSlotUsedFallback }

// FreezeLastSlot snapshots the most recently returned slot so a later
// UnfreezeLastSlot call can force its one-shot reuse.
func (e *SlotEngine) FreezeLastSlot() {
	if e.lastSlotId != nil {
		id := *e.lastSlotId
		e.frozenSlot = &id
	}
}

// UnfreezeLastSlot arms a one-shot preference for the frozen slot: the
// very next observation returns it regardless of its own key, consuming
// the preference. It does not clear the frozen slot itself, so it can be
// armed again later via another UnfreezeLastSlot call.
func (e *SlotEngine) UnfreezeLastSlot() {
	e.preferLastSlotOnce = true
}

// bin maps a (possibly non-finite) percent-delta to a signed bin index.
// floor() on a non-finite float is platform-dependent once cast to an
// integer type, so this engine picks a deterministic mapping: +Inf maps
// to math.MaxInt32, -Inf to math.MinInt32, and NaN (no sign to clamp
// toward) maps to bin 0, same as "no displacement from anchor". Callers
// pass an absolute percent delta, so an observation of either infinity
// reaches this as +Inf. Finite deltas are floored as-is and can exceed
// math.MaxInt32.
func bin(deltaPct float64) int64 {
	if math.IsNaN(deltaPct) {
		return 0
	}
	if math.IsInf(deltaPct, 1) {
		return math.MaxInt32
	}
	if math.IsInf(deltaPct, -1) {
		return math.MinInt32
	}
	return int64(math.Floor(deltaPct))
}

func (e *SlotEngine) computeScalarBin(value float64) int64 {
	denom := math.Max(math.Abs(e.anchorScalar), e.epsilonScale)
	deltaPct := math.Abs(value-e.anchorScalar) / denom * 100.0
	return bin(deltaPct / e.binWidthPct)
}

func (e *SlotEngine) computeTwoDBins(row, col float64) (int64, int64) {
	denomR := math.Max(math.Abs(e.anchorRow), e.epsilonScale)
	denomC := math.Max(math.Abs(e.anchorCol), e.epsilonScale)
	deltaPctR := math.Abs(row-e.anchorRow) / denomR * 100.0
	deltaPctC := math.Abs(col-e.anchorCol) / denomC * 100.0
	return bin(deltaPctR / e.binWidthPct), bin(deltaPctC / e.binWidthPct)
}

func packTwoDKey(rowBin, colBin int64) int64 {
	return rowBin*twoDPackStride + colBin
}

// ObserveScalar latches the anchor on first use, then selects or
// allocates a slot for value.
func (e *SlotEngine) ObserveScalar(value float64) SlotId {
	if !e.anchorSet {
		e.anchorSet = true
		e.anchorScalar = value
	}
	if id, ok := e.consumeFrozenPreference(); ok {
		return id
	}
	key := e.computeScalarBin(value)
	return e.selectOrAllocate(key)
}

// ObserveTwoD latches the row/col anchors on first use, then selects or
// allocates a slot for (row, col).
func (e *SlotEngine) ObserveTwoD(row, col float64) SlotId {
	if !e.anchorSet {
		e.anchorSet = true
		e.anchorRow = row
		e.anchorCol = col
	}
	if id, ok := e.consumeFrozenPreference(); ok {
		return id
	}
	rowBin, colBin := e.computeTwoDBins(row, col)
	key := packTwoDKey(rowBin, colBin)
	return e.selectOrAllocate(key)
}

// consumeFrozenPreference implements step 1 of the selection rule: if a
// slot is frozen and the one-shot preference flag is armed, consume the
// flag and return the frozen slot without touching slotMap/slotOrder.
func (e *SlotEngine) consumeFrozenPreference() (SlotId, bool) {
	if e.frozenSlot != nil && e.preferLastSlotOnce {
		e.preferLastSlotOnce = false
		e.lastSlotUsedFallback = false
		id := *e.frozenSlot
		e.lastSlotId = &id
		return id, true
	}
	return 0, false
}

// selectOrAllocate implements steps 2-4 of the selection rule.
func (e *SlotEngine) selectOrAllocate(key int64) SlotId {
	if id, ok := e.slotMap[key]; ok {
		e.lastSlotUsedFallback = false
		e.lastSlotId = &id
		return id
	}

	canAllocate := len(e.slotOrder) == 0 || len(e.slotOrder) < e.capacity
	if canAllocate {
		id := SlotId(len(e.slotOrder))
		e.slotOrder = append(e.slotOrder, key)
		e.slotMap[key] = id
		e.lastSlotUsedFallback = false
		e.lastSlotId = &id
		return id
	}

	e.lastSlotUsedFallback = true
	fallback := SlotFallback
	e.lastSlotId = &fallback
	return SlotFallback
}
