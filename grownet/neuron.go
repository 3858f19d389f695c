// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// NeuronKind tags the role a neuron plays; growth always clones the
// seed's kind.
type NeuronKind int

const (
	Excitatory NeuronKind = iota
	Inhibitory
	Modulatory
)

// Neuron owns a SlotEngine plus the bookkeeping growth escalation needs:
// a fallback streak and the step at which it last grew a sibling.
type Neuron struct {
	Id         NeuronId
	Kind       NeuronKind
	SlotCfg    SlotConfig
	SlotEngine *SlotEngine

	LastSlotUsedFallback bool
	FallbackStreak       uint32
	LastGrowthStep       uint64
}

// NewNeuron builds a neuron of the given kind and config, with a slot
// engine sized and tuned from cfg for the given domain.
func NewNeuron(id NeuronId, kind NeuronKind, cfg SlotConfig, domain SlotDomain) *Neuron {
	return &Neuron{
		Id:         id,
		Kind:       kind,
		SlotCfg:    cfg,
		SlotEngine: NewSlotEngine(domain, cfg.SlotLimit, cfg.BinWidthPct, cfg.EpsilonScale),
	}
}

// afterObserve updates fallback-streak bookkeeping from a selection
// result; shared by ObserveScalar and ObserveTwoD.
func (n *Neuron) afterObserve(id SlotId) SlotId {
	n.LastSlotUsedFallback = n.SlotEngine.LastSlotUsedFallback()
	if n.LastSlotUsedFallback {
		if n.FallbackStreak != ^uint32(0) {
			n.FallbackStreak++
		}
	} else {
		n.FallbackStreak = 0
	}
	return id
}

// ObserveScalar delegates to the slot engine and updates fallback-streak
// bookkeeping.
func (n *Neuron) ObserveScalar(value float64) SlotId {
	return n.afterObserve(n.SlotEngine.ObserveScalar(value))
}

// ObserveTwoD delegates to the slot engine and updates fallback-streak
// bookkeeping.
func (n *Neuron) ObserveTwoD(row, col float64) SlotId {
	return n.afterObserve(n.SlotEngine.ObserveTwoD(row, col))
}

// EndTick is a hook for any future per-neuron end-of-tick decay; today
// nothing decays at the neuron level.
func (n *Neuron) EndTick() {}
