// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// LayerKind enumerates the layer roles the Region's tick dispatches on:
// behavior differences live in the Region, not as per-kind methods on
// Layer.
type LayerKind int

const (
	// Generic is a plain layer with no 2D injection/accumulation role.
	Generic LayerKind = iota
	// Input2D receives Phase A pixel-geometry observations.
	Input2D
	// Output2D accumulates a dense activation frame during Phase B.
	Output2D
)

// TwoDShape is the (height, width) of a 2D layer; present only when the
// layer was constructed with a shape.
type TwoDShape struct {
	Height, Width int
}

// Layer owns an ordered set of neurons (index is position, never
// reassigned), a LateralBus, a slot domain, and an optional 2D shape.
type Layer struct {
	Id      LayerId
	Kind    LayerKind
	Neurons []*Neuron
	Bus     *LateralBus
	Domain  SlotDomain
	Shape   *TwoDShape
}

// newLayer is the shared constructor behind the Region's Add*Layer
// methods.
func newLayer(id LayerId, kind LayerKind, decayFactor float64, domain SlotDomain, shape *TwoDShape) *Layer {
	return &Layer{
		Id:     id,
		Kind:   kind,
		Bus:    NewLateralBus(decayFactor),
		Domain: domain,
		Shape:  shape,
	}
}

// PushNeuron appends a new neuron of the given kind/config, returning its
// index.
func (ly *Layer) PushNeuron(kind NeuronKind, cfg SlotConfig) int {
	id := NeuronId(len(ly.Neurons))
	ly.Neurons = append(ly.Neurons, NewNeuron(id, kind, cfg, ly.Domain))
	return len(ly.Neurons) - 1
}

// addNeuronLikeSeed clones the seed neuron's kind and config into a newly
// appended neuron; used by growth.
func (ly *Layer) addNeuronLikeSeed(seedIndex int) int {
	seed := ly.Neurons[seedIndex]
	return ly.PushNeuron(seed.Kind, seed.SlotCfg)
}

// maybeGrowNeuron scans neurons in index order and grows at most one new
// neuron from the first neuron whose slot config allows growth, whose
// fallback streak has crossed its threshold, and whose cooldown has
// elapsed. On growth, the *seed's* streak resets and its last-growth-step
// is stamped with currentStep. Returns the new neuron's index, or -1 if
// nothing grew.
func (ly *Layer) maybeGrowNeuron(currentStep uint64) int {
	for seedIndex, seed := range ly.Neurons {
		if !seed.SlotCfg.NeuronGrowthEnabled {
			continue
		}
		if seed.FallbackStreak < seed.SlotCfg.FallbackGrowthThreshold {
			continue
		}
		if currentStep-seed.LastGrowthStep < seed.SlotCfg.NeuronGrowthCooldownTicks {
			continue
		}
		newIndex := ly.addNeuronLikeSeed(seedIndex)
		seed.FallbackStreak = 0
		seed.LastGrowthStep = currentStep
		logGrowth("layer %d grew neuron %d from seed neuron %d at step %d", ly.Id, newIndex, seedIndex, currentStep)
		return newIndex
	}
	return -1
}

// EndTick runs every neuron's end-tick hook, then at most one neuron
// growth, then bus decay -- in that strict order.
func (ly *Layer) EndTick() {
	for _, n := range ly.Neurons {
		n.EndTick()
	}
	ly.maybeGrowNeuron(ly.Bus.CurrentStep)
	ly.Bus.Decay()
}
