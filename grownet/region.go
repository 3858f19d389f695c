// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import (
	"fmt"

	"github.com/c2h5oh/datasize"
)

// RegionMetrics is returned by every Tick2D call; it never fails to
// compute -- each field is derived from whatever state exists after the
// tick.
type RegionMetrics struct {
	DeliveredEvents uint64
	TotalSlots      int
	TotalSynapses   int
	Spatial         *SpatialMetrics
}

// MemoryFootprint renders a human-readable estimate of the slot/synapse
// bookkeeping size using datasize.ByteSize(...).HumanReadable().
func (m RegionMetrics) MemoryFootprint() string {
	const bytesPerSlot = 24    // SlotId + map entry overhead, approximate
	const bytesPerSynapse = 8  // one int index per recorded subscription
	total := uint64(m.TotalSlots)*bytesPerSlot + uint64(m.TotalSynapses)*bytesPerSynapse
	return datasize.ByteSize(total).HumanReadable()
}

// Region orchestrates layer creation, wiring, the two-phase tick, growth,
// and metrics aggregation. It is the sole owner of every layer, tract,
// and mesh rule it contains; all cross-references between them are plain
// integer indices, never pointers, so growth (append-only) never
// invalidates anything held by another component.
type Region struct {
	Layers    []*Layer
	MeshRules []MeshRule
	Tracts    []*Tract
	Rng       *Rng

	GrowthPolicy          GrowthPolicy
	LastLayerGrowthStep   uint64
	SpatialMetricsEnabled bool

	srcToTracts     map[int][]int
	lastOutputFrame []float64
	lastOutputH     int
	lastOutputW     int
}

// NewRegion returns an empty region holding an Rng seeded with seed, with
// spatial metrics enabled and the default growth policy. Tract wiring and
// growth are deterministic without drawing from the Rng.
func NewRegion(seed uint64) *Region {
	return &Region{
		Rng:                   NewRng(seed),
		GrowthPolicy:          DefaultGrowthPolicy(),
		SpatialMetricsEnabled: true,
		srcToTracts:           make(map[int][]int),
	}
}

func (r *Region) nextLayerId() LayerId { return LayerId(len(r.Layers)) }

// AddGenericLayer appends a non-2D layer with the given decay factor and
// slot domain, returning its index.
func (r *Region) AddGenericLayer(decayFactor float64, domain SlotDomain) int {
	layer := newLayer(r.nextLayerId(), Generic, decayFactor, domain, nil)
	r.Layers = append(r.Layers, layer)
	return len(r.Layers) - 1
}

// AddInputLayer2D appends a 2D input layer, returning its index.
func (r *Region) AddInputLayer2D(height, width int, decayFactor float64) int {
	layer := newLayer(r.nextLayerId(), Input2D, decayFactor, DomainTwoD, &TwoDShape{Height: height, Width: width})
	r.Layers = append(r.Layers, layer)
	return len(r.Layers) - 1
}

// AddOutputLayer2D appends a 2D output layer, returning its index.
func (r *Region) AddOutputLayer2D(height, width int, decayFactor float64) int {
	layer := newLayer(r.nextLayerId(), Output2D, decayFactor, DomainTwoD, &TwoDShape{Height: height, Width: width})
	r.Layers = append(r.Layers, layer)
	return len(r.Layers) - 1
}

// ConnectLayers records an informational mesh rule between two layers by
// index. It does not itself build a propagation path -- use
// ConnectLayersWindowed for that.
func (r *Region) ConnectLayers(src, dst int, probability float64, feedback bool) {
	rule := MeshRule{Src: r.Layers[src].Id, Dst: r.Layers[dst].Id, Probability: probability, Feedback: feedback}
	r.MeshRules = append(r.MeshRules, rule)
	if _, ok := r.srcToTracts[src]; !ok {
		r.srcToTracts[src] = nil
	}
}

// ConnectLayersWindowed builds and registers a Tract with the given
// windowed geometry, returning the tract's unique source count. src must
// name a 2D layer.
func (r *Region) ConnectLayersWindowed(src, dst, kernelH, kernelW, strideH, strideW int, padding Padding) (int, error) {
	shape := r.Layers[src].Shape
	if shape == nil {
		return 0, fmt.Errorf("grownet: ConnectLayersWindowed: source layer %d has no 2D shape", src)
	}
	tract := NewTract(src, dst, shape.Height, shape.Width, kernelH, kernelW, strideH, strideW, padding)
	tractIndex := len(r.Tracts)
	r.Tracts = append(r.Tracts, tract)
	r.srcToTracts[src] = append(r.srcToTracts[src], tractIndex)
	return tract.UniqueSourceCount(), nil
}

// SeedSimpleLayer appends neuronCount excitatory neurons with cfg to the
// named layer.
func (r *Region) SeedSimpleLayer(layerIndex, neuronCount int, cfg SlotConfig) {
	for i := 0; i < neuronCount; i++ {
		r.Layers[layerIndex].PushNeuron(Excitatory, cfg)
	}
}

// phaseAInput2D selects the last Input2D layer, lazily initializes one
// neuron per pixel if needed, and observes every pixel's (row, col)
// geometry -- never its value. It returns the ordered list of
// (layerIndex, neuronIndex) pairs that fired.
func (r *Region) phaseAInput2D(image []float64, height, width int) [][2]int {
	var fired [][2]int

	inputLayerIndex := -1
	for index, layer := range r.Layers {
		if layer.Kind == Input2D {
			inputLayerIndex = index
		}
	}
	if inputLayerIndex < 0 {
		return fired
	}

	layer := r.Layers[inputLayerIndex]
	if layer.Shape == nil || layer.Shape.Height != height || layer.Shape.Width != width {
		return fired
	}

	if len(layer.Neurons) != height*width {
		cfg := DefaultSlotConfig()
		for i := 0; i < height*width; i++ {
			layer.PushNeuron(Excitatory, cfg)
		}
	}

	neuronIndex := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			n := layer.Neurons[neuronIndex]
			slotId := n.ObserveTwoD(float64(row), float64(col))
			if !slotId.IsFallback() {
				fired = append(fired, [2]int{inputLayerIndex, neuronIndex})
			}
			neuronIndex++
		}
	}
	return fired
}

// phaseBPropagate fans every fired source out along its registered
// tracts, counting delivered events and accumulating a dense output
// activation frame for any Output2D destination.
func (r *Region) phaseBPropagate(events [][2]int) uint64 {
	var delivered uint64
	r.lastOutputFrame = nil
	r.lastOutputH, r.lastOutputW = 0, 0

	for _, event := range events {
		srcLayerIndex, srcNeuronIndex := event[0], event[1]
		for _, tractIndex := range r.srcToTracts[srcLayerIndex] {
			tract := r.Tracts[tractIndex]
			destIndices, ok := tract.Mapping.SourceToDests[srcNeuronIndex]
			if !ok {
				continue
			}
			delivered += uint64(len(destIndices))

			dstLayer := r.Layers[tract.DestLayerIndex]
			if dstLayer.Kind != Output2D {
				continue
			}
			outH, outW := tract.Mapping.OutHeight, tract.Mapping.OutWidth
			if r.lastOutputFrame == nil {
				r.lastOutputFrame = make([]float64, outH*outW)
				r.lastOutputH, r.lastOutputW = outH, outW
			}
			for _, destIndex := range destIndices {
				r.lastOutputFrame[destIndex] += 1.0
			}
		}
	}

	return delivered
}

func (r *Region) endTickAllLayers() {
	for _, layer := range r.Layers {
		layer.EndTick()
	}
}

// maybeGrowRegion implements the OR-trigger region growth policy (spec
// §4.10): at most one new layer per region per tick, mirroring the seed
// layer's shape/domain/decay, wired with a deterministic p=1.0 mesh rule.
func (r *Region) maybeGrowRegion() int {
	if len(r.Layers) >= r.GrowthPolicy.MaxLayers {
		return -1
	}
	var currentStep uint64
	if len(r.Layers) > 0 {
		currentStep = r.Layers[0].Bus.CurrentStep
	}
	if currentStep-r.LastLayerGrowthStep < r.GrowthPolicy.LayerCooldownTicks {
		return -1
	}

	var totalSlots, totalNeurons, totalAtCapFallback int
	seedLayerIndex := -1
	maxPressure := -1.0

	for layerIndex, layer := range r.Layers {
		p := layerPressure{layerIndex: layerIndex}
		for _, n := range layer.Neurons {
			p.slots += n.SlotEngine.SlotsLen()
			p.neurons++
			if n.SlotEngine.IsAtCapacity() && n.LastSlotUsedFallback {
				p.atCapFallback++
			}
		}
		totalSlots += p.slots
		totalNeurons += p.neurons
		totalAtCapFallback += p.atCapFallback

		if p.pressure() > maxPressure {
			maxPressure = p.pressure()
			seedLayerIndex = layerIndex
		}
	}

	var avgSlots, percentAtCapFallback float64
	if totalNeurons > 0 {
		avgSlots = float64(totalSlots) / float64(totalNeurons)
		percentAtCapFallback = float64(totalAtCapFallback) / float64(totalNeurons)
	}

	triggered := avgSlots >= r.GrowthPolicy.AvgSlotsThreshold || percentAtCapFallback >= r.GrowthPolicy.PercentAtCapFallbackThreshold
	if !triggered || seedLayerIndex < 0 {
		return -1
	}

	seed := r.Layers[seedLayerIndex]
	decay := seed.Bus.DecayFactor
	var newLayerIndex int
	if seed.Shape != nil {
		newLayerIndex = r.AddOutputLayer2D(seed.Shape.Height, seed.Shape.Width, decay)
	} else {
		newLayerIndex = r.AddGenericLayer(decay, seed.Domain)
	}
	r.ConnectLayers(seedLayerIndex, newLayerIndex, 1.0, false)
	r.LastLayerGrowthStep = currentStep
	logGrowth("region grew layer %d from seed layer %d (avgSlots=%.3f percentAtCapFallback=%.3f)", newLayerIndex, seedLayerIndex, avgSlots, percentAtCapFallback)
	return newLayerIndex
}

// Tick2D drives one full tick: Phase A injection, Phase B propagation,
// end-of-tick (per-neuron end-tick, per-layer neuron growth, bus decay),
// region growth, and metrics assembly -- in that strict order, with no
// interleaving.
func (r *Region) Tick2D(image []float64, height, width int) RegionMetrics {
	fired := r.phaseAInput2D(image, height, width)
	delivered := r.phaseBPropagate(fired)
	r.endTickAllLayers()
	r.maybeGrowRegion()

	metrics := RegionMetrics{DeliveredEvents: delivered}

	for _, layer := range r.Layers {
		for _, n := range layer.Neurons {
			metrics.TotalSlots += n.SlotEngine.SlotsLen()
		}
	}

	for _, tract := range r.Tracts {
		for _, sources := range tract.Mapping.DestToSources {
			metrics.TotalSynapses += len(sources)
		}
	}

	if r.SpatialMetricsEnabled {
		if r.lastOutputFrame != nil {
			spatial := ComputeSpatialMetrics(r.lastOutputFrame, r.lastOutputH, r.lastOutputW)
			if spatial.ActiveCount > 0 {
				metrics.Spatial = &spatial
			} else {
				fallback := ComputeSpatialMetrics(image, height, width)
				metrics.Spatial = &fallback
			}
		} else {
			spatial := ComputeSpatialMetrics(image, height, width)
			metrics.Spatial = &spatial
		}
	}

	return metrics
}
