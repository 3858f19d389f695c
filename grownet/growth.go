// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "math"

// GrowthPolicy holds the recognized region-growth options: an OR-trigger
// between an average-slots-per-neuron threshold and a
// percent-at-capacity-and-fallback threshold, a layer cap, and a cooldown.
type GrowthPolicy struct {
	AvgSlotsThreshold             float64 `yaml:"avg_slots_threshold"`
	PercentAtCapFallbackThreshold float64 `yaml:"percent_at_cap_fallback_threshold"`
	MaxLayers                     int     `yaml:"max_layers"`
	LayerCooldownTicks            uint64  `yaml:"layer_cooldown_ticks"`
}

// DefaultGrowthPolicy returns the documented defaults: both triggers
// effectively disabled, no layer cap, and a 500-tick cooldown.
func DefaultGrowthPolicy() GrowthPolicy {
	return GrowthPolicy{
		AvgSlotsThreshold:             math.Inf(1),
		PercentAtCapFallbackThreshold: 2.0,
		MaxLayers:                     math.MaxInt,
		LayerCooldownTicks:            500,
	}
}

// layerPressure is the per-layer bookkeeping the region's growth scan
// accumulates before picking a seed layer.
type layerPressure struct {
	layerIndex    int
	slots         int
	neurons       int
	atCapFallback int
}

func (p layerPressure) pressure() float64 {
	if p.neurons == 0 {
		return 0
	}
	return float64(p.atCapFallback) / float64(p.neurons)
}
