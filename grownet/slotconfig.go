// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// SlotConfig holds the recognized per-neuron slot-engine and growth
// options. Zero-value SlotConfig is not directly usable -- always start
// from DefaultSlotConfig and override individual fields.
type SlotConfig struct {
	SlotLimit                 int     `yaml:"slot_limit"`
	BinWidthPct               float64 `yaml:"bin_width_pct"`
	EpsilonScale              float64 `yaml:"epsilon_scale"`
	FallbackGrowthThreshold   uint32  `yaml:"fallback_growth_threshold"`
	NeuronGrowthCooldownTicks uint64  `yaml:"neuron_growth_cooldown_ticks"`

	// GrowthEnabled is a master switch carried for forward compatibility;
	// today only NeuronGrowthEnabled gates the per-layer growth scan.
	GrowthEnabled bool `yaml:"growth_enabled"`
	// NeuronGrowthEnabled gates Layer.maybeGrowNeuron.
	NeuronGrowthEnabled bool `yaml:"neuron_growth_enabled"`
	// LayerGrowthEnabled is reserved; it is not enforced at layer scope
	// today -- region-level growth is governed by GrowthPolicy instead.
	LayerGrowthEnabled bool `yaml:"layer_growth_enabled"`
}

// DefaultSlotConfig returns the package's documented default tuning.
func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		SlotLimit:                 8,
		BinWidthPct:               5.0,
		EpsilonScale:              1e-6,
		FallbackGrowthThreshold:   3,
		NeuronGrowthCooldownTicks: 0,
		GrowthEnabled:             true,
		NeuronGrowthEnabled:       true,
		LayerGrowthEnabled:        false,
	}
}

// Validate reports every constraint violation found, joined together, so
// callers loading a SlotConfig from an external file (see config.go) get a
// complete picture rather than the first error encountered.
func (c SlotConfig) Validate() error {
	var errs []error
	if c.SlotLimit < 1 {
		errs = append(errs, errInvalidField("slot_limit must be >= 1"))
	}
	if c.BinWidthPct <= 0 {
		errs = append(errs, errInvalidField("bin_width_pct must be > 0"))
	}
	if c.EpsilonScale <= 0 {
		errs = append(errs, errInvalidField("epsilon_scale must be > 0"))
	}
	return joinErrors(errs)
}
