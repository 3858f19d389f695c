// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// LateralBus holds the per-layer scalar lateral state: an inhibition level
// that decays geometrically each tick, a modulation gain that resets every
// tick, and the layer's own step counter. It plays the role the fffb
// inhibition params play in a rate-coded network, collapsed down to the
// single scalar this substrate needs.
type LateralBus struct {
	Inhibition  float64
	Modulation  float64
	CurrentStep uint64
	DecayFactor float64
}

// NewLateralBus returns a bus with the documented defaults and the given
// decay factor.
func NewLateralBus(decayFactor float64) *LateralBus {
	return &LateralBus{
		Inhibition:  0.0,
		Modulation:  1.0,
		CurrentStep: 0,
		DecayFactor: decayFactor,
	}
}

// Decay applies end-of-tick lateral decay: inhibition shrinks by
// DecayFactor, modulation resets to 1.0, and the step counter advances
// (saturating at the uint64 maximum rather than wrapping).
func (b *LateralBus) Decay() {
	b.Inhibition *= b.DecayFactor
	b.Modulation = 1.0
	if b.CurrentStep != ^uint64(0) {
		b.CurrentStep++
	}
}
