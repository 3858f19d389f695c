// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "testing"

const tol = 1e-9

func approxEqual(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func TestLateralBusDecay(t *testing.T) {
	bus := &LateralBus{Inhibition: 10.0, Modulation: 0.3, CurrentStep: 0, DecayFactor: 0.9}
	bus.Decay()

	if !approxEqual(bus.Inhibition, 9.0, tol) {
		t.Errorf("Inhibition = %v, want 9.0", bus.Inhibition)
	}
	if !approxEqual(bus.Modulation, 1.0, 1e-12) {
		t.Errorf("Modulation = %v, want 1.0", bus.Modulation)
	}
	if bus.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", bus.CurrentStep)
	}
}

func TestLateralBusDecaySaturatesStep(t *testing.T) {
	bus := NewLateralBus(0.5)
	bus.CurrentStep = ^uint64(0)
	bus.Decay()
	if bus.CurrentStep != ^uint64(0) {
		t.Errorf("CurrentStep = %d, want saturated max", bus.CurrentStep)
	}
}
