// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "math"

// LayerId is an opaque handle identifying a Layer within a Region.
type LayerId uint32

// NeuronId is an opaque handle identifying a Neuron within a Layer.
type NeuronId uint32

// SlotId is an opaque handle identifying a Slot within a neuron's Slot
// Engine. SlotFallback is the sentinel returned when strict capacity
// denies allocation of a new bin.
type SlotId uint32

// SlotFallback is the reserved sentinel value of SlotId; it is never a
// real slot index.
const SlotFallback SlotId = math.MaxUint32

// IsFallback reports whether id is the fallback sentinel.
func (id SlotId) IsFallback() bool { return id == SlotFallback }
