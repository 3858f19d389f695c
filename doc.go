// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package grownet is the overall repository for the GrowNet simulation
engine: a brain-inspired, event-driven neural substrate that grows its
own structure in response to saturation pressure rather than learning
fixed weights.

This top level of the repository has no functional code -- everything is
organized into the following sub-packages:

* grownet: the core engine -- Region, Layer, Neuron, SlotEngine, Tract,
LateralBus, and the two-phase tick that drives them. This is the only
package most callers need.

* pal: a deterministic parallel-for / ordered-reduction utility used to
pace synthetic workloads outside the core tick. The Region's tick never
calls into it.

* policy: an inert proximity-weighted delivery policy stub, reserved for
a future Tract capability.

The repository contains no runnable binaries: there is no benchmark CLI
and no demo driver.
*/
package grownet
