// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// MeshRule records a declared, informational connectivity rule between
// two layers. It does not itself drive propagation -- Tracts do that --
// but it is the record a Region keeps of "these layers are meant to be
// wired", including the rule growth records when it spills a layer over.
type MeshRule struct {
	Src, Dst    LayerId
	Probability float64
	Feedback    bool
}
