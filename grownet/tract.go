// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// Tract binds a Window Mapping to a (source layer, destination layer)
// pair. It plays the role a Path/Prjn plays in a connectionist network,
// but carries a precomputed geometric subscription table instead of
// per-synapse weights.
type Tract struct {
	SourceLayerIndex, DestLayerIndex int
	Mapping                          WindowMapping

	SourceHeight, SourceWidth int
	KernelH, KernelW          int
	StrideH, StrideW          int
	Padding                   Padding
}

// NewTract computes the window mapping once at construction time.
func NewTract(sourceLayerIndex, destLayerIndex, sourceHeight, sourceWidth, kernelH, kernelW, strideH, strideW int, padding Padding) *Tract {
	mapping := ComputeWindowMapping(sourceHeight, sourceWidth, kernelH, kernelW, strideH, strideW, padding)
	return &Tract{
		SourceLayerIndex: sourceLayerIndex,
		DestLayerIndex:   destLayerIndex,
		Mapping:          mapping,
		SourceHeight:     sourceHeight,
		SourceWidth:      sourceWidth,
		KernelH:          kernelH,
		KernelW:          kernelW,
		StrideH:          strideH,
		StrideW:          strideW,
		Padding:          padding,
	}
}

// UniqueSourceCount returns the cached count of distinct source indices
// subscribed to by any destination.
func (t *Tract) UniqueSourceCount() int { return t.Mapping.UniqueSourceCount }

// AttachSourceNeuron incorporates a newly grown source index into the
// mapping without recomputing the whole geometry: it recomputes each
// destination's subscribed source box under the same center rule used at
// construction, and for every destination whose box contains
// newSourceIndex, appends the missing forward/reverse edges. Existing
// subscriptions are left untouched and no edge is ever duplicated.
func (t *Tract) AttachSourceNeuron(newSourceIndex int) {
	row := newSourceIndex / t.SourceWidth
	col := newSourceIndex % t.SourceWidth

	halfKH := t.KernelH / 2
	halfKW := t.KernelW / 2

	for destRow := 0; destRow < t.Mapping.OutHeight; destRow++ {
		for destCol := 0; destCol < t.Mapping.OutWidth; destCol++ {
			centerRow, centerCol := windowCenter(destRow, destCol, t.SourceHeight, t.SourceWidth, t.StrideH, t.StrideW, halfKH, halfKW, t.Padding)
			startRow, endRow, startCol, endCol := sourceBox(centerRow, centerCol, halfKH, halfKW, t.SourceHeight, t.SourceWidth)

			if row < startRow || row > endRow || col < startCol || col > endCol {
				continue
			}

			destIndex := destRow*t.Mapping.OutWidth + destCol
			if containsInt(t.Mapping.DestToSources[destIndex], newSourceIndex) {
				continue
			}
			t.Mapping.DestToSources[destIndex] = append(t.Mapping.DestToSources[destIndex], newSourceIndex)
			t.Mapping.SourceToDests[newSourceIndex] = append(t.Mapping.SourceToDests[newSourceIndex], destIndex)
		}
	}
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
