// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "math"

// Padding selects the output-size convention used by ComputeWindowMapping.
type Padding int

const (
	// Same sizes the output to ceil(dim/stride), centering windows inside
	// the source grid via clamping.
	Same Padding = iota
	// Valid sizes the output so every window lies fully in-bounds.
	Valid
)

// WindowMapping is a pure value: given source/kernel/stride geometry, it
// holds the forward (dest -> sources) and reverse (source -> dests)
// subscription tables used to fan events out along a Tract.
type WindowMapping struct {
	OutHeight, OutWidth int
	// DestToSources[d] lists the unique source indices covered by dest d's
	// window, in row-major iteration order.
	DestToSources [][]int
	// SourceToDests[s] lists the dest indices that subscribe to source s,
	// in the order those subscriptions were discovered.
	SourceToDests map[int][]int
	UniqueSourceCount int
}

func outputDimSame(dim, stride int) int {
	return int(math.Ceil(float64(dim) / float64(stride)))
}

func outputDimValid(dim, kernel, stride int) int {
	if dim < kernel {
		return 0
	}
	return 1 + (dim-kernel)/stride
}

// windowCenter returns the center row/col for destination (destRow,
// destCol) under the center rule (as opposed to a top-left rule). It is
// shared by ComputeWindowMapping and Tract.AttachSourceNeuron so both
// use bit identical geometry.
func windowCenter(destRow, destCol, sourceHeight, sourceWidth, strideH, strideW, halfKH, halfKW int, padding Padding) (centerRow, centerCol int) {
	rowEstimate := destRow * strideH
	colEstimate := destCol * strideW
	switch padding {
	case Same:
		centerRow = clampInt(rowEstimate, 0, sourceHeight-1)
		centerCol = clampInt(colEstimate, 0, sourceWidth-1)
	case Valid:
		centerRow = rowEstimate + halfKH
		centerCol = colEstimate + halfKW
	}
	return centerRow, centerCol
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sourceBox returns the inclusive [startRow,endRow] x [startCol,endCol]
// box of source indices subscribed to by a window centered at
// (centerRow, centerCol).
func sourceBox(centerRow, centerCol, halfKH, halfKW, sourceHeight, sourceWidth int) (startRow, endRow, startCol, endCol int) {
	startRow = maxInt(centerRow-halfKH, 0)
	endRow = minInt(centerRow+halfKH, sourceHeight-1)
	startCol = maxInt(centerCol-halfKW, 0)
	endCol = minInt(centerCol+halfKW, sourceWidth-1)
	return
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ComputeWindowMapping builds the forward and reverse subscription tables
// for a (sourceHeight, sourceWidth) grid windowed by (kernelH, kernelW)
// with (strideH, strideW), using the center rule. Destinations and,
// within each destination, sources are visited in row-major order, so
// the resulting order is deterministic: fired events are visited in
// row-major pixel order, and each destination's sources are visited in
// the order stored.
func ComputeWindowMapping(sourceHeight, sourceWidth, kernelH, kernelW, strideH, strideW int, padding Padding) WindowMapping {
	var outH, outW int
	switch padding {
	case Same:
		outH = outputDimSame(sourceHeight, strideH)
		outW = outputDimSame(sourceWidth, strideW)
	case Valid:
		outH = outputDimValid(sourceHeight, kernelH, strideH)
		outW = outputDimValid(sourceWidth, kernelW, strideW)
	}

	halfKH := kernelH / 2
	halfKW := kernelW / 2

	destToSources := make([][]int, outH*outW)
	unionSources := make(map[int]struct{})

	for destRow := 0; destRow < outH; destRow++ {
		for destCol := 0; destCol < outW; destCol++ {
			centerRow, centerCol := windowCenter(destRow, destCol, sourceHeight, sourceWidth, strideH, strideW, halfKH, halfKW, padding)
			startRow, endRow, startCol, endCol := sourceBox(centerRow, centerCol, halfKH, halfKW, sourceHeight, sourceWidth)

			destIndex := destRow*outW + destCol
			seen := make(map[int]struct{})
			for row := startRow; row <= endRow; row++ {
				for col := startCol; col <= endCol; col++ {
					srcIndex := row*sourceWidth + col
					if _, dup := seen[srcIndex]; dup {
						continue
					}
					seen[srcIndex] = struct{}{}
					destToSources[destIndex] = append(destToSources[destIndex], srcIndex)
					unionSources[srcIndex] = struct{}{}
				}
			}
		}
	}

	sourceToDests := make(map[int][]int)
	for destIndex, sources := range destToSources {
		for _, src := range sources {
			sourceToDests[src] = append(sourceToDests[src], destIndex)
		}
	}

	return WindowMapping{
		OutHeight:         outH,
		OutWidth:          outW,
		DestToSources:     destToSources,
		SourceToDests:     sourceToDests,
		UniqueSourceCount: len(unionSources),
	}
}
