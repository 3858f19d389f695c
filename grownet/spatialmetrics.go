// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

// SpatialMetrics summarizes a dense H*W frame: which cells are active,
// their tight bounding box, and their centroid (cells weighted by count,
// not by value).
type SpatialMetrics struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	CentroidRow, CentroidCol float64
	ActiveCount int
}

// ComputeSpatialMetrics scans frame (row-major, height x width) and
// returns the bounding box / centroid / active-count summary. If no cell
// is active the zero-value SpatialMetrics is returned.
func ComputeSpatialMetrics(frame []float64, height, width int) SpatialMetrics {
	var metrics SpatialMetrics
	var sumRow, sumCol float64
	minRow, minCol := int(^uint(0)>>1), int(^uint(0)>>1)
	var maxRow, maxCol int
	activeCount := 0

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			value := frame[row*width+col]
			if value == 0 {
				continue
			}
			activeCount++
			sumRow += float64(row)
			sumCol += float64(col)
			if row < minRow {
				minRow = row
			}
			if col < minCol {
				minCol = col
			}
			if row > maxRow {
				maxRow = row
			}
			if col > maxCol {
				maxCol = col
			}
		}
	}

	if activeCount == 0 {
		return metrics
	}

	metrics.MinRow = minRow
	metrics.MinCol = minCol
	metrics.MaxRow = maxRow
	metrics.MaxCol = maxCol
	metrics.CentroidRow = sumRow / float64(activeCount)
	metrics.CentroidCol = sumCol / float64(activeCount)
	metrics.ActiveCount = activeCount
	return metrics
}
