// Copyright (c) 2024, The GrowNet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grownet

import "testing"

func TestWindowMappingSameCenter(t *testing.T) {
	m := ComputeWindowMapping(5, 5, 3, 3, 1, 1, Same)

	if m.OutHeight != 5 || m.OutWidth != 5 {
		t.Fatalf("out shape = (%d,%d), want (5,5)", m.OutHeight, m.OutWidth)
	}
	if m.UniqueSourceCount > 25 {
		t.Fatalf("UniqueSourceCount = %d, want <= 25", m.UniqueSourceCount)
	}
	assertMappingSymmetric(t, m)
}

func TestWindowMappingValidShrinks(t *testing.T) {
	m := ComputeWindowMapping(5, 5, 3, 3, 1, 1, Valid)
	if m.OutHeight != 3 || m.OutWidth != 3 {
		t.Fatalf("out shape = (%d,%d), want (3,3)", m.OutHeight, m.OutWidth)
	}
	assertMappingSymmetric(t, m)
}

func TestWindowMappingValidTooSmallYieldsZero(t *testing.T) {
	m := ComputeWindowMapping(2, 2, 5, 5, 1, 1, Valid)
	if m.OutHeight != 0 || m.OutWidth != 0 {
		t.Fatalf("out shape = (%d,%d), want (0,0)", m.OutHeight, m.OutWidth)
	}
}

func TestWindowMappingNoDuplicateSourcesPerDest(t *testing.T) {
	m := ComputeWindowMapping(8, 8, 5, 5, 2, 2, Same)
	for destIndex, sources := range m.DestToSources {
		seen := make(map[int]bool)
		for _, s := range sources {
			if seen[s] {
				t.Fatalf("dest %d has duplicate source %d", destIndex, s)
			}
			seen[s] = true
		}
	}
}

func assertMappingSymmetric(t *testing.T, m WindowMapping) {
	t.Helper()
	for destIndex, sources := range m.DestToSources {
		for _, src := range sources {
			dests := m.SourceToDests[src]
			if !containsInt(dests, destIndex) {
				t.Fatalf("source %d subscribed by dest %d but not found in SourceToDests[%d]=%v", src, destIndex, src, dests)
			}
		}
	}
	for src, dests := range m.SourceToDests {
		for _, destIndex := range dests {
			if !containsInt(m.DestToSources[destIndex], src) {
				t.Fatalf("dest %d lists source %d missing from its own DestToSources", destIndex, src)
			}
		}
	}
}
