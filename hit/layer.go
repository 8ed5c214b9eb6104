// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hit

// Layer is the flat region list of one panel for one render pass.
//
// Regions are tested in insertion order and the first match wins, so a
// panel must add its topmost regions first. A Layer is cleared at the start
// of every rebuild; its backing storage is reused.
type Layer struct {
	regions []Region
}

// Clear drops all regions.
func (l *Layer) Clear() {
	clear(l.regions)
	l.regions = l.regions[:0]
}

// Add appends a region.
func (l *Layer) Add(r Region) {
	l.regions = append(l.regions, r)
}

// Len returns the number of regions.
func (l *Layer) Len() int {
	return len(l.regions)
}

// Regions returns the regions in insertion order. The slice is only valid
// until the next Clear.
func (l *Layer) Regions() []Region {
	return l.regions
}

// HitTest returns the first region containing the panel-local point, or nil.
// The returned pointer is valid until the next Clear or Add.
func (l *Layer) HitTest(x, y float64) *Region {
	for i := range l.regions {
		if l.regions[i].Contains(x, y) {
			return &l.regions[i]
		}
	}
	return nil
}
