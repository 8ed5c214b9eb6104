// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import "sort"

// Ellipsis is appended to truncated labels.
const Ellipsis = "…"

// Fit returns label unchanged if it fits in width, otherwise the longest
// rune prefix followed by Ellipsis that fits. It returns "" when not even
// the ellipsis fits.
func Fit(m Measurer, label string, width, size float64) string {
	if label == "" || width <= 0 {
		return ""
	}
	if m.Advance(label, size) <= width {
		return label
	}
	if m.Advance(Ellipsis, size) > width {
		return ""
	}

	runes := []rune(label)
	// n is the first prefix length that no longer fits.
	n := sort.Search(len(runes), func(i int) bool {
		return m.Advance(string(runes[:i+1])+Ellipsis, size) > width
	})
	return string(runes[:n]) + Ellipsis
}
