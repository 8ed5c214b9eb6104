// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textmetrics measures cluster labels and fits them to a width.
//
// Shaper measures with HarfBuzz shaping from go-text/typesetting, so
// kerning and ligatures are accounted for. FaceMeasurer is a lighter
// alternative on golang.org/x/image font faces. Both cache advances in an
// LRU keyed by text and size.
//
//	m, err := textmetrics.DefaultShaper()
//	if err != nil {
//	    return err
//	}
//	label := textmetrics.Fit(m, "runtime.mallocgc", 60, 12)
package textmetrics
