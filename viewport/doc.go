// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport maps time to pixels and owns the pan/zoom state.
//
// Engine is the root viewport. It holds the shared State and an arena of
// panels indexed by PanelID. Pan and zoom mutate only the root state and are
// copied into every panel, so stacked panels always scroll together, while
// each panel keeps its own height, vertical position and collapsed flag.
//
// Out-of-range requests are clamped, never reported as errors:
//
//	e := viewport.New(800, 600, viewport.DefaultConfig())
//	e.SetBounds(0, 1000)
//	e.ZoomAt(400, 2)  // zoom in around the centre
//	e.Pan(1e9)        // clamps to Max - RealView
package viewport
