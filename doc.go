// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package flamegraph draws interactive flame charts of hierarchical timed
// intervals.
//
// # Overview
//
// A Chart takes a forest of tree.Interval values, flattens it into levels,
// merges nodes too small to tell apart into clusters, and draws the visible
// window onto a surface.Surface. Pointer input is resolved against the
// rectangles of the last frame and turned into pan, zoom, selection and
// hover events.
//
// # Quick Start
//
//	c := flamegraph.New(800, 400)
//	if err := c.SetData(forest); err != nil {
//	    return err
//	}
//	img := surface.NewImageSurface(800, 400)
//	if err := c.Render(img); err != nil {
//	    return err
//	}
//
// # Layout
//
// The chart stacks four panels from top to bottom: a timeline with tick
// labels, a header with the collapse toggle, the flame area, and a resize
// handle. The flame area takes whatever height the others leave.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the surface
//   - X increases right and maps linearly to time
//   - Y increases down; level 0 is the top row of the flame area
//
// # Frames
//
// Without a host the chart draws only when Render is called. With
// WithHost, state changes request frames: pan and zoom request a full
// redraw, hover and selection a partial one. Hit regions are rebuilt
// after full frames, debounced by Config.RegionRebuildDelay.
package flamegraph

// Version is the current version of the library.
const Version = "0.1.0"
