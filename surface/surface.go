// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the drawing target of a chart render pass.
//
// Coordinates are surface pixels with the origin at the top-left corner.
// Drawing after Close is a no-op.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with c.
	Clear(c color.Color)

	// FillRect fills r with c.
	FillRect(r Rect, c color.Color)

	// StrokeRect outlines r. The stroke is centred on the edges.
	StrokeRect(r Rect, style StrokeStyle)

	// Line draws a straight segment.
	Line(x0, y0, x1, y1 float64, style StrokeStyle)

	// DrawText draws s with its baseline at y. x is the left edge, centre or
	// right edge depending on style.Align.
	DrawText(s string, x, y float64, style TextStyle)

	// Flush completes pending drawing.
	Flush() error

	// Close releases resources. Close is idempotent.
	Close() error
}

// ClippableSurface is implemented by surfaces that can restrict drawing to a
// rectangle. Clips nest: each PushClip intersects with the current clip.
type ClippableSurface interface {
	Surface

	PushClip(r Rect)
	PopClip()
}

// Snapshotter is implemented by surfaces whose contents can be read back.
type Snapshotter interface {
	// Snapshot returns a copy of the surface pixels.
	Snapshot() *image.RGBA
}
