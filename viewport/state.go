// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

// State is the shared pan/zoom state of a viewport.
//
// Zoom is in pixels per time unit. PositionX is the time at the left edge.
// Min and Max bound the data extent.
type State struct {
	Zoom      float64
	PositionX float64
	Min       float64
	Max       float64
	Width     float64
	Height    float64
}

// Degenerate reports whether the time extent is empty or inverted.
func (s State) Degenerate() bool {
	return s.Max <= s.Min
}

// InitialZoom is the zoom that fits the whole extent into Width.
// It is 1 for a degenerate extent or an empty surface.
func (s State) InitialZoom() float64 {
	if s.Degenerate() || s.Width <= 0 {
		return 1
	}
	return s.Width / (s.Max - s.Min)
}

// RealView returns the visible time span, Width / Zoom.
func (s State) RealView() float64 {
	if s.Zoom <= 0 {
		return 0
	}
	return s.Width / s.Zoom
}

// VisibleEnd returns the time at the right edge.
func (s State) VisibleEnd() float64 {
	return s.PositionX + s.RealView()
}

// TimeToPixel maps an absolute time to a horizontal pixel offset.
func (s State) TimeToPixel(t float64) float64 {
	return (t - s.PositionX) * s.Zoom
}

// PixelToTime maps a horizontal pixel offset back to an absolute time.
// It is the inverse of TimeToPixel.
func (s State) PixelToTime(px float64) float64 {
	return s.PositionX + px/s.Zoom
}

// PixelsToDuration converts a pixel length into a time length.
func (s State) PixelsToDuration(px float64) float64 {
	return px / s.Zoom
}

// MaxPositionX is the largest PositionX that keeps the window inside the
// extent. It never returns less than Min.
func (s State) MaxPositionX() float64 {
	return max(s.Max-s.RealView(), s.Min)
}
