// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"
)

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Intersect returns the overlap of r and o. The result is empty when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := math.Max(r.X, o.X), math.Max(r.Y, o.Y)
	x1, y1 := math.Min(r.X+r.W, o.X+o.W), math.Min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Bounds returns the smallest integer rectangle covering r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// StrokeStyle describes an outline.
type StrokeStyle struct {
	Color color.Color
	Width float64
}

// DefaultStrokeStyle returns a 1px black stroke.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Color: color.Black, Width: 1}
}

// WithColor returns a copy with the given color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// Align is the horizontal anchor of a text run.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes a single-line text run.
type TextStyle struct {
	Color color.Color

	// Size is the font size in pixels.
	Size float64

	Align Align
}

// DefaultTextSize is the label font size in pixels.
const DefaultTextSize = 12.0

// DefaultTextStyle returns black left-aligned text at DefaultTextSize.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: color.Black, Size: DefaultTextSize}
}

// WithColor returns a copy with the given color.
func (s TextStyle) WithColor(c color.Color) TextStyle {
	s.Color = c
	return s
}

// WithAlign returns a copy with the given alignment.
func (s TextStyle) WithAlign(a Align) TextStyle {
	s.Align = a
	return s
}

// Options configures surface creation through the registry.
type Options struct {
	Width  int
	Height int

	// Background, when non-nil, is used to clear the new surface.
	Background color.Color
}
