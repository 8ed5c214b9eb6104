// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/flamegraph/surface"
)

// Backend receives replayed commands and turns them into an output format.
//
// Backends are created through the registry with NewBackend and register
// themselves with Register, usually from init.
type Backend interface {
	// Begin prepares the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes output. Output methods are valid after End.
	End() error

	Clear(c color.RGBA)
	FillRect(r surface.Rect, c color.RGBA)
	StrokeRect(r surface.Rect, c color.RGBA, width float64)
	Line(x0, y0, x1, y1 float64, c color.RGBA, width float64)
	DrawText(s string, x, y float64, c color.RGBA, size float64, align surface.Align)
	PushClip(r surface.Rect)
	PopClip()
}

// WriterBackend is a Backend whose output can be streamed.
type WriterBackend interface {
	Backend

	// WriteTo writes the output. It is valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend is a Backend that produces pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image after End, or nil.
	Image() *image.RGBA
}

// SurfaceBackend adapts a surface.Surface to Backend. Clip commands are
// ignored when the surface does not implement surface.ClippableSurface.
type SurfaceBackend struct {
	Surface surface.Surface
}

// Begin implements Backend.
func (b SurfaceBackend) Begin(width, height int) error { return nil }

// End flushes the surface.
func (b SurfaceBackend) End() error { return b.Surface.Flush() }

func (b SurfaceBackend) Clear(c color.RGBA) { b.Surface.Clear(c) }

func (b SurfaceBackend) FillRect(r surface.Rect, c color.RGBA) { b.Surface.FillRect(r, c) }

func (b SurfaceBackend) StrokeRect(r surface.Rect, c color.RGBA, width float64) {
	b.Surface.StrokeRect(r, surface.StrokeStyle{Color: c, Width: width})
}

func (b SurfaceBackend) Line(x0, y0, x1, y1 float64, c color.RGBA, width float64) {
	b.Surface.Line(x0, y0, x1, y1, surface.StrokeStyle{Color: c, Width: width})
}

func (b SurfaceBackend) DrawText(s string, x, y float64, c color.RGBA, size float64, align surface.Align) {
	b.Surface.DrawText(s, x, y, surface.TextStyle{Color: c, Size: size, Align: align})
}

func (b SurfaceBackend) PushClip(r surface.Rect) {
	if cs, ok := b.Surface.(surface.ClippableSurface); ok {
		cs.PushClip(r)
	}
}

func (b SurfaceBackend) PopClip() {
	if cs, ok := b.Surface.(surface.ClippableSurface); ok {
		cs.PopClip()
	}
}
