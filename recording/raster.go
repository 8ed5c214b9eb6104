// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/flamegraph/surface"
)

// ErrNotEnded is returned by output methods called before End.
var ErrNotEnded = errors.New("recording: backend output requested before End")

// DefaultRasterSurface is the surface backend RasterBackend draws into
// unless SurfaceName says otherwise.
const DefaultRasterSurface = "image"

// pixelSource is implemented by surfaces that expose their pixels directly.
type pixelSource interface {
	Image() *image.RGBA
}

// RasterBackend replays commands into a surface created through the
// surface registry and encodes the result as PNG.
type RasterBackend struct {
	SurfaceBackend

	// SurfaceName selects the surface backend. Empty means
	// DefaultRasterSurface.
	SurfaceName string

	ended bool
}

// NewRasterBackend creates an unsized raster backend; Begin allocates the
// target surface.
func NewRasterBackend() *RasterBackend {
	return &RasterBackend{SurfaceName: DefaultRasterSurface}
}

// Begin creates a transparent target of the given size.
func (b *RasterBackend) Begin(width, height int) error {
	name := b.SurfaceName
	if name == "" {
		name = DefaultRasterSurface
	}
	target, err := surface.NewSurfaceByName(name, width, height)
	if err != nil {
		return fmt.Errorf("recording: raster surface %q %dx%d: %w", name, width, height, err)
	}
	if _, ok := target.(surface.Snapshotter); !ok {
		if _, ok := target.(pixelSource); !ok {
			_ = target.Close()
			return fmt.Errorf("recording: raster surface %q exposes no pixels", name)
		}
	}
	if b.Surface != nil {
		_ = b.Surface.Close()
	}
	b.Surface = target
	b.ended = false
	return nil
}

// End marks the image complete.
func (b *RasterBackend) End() error {
	if b.Surface == nil {
		return ErrNotEnded
	}
	b.ended = true
	return b.Surface.Flush()
}

// Image returns the rendered image, or nil before End.
func (b *RasterBackend) Image() *image.RGBA {
	if !b.ended {
		return nil
	}
	if p, ok := b.Surface.(pixelSource); ok {
		return p.Image()
	}
	return b.Surface.(surface.Snapshotter).Snapshot()
}

// WriteTo encodes the image as PNG.
func (b *RasterBackend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, ErrNotEnded
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.Image()); err != nil {
		return 0, fmt.Errorf("recording: encode png: %w", err)
	}
	return buf.WriteTo(w)
}

func init() {
	Register("raster", func() Backend { return NewRasterBackend() }, ".png")
}
