// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

var (
	defaultFontOnce sync.Once
	defaultFont     *opentype.Font
	defaultFontErr  error
)

// DefaultFont returns the parsed Go Regular font used for labels.
func DefaultFont() (*opentype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("surface: parse default font: %w", defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// ImageSurface is a CPU surface that renders into an *image.RGBA.
//
// Shapes are rasterized with golang.org/x/image/vector into a coverage mask
// and composited source-over. Text uses an opentype face per size.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	raster *vector.Rasterizer
	font   *opentype.Font
	faces  map[float64]font.Face
	clips  []image.Rectangle

	closed bool
}

// NewImageSurface creates a transparent surface of the given size. Sizes
// below 1 are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))))
}

// NewImageSurfaceFromImage creates a surface that draws into img directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	f, _ := DefaultFont()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		raster: vector.NewRasterizer(0, 0),
		font:   f,
		faces:  make(map[float64]font.Face),
	}
}

// SetFont replaces the text font. A nil font disables text.
func (s *ImageSurface) SetFont(f *opentype.Font) {
	s.closeFaces()
	s.font = f
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Image returns the backing image. It is not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole surface, ignoring the clip.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills r with c.
func (s *ImageSurface) FillRect(r Rect, c color.Color) {
	if s.closed {
		return
	}
	r = r.Intersect(s.clipRect())
	if r.Empty() {
		return
	}
	s.fillPolygon(c,
		[2]float64{r.X, r.Y},
		[2]float64{r.X + r.W, r.Y},
		[2]float64{r.X + r.W, r.Y + r.H},
		[2]float64{r.X, r.Y + r.H},
	)
}

// StrokeRect outlines r with the stroke centred on its edges.
func (s *ImageSurface) StrokeRect(r Rect, style StrokeStyle) {
	w := style.Width
	if s.closed || w <= 0 || style.Color == nil {
		return
	}
	h := w / 2
	outer := Rect{X: r.X - h, Y: r.Y - h, W: r.W + w, H: r.H + w}
	s.FillRect(Rect{X: outer.X, Y: outer.Y, W: outer.W, H: w}, style.Color)
	s.FillRect(Rect{X: outer.X, Y: outer.Y + outer.H - w, W: outer.W, H: w}, style.Color)
	s.FillRect(Rect{X: outer.X, Y: outer.Y + w, W: w, H: outer.H - 2*w}, style.Color)
	s.FillRect(Rect{X: outer.X + outer.W - w, Y: outer.Y + w, W: w, H: outer.H - 2*w}, style.Color)
}

// Line draws a segment of the given width.
func (s *ImageSurface) Line(x0, y0, x1, y1 float64, style StrokeStyle) {
	w := style.Width
	if s.closed || w <= 0 || style.Color == nil {
		return
	}
	h := w / 2
	switch {
	case y0 == y1:
		s.FillRect(Rect{X: math.Min(x0, x1), Y: y0 - h, W: math.Abs(x1 - x0), H: w}, style.Color)
		return
	case x0 == x1:
		s.FillRect(Rect{X: x0 - h, Y: math.Min(y0, y1), W: w, H: math.Abs(y1 - y0)}, style.Color)
		return
	}

	clip := s.clipRect()
	clip = Rect{X: clip.X - w, Y: clip.Y - w, W: clip.W + 2*w, H: clip.H + 2*w}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, clip)
	if !ok {
		return
	}
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	nx, ny := -dy/n*h, dx/n*h
	s.fillPolygon(style.Color,
		[2]float64{x0 + nx, y0 + ny},
		[2]float64{x1 + nx, y1 + ny},
		[2]float64{x1 - nx, y1 - ny},
		[2]float64{x0 - nx, y0 - ny},
	)
}

// DrawText draws a single line of text with its baseline at y.
func (s *ImageSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.closed || str == "" || style.Color == nil {
		return
	}
	face := s.face(style.Size)
	if face == nil {
		return
	}

	switch adv := font.MeasureString(face, str); style.Align {
	case AlignCenter:
		x -= float64(adv) / 128
	case AlignRight:
		x -= float64(adv) / 64
	}

	clip := s.clip()
	if clip.Empty() {
		return
	}
	d := &font.Drawer{
		Dst:  s.img.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))},
	}
	d.DrawString(str)
}

// PushClip restricts drawing to r intersected with the current clip.
func (s *ImageSurface) PushClip(r Rect) {
	s.clips = append(s.clips, r.Bounds().Intersect(s.clip()))
}

// PopClip restores the previous clip.
func (s *ImageSurface) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// Flush is a no-op; drawing is immediate.
func (s *ImageSurface) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Snapshot returns a copy of the surface pixels.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Close releases the font faces.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.closeFaces()
	return nil
}

func (s *ImageSurface) clip() image.Rectangle {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.img.Bounds()
}

func (s *ImageSurface) clipRect() Rect {
	c := s.clip()
	return Rect{X: float64(c.Min.X), Y: float64(c.Min.Y), W: float64(c.Dx()), H: float64(c.Dy())}
}

func (s *ImageSurface) face(size float64) font.Face {
	if s.font == nil {
		return nil
	}
	if size <= 0 {
		size = DefaultTextSize
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.faces[size] = f
	return f
}

func (s *ImageSurface) closeFaces() {
	for size, f := range s.faces {
		_ = f.Close()
		delete(s.faces, size)
	}
}

// fillPolygon rasterizes a closed polygon into a coverage mask over its
// bounding box and composites c through it, limited to the clip.
func (s *ImageSurface) fillPolygon(c color.Color, pts ...[2]float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	box := Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}.Bounds()
	dst := box.Intersect(s.clip())
	if dst.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	z := s.raster
	z.Reset(box.Dx(), box.Dy())
	z.MoveTo(float32(pts[0][0]-ox), float32(pts[0][1]-oy))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, dst, image.NewUniform(c), image.Point{}, mask, dst.Min.Sub(box.Min), draw.Over)
}

// clipSegment clips a segment to r with the Liang-Barsky algorithm.
func clipSegment(x0, y0, x1, y1 float64, r Rect) (cx0, cy0, cx1, cy1 float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0 - r.X},
		{dx, r.X + r.W - x0},
		{-dy, y0 - r.Y},
		{dy, r.Y + r.H - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
