// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/flamegraph/recording"
	"github.com/gogpu/flamegraph/surface"
)

// DefaultFontFamily is the CSS font family of exported labels.
const DefaultFontFamily = "Go, sans-serif"

// ErrNotEnded is returned by WriteTo before End.
var ErrNotEnded = errors.New("export: svg requested before End")

// SVGBackend renders replayed commands as an SVG document.
//
// Coordinates are rounded to whole pixels; positive widths never round to
// zero so thin clusters stay visible.
type SVGBackend struct {
	// FontFamily is used for text. Empty selects DefaultFontFamily.
	FontFamily string

	buf    bytes.Buffer
	canvas *svg.SVG
	width  int
	height int
	clips  int
	open   int
	ended  bool
}

var _ recording.WriterBackend = (*SVGBackend)(nil)

// NewSVGBackend creates an SVG backend.
func NewSVGBackend() *SVGBackend {
	return &SVGBackend{}
}

// Begin starts a document of the given size.
func (b *SVGBackend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: svg size %dx%d: %w", width, height, surface.ErrInvalidSize)
	}
	b.buf.Reset()
	b.canvas = svg.New(&b.buf)
	b.width, b.height = width, height
	b.clips, b.open, b.ended = 0, 0, false
	b.canvas.Start(width, height)
	return nil
}

// End closes open groups and the document.
func (b *SVGBackend) End() error {
	if b.canvas == nil {
		return ErrNotEnded
	}
	for ; b.open > 0; b.open-- {
		b.canvas.Gend()
	}
	b.canvas.End()
	b.ended = true
	return nil
}

// WriteTo writes the document.
func (b *SVGBackend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, ErrNotEnded
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// Bytes returns the document after End.
func (b *SVGBackend) Bytes() []byte {
	if !b.ended {
		return nil
	}
	return b.buf.Bytes()
}

func (b *SVGBackend) Clear(c color.RGBA) {
	b.canvas.Rect(0, 0, b.width, b.height, fill(c))
}

func (b *SVGBackend) FillRect(r surface.Rect, c color.RGBA) {
	x, y, w, h := snap(r)
	if w == 0 || h == 0 {
		return
	}
	b.canvas.Rect(x, y, w, h, fill(c))
}

func (b *SVGBackend) StrokeRect(r surface.Rect, c color.RGBA, width float64) {
	x, y, w, h := snap(r)
	b.canvas.Rect(x, y, w, h, "fill:none;"+stroke(c, width))
}

func (b *SVGBackend) Line(x0, y0, x1, y1 float64, c color.RGBA, width float64) {
	b.canvas.Line(round(x0), round(y0), round(x1), round(y1), stroke(c, width))
}

func (b *SVGBackend) DrawText(s string, x, y float64, c color.RGBA, size float64, align surface.Align) {
	anchor := "start"
	switch align {
	case surface.AlignCenter:
		anchor = "middle"
	case surface.AlignRight:
		anchor = "end"
	}
	family := b.FontFamily
	if family == "" {
		family = DefaultFontFamily
	}
	b.canvas.Text(round(x), round(y), s,
		fmt.Sprintf("%s;font-family:%s;font-size:%gpx;text-anchor:%s", fill(c), family, size, anchor))
}

// PushClip opens a group clipped to r.
func (b *SVGBackend) PushClip(r surface.Rect) {
	b.clips++
	id := fmt.Sprintf("clip%d", b.clips)
	x, y, w, h := snap(r)
	b.canvas.ClipPath(`id="` + id + `"`)
	b.canvas.Rect(x, y, w, h)
	b.canvas.ClipEnd()
	b.canvas.Group(`clip-path="url(#` + id + `)"`)
	b.open++
}

// PopClip closes the innermost clip group.
func (b *SVGBackend) PopClip() {
	if b.open == 0 {
		return
	}
	b.canvas.Gend()
	b.open--
}

// WriteSVG replays rec as SVG into w.
func WriteSVG(w io.Writer, rec *recording.Recording) error {
	b := NewSVGBackend()
	if err := rec.Playback(b); err != nil {
		return fmt.Errorf("export: playback: %w", err)
	}
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	return nil
}

func fill(c color.RGBA) string {
	s := fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
	if c.A != 0xff {
		s += fmt.Sprintf(";fill-opacity:%.3g", float64(c.A)/0xff)
	}
	return s
}

func stroke(c color.RGBA, width float64) string {
	s := fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-width:%g", c.R, c.G, c.B, width)
	if c.A != 0xff {
		s += fmt.Sprintf(";stroke-opacity:%.3g", float64(c.A)/0xff)
	}
	return s
}

func round(v float64) int {
	return int(math.Round(v))
}

// snap rounds a rectangle to whole pixels keeping positive sizes at least 1.
func snap(r surface.Rect) (x, y, w, h int) {
	x, y = round(r.X), round(r.Y)
	w, h = round(r.X+r.W)-x, round(r.Y+r.H)-y
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return x, y, max(w, 0), max(h, 0)
}

func init() {
	recording.Register("svg", func() recording.Backend { return NewSVGBackend() }, ".svg")
}
