// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image/color"
	"maps"
)

// ColorRef is an index into a Palette.
type ColorRef uint32

// Palette interns colors referenced by commands. Equal colors share one
// entry.
//
// Palette is not safe for concurrent use.
type Palette struct {
	colors []color.RGBA
	index  map[color.RGBA]ColorRef
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{
		colors: make([]color.RGBA, 0, 16),
		index:  make(map[color.RGBA]ColorRef),
	}
}

// Add interns c and returns its reference. A nil color is stored as
// transparent.
func (p *Palette) Add(c color.Color) ColorRef {
	rgba := toRGBA(c)
	if ref, ok := p.index[rgba]; ok {
		return ref
	}
	// #nosec G115 -- palette size is bounded by distinct colors in a frame
	ref := ColorRef(uint32(len(p.colors)))
	p.colors = append(p.colors, rgba)
	p.index[rgba] = ref
	return ref
}

// Get returns the color for ref, or transparent for an unknown ref.
func (p *Palette) Get(ref ColorRef) color.RGBA {
	if int(ref) >= len(p.colors) {
		return color.RGBA{}
	}
	return p.colors[ref]
}

// Len returns the number of distinct colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns the palette entries in reference order.
func (p *Palette) Colors() []color.RGBA {
	return p.colors
}

func (p *Palette) clone() *Palette {
	return &Palette{
		colors: append([]color.RGBA(nil), p.colors...),
		index:  maps.Clone(p.index),
	}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
