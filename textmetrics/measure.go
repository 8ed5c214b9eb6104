// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/flamegraph/cache"
)

// DefaultCacheSize is the number of advances kept per measurer.
const DefaultCacheSize = 4096

// Measurer returns the horizontal advance of text in pixels at a font size.
type Measurer interface {
	Advance(text string, size float64) float64
}

type advanceKey struct {
	text string
	size float64
}

// Shaper measures text with go-text HarfBuzz shaping.
//
// Shaper is safe for concurrent use: the parsed font is read-only, faces are
// created per call and shapers are pooled.
type Shaper struct {
	font   *font.Font
	pool   sync.Pool
	cache  *cache.LRU[advanceKey, float64]
	script language.Script
	lang   language.Language
}

// NewShaper parses a TrueType or OpenType font.
func NewShaper(ttf []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse font: %w", err)
	}
	return &Shaper{
		font:   face.Font,
		pool:   sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		cache:  cache.New[advanceKey, float64](DefaultCacheSize),
		script: language.Latin,
		lang:   language.NewLanguage("en"),
	}, nil
}

// DefaultShaper returns a Shaper for the Go Regular font.
func DefaultShaper() (*Shaper, error) {
	return NewShaper(goregular.TTF)
}

// Advance implements Measurer.
func (s *Shaper) Advance(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	return s.cache.GetOrCreate(advanceKey{text, size}, func() float64 {
		return s.shape(text, size)
	})
}

// Stats returns the advance cache statistics.
func (s *Shaper) Stats() cache.Stats {
	return s.cache.Stats()
}

func (s *Shaper) shape(text string, size float64) float64 {
	runes := []rune(text)
	script := s.script
	for _, r := range runes {
		if r != ' ' {
			script = language.LookupScript(r)
			break
		}
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      toFixed(size),
		Script:    script,
		Language:  s.lang,
	})
	s.pool.Put(hb)
	return fromFixed(out.Advance)
}

// FaceMeasurer measures with golang.org/x/image opentype faces.
//
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	font  *opentype.Font
	cache *cache.LRU[advanceKey, float64]

	mu    sync.Mutex
	faces map[float64]xfont.Face
}

// NewFaceMeasurer wraps a parsed opentype font.
func NewFaceMeasurer(f *opentype.Font) *FaceMeasurer {
	return &FaceMeasurer{
		font:  f,
		cache: cache.New[advanceKey, float64](DefaultCacheSize),
		faces: make(map[float64]xfont.Face),
	}
}

// Advance implements Measurer. It returns 0 if no face can be built.
func (m *FaceMeasurer) Advance(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	return m.cache.GetOrCreate(advanceKey{text, size}, func() float64 {
		m.mu.Lock()
		defer m.mu.Unlock()
		face, ok := m.faces[size]
		if !ok {
			var err error
			face, err = opentype.NewFace(m.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingNone})
			if err != nil {
				return 0
			}
			m.faces[size] = face
		}
		return fromFixed(xfont.MeasureString(face, text))
	})
}

// Close releases the cached faces.
func (m *FaceMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, f := range m.faces {
		_ = f.Close()
		delete(m.faces, size)
	}
	return nil
}

// FixedMeasurer assumes every rune has the same advance, Ratio × size.
// It is useful in tests and for monospace fonts.
type FixedMeasurer struct {
	Ratio float64
}

// Advance implements Measurer.
func (m FixedMeasurer) Advance(text string, size float64) float64 {
	return float64(len([]rune(text))) * m.Ratio * size
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
