// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"golang.org/x/text/language"

	"github.com/gogpu/flamegraph/internal/logging"
	"github.com/gogpu/flamegraph/internal/observer"
)

// Default engine settings.
const (
	DefaultMaxGridAccuracy = 6
	DefaultGridDensity     = 60.0
)

// zoomTolerance absorbs rounding when comparing a zoom with InitialZoom.
const zoomTolerance = 1e-12

// Config holds engine settings.
type Config struct {
	// MaxGridAccuracy caps the decimal places of tick labels. Zooming in is
	// refused once the grid already needs this many.
	MaxGridAccuracy int

	// GridDensity is the target pixel distance between grid lines.
	GridDensity float64

	// TimeUnit is appended to tick labels, e.g. "ms".
	TimeUnit string

	// Language selects number formatting for tick labels.
	Language language.Tag
}

// DefaultConfig returns the default engine settings.
func DefaultConfig() Config {
	return Config{
		MaxGridAccuracy: DefaultMaxGridAccuracy,
		GridDensity:     DefaultGridDensity,
		TimeUnit:        "ms",
		Language:        defaultLanguage,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxGridAccuracy <= 0 {
		c.MaxGridAccuracy = d.MaxGridAccuracy
	}
	if c.GridDensity <= 0 {
		c.GridDensity = d.GridDensity
	}
	if c.Language == language.Und {
		c.Language = d.Language
	}
	return c
}

// Change is emitted after every mutation of the shared state.
type Change struct {
	Min       float64
	Max       float64
	Zoom      float64
	PositionX float64
}

// Engine is the root viewport. It owns the shared State and an ordered
// arena of child panels that mirror it.
//
// Engine is not safe for concurrent use.
type Engine struct {
	state   State
	cfg     Config
	panels  []Panel
	changed observer.List[Change]
}

// New creates an engine for a surface of the given size with an empty
// extent. The zoom starts at InitialZoom.
func New(width, height float64, cfg Config) *Engine {
	e := &Engine{
		state: State{Width: max(width, 0), Height: max(height, 0)},
		cfg:   cfg.withDefaults(),
	}
	e.state.Zoom = e.state.InitialZoom()
	return e
}

// State returns a copy of the shared state.
func (e *Engine) State() State {
	return e.state
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// OnChange registers fn for viewport-changed notifications.
func (e *Engine) OnChange(fn func(Change)) observer.Handle {
	return e.changed.Add(fn)
}

// TimeToPixel maps an absolute time to a pixel offset from the left edge.
func (e *Engine) TimeToPixel(t float64) float64 {
	return e.state.TimeToPixel(t)
}

// PixelToTime maps a pixel offset from the left edge to an absolute time.
func (e *Engine) PixelToTime(px float64) float64 {
	return e.state.PixelToTime(px)
}

// PixelsToDuration converts a pixel length into a time length.
func (e *Engine) PixelsToDuration(px float64) float64 {
	return e.state.PixelsToDuration(px)
}

// SetBounds replaces the time extent and fits it to the width.
func (e *Engine) SetBounds(lo, hi float64) {
	e.state.Min, e.state.Max = lo, hi
	if e.state.Degenerate() {
		logging.Get().Debug("viewport: degenerate extent", "min", lo, "max", hi)
	}
	e.ResetToFit()
}

// ResetToFit zooms out to show the whole extent.
func (e *Engine) ResetToFit() {
	e.state.Zoom = e.state.InitialZoom()
	e.state.PositionX = e.state.Min
	e.commit()
}

// SetZoom sets the zoom, clamped from below to InitialZoom unless the
// extent is degenerate. Zooming in is refused, returning false, once the
// grid needs MaxGridAccuracy decimal places; zooming out is always allowed.
func (e *Engine) SetZoom(zoom float64) bool {
	if !e.setZoom(zoom) {
		return false
	}
	e.clampPosition()
	e.commit()
	return true
}

func (e *Engine) setZoom(zoom float64) bool {
	if !finite(zoom) || zoom <= 0 {
		return false
	}
	if !e.state.Degenerate() {
		zoom = max(zoom, e.state.InitialZoom())
	}
	if zoom > e.state.Zoom && e.GridAccuracy() >= e.cfg.MaxGridAccuracy {
		logging.Get().Debug("viewport: zoom refused at accuracy limit",
			"zoom", zoom, "accuracy", e.GridAccuracy())
		return false
	}
	e.state.Zoom = zoom
	return true
}

// ZoomAt multiplies the zoom by factor while keeping the time under pixelX
// fixed on screen. It reports whether the zoom changed.
func (e *Engine) ZoomAt(pixelX, factor float64) bool {
	if !finite(pixelX) || !finite(factor) {
		return false
	}
	anchor := e.state.PixelToTime(pixelX)
	if !e.setZoom(e.state.Zoom * factor) {
		return false
	}
	e.state.PositionX = anchor - pixelX/e.state.Zoom
	e.clampPosition()
	e.commit()
	return true
}

// Pan shifts the window by deltaTime, clamped to the extent.
// Non-finite deltas are ignored.
func (e *Engine) Pan(deltaTime float64) {
	if !finite(deltaTime) {
		return
	}
	e.SetPositionX(e.state.PositionX + deltaTime)
}

// SetPositionX moves the left edge to x, clamped to the extent.
// Non-finite positions are ignored.
func (e *Engine) SetPositionX(x float64) {
	if !finite(x) {
		return
	}
	e.state.PositionX = x
	e.clampPosition()
	e.commit()
}

// clampPosition applies the three pan cases: in range, clamp to Min, or
// clamp to Max - RealView.
func (e *Engine) clampPosition() {
	s := &e.state
	switch hi := s.MaxPositionX(); {
	case s.PositionX < s.Min:
		s.PositionX = s.Min
	case s.PositionX > hi:
		s.PositionX = hi
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Resize changes the surface size. If the current zoom no longer fills the
// width the view is reset to fit; otherwise the window is re-centred.
func (e *Engine) Resize(width, height float64) {
	if !finite(width) || !finite(height) {
		return
	}
	width, height = max(width, 0), max(height, 0)
	prevView := e.state.RealView()
	e.state.Width, e.state.Height = width, height

	initial := e.state.InitialZoom()
	if !e.state.Degenerate() && e.state.Zoom < initial &&
		!scalar.EqualWithinAbsOrRel(e.state.Zoom, initial, zoomTolerance, zoomTolerance) {
		e.Relayout()
		e.ResetToFit()
		return
	}

	e.state.PositionX -= (e.state.RealView() - prevView) / 2
	e.clampPosition()
	e.Relayout()
	e.commit()
}

// IsFit reports whether the whole extent is visible.
func (e *Engine) IsFit() bool {
	return scalar.EqualWithinAbsOrRel(e.state.Zoom, e.state.InitialZoom(), zoomTolerance, zoomTolerance)
}

// commit pushes the shared fields into every panel and notifies observers.
func (e *Engine) commit() {
	e.propagate()
	e.changed.Emit(Change{
		Min:       e.state.Min,
		Max:       e.state.Max,
		Zoom:      e.state.Zoom,
		PositionX: e.state.PositionX,
	})
}
