// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxTicks bounds the ticks of one grid. The spacing keeps the real count
// near Width/GridDensity.
const maxTicks = 1 << 16

// Tick is one vertical grid line.
type Tick struct {
	Time  float64
	X     float64
	Label string
}

// Grid describes the time grid for the current state.
type Grid struct {
	// Delta is the time between two adjacent ticks.
	Delta float64

	// Accuracy is the number of decimal places tick labels need.
	Accuracy int

	Ticks []Tick
}

// gridDelta halves the fit-to-width tick spacing once per doubling of zoom,
// so lines stay roughly density pixels apart.
func gridDelta(s State, density float64) float64 {
	span := s.Max - s.Min
	if s.Degenerate() {
		span = 1
	}
	lines := s.Width / density
	if lines < 1 {
		lines = 1
	}
	delta := span / lines

	view := s.RealView()
	if view <= 0 {
		return delta
	}
	proportion := view / span
	return delta / math.Pow(2, math.Floor(math.Log2(1/proportion)))
}

// accuracyFor returns the decimal places needed to print half of delta.
func accuracyFor(delta float64) int {
	if delta <= 0 || math.IsInf(delta, 0) || math.IsNaN(delta) {
		return 0
	}
	return max(0, int(math.Ceil(-math.Log10(delta/2)-1e-9)))
}

// Grid computes tick positions and labels for the visible window.
func (e *Engine) Grid() Grid {
	s := e.state
	delta := gridDelta(s, e.cfg.GridDensity)
	acc := accuracyFor(delta)
	g := Grid{Delta: delta, Accuracy: acc}
	if s.Width <= 0 || delta <= 0 {
		return g
	}

	// Count ticks with an int: first can exceed 2^53 on large spans, where
	// incrementing a float64 no longer changes it.
	first := math.Floor((s.PositionX - s.Min) / delta)
	n := math.Ceil(s.RealView() / delta)
	if math.IsNaN(first) || math.IsInf(first, 0) || !(n >= 0 && n <= maxTicks) {
		return g
	}
	p := message.NewPrinter(e.cfg.Language)
	for k := 0; k <= int(n); k++ {
		t := s.Min + (first+float64(k))*delta
		g.Ticks = append(g.Ticks, Tick{
			Time:  t,
			X:     s.TimeToPixel(t),
			Label: formatTime(p, t-s.Min, acc, e.cfg.TimeUnit),
		})
	}
	return g
}

// GridAccuracy returns the decimal places tick labels need at the current
// zoom.
func (e *Engine) GridAccuracy() int {
	return accuracyFor(gridDelta(e.state, e.cfg.GridDensity))
}

func formatTime(p *message.Printer, t float64, acc int, unit string) string {
	v := number.Decimal(t, number.MinFractionDigits(acc), number.MaxFractionDigits(acc))
	if unit == "" {
		return p.Sprintf("%v", v)
	}
	return p.Sprintf("%v %s", v, unit)
}

// FormatTime renders t with the engine's unit and current grid accuracy.
func (e *Engine) FormatTime(t float64) string {
	return formatTime(message.NewPrinter(e.cfg.Language), t, e.GridAccuracy(), e.cfg.TimeUnit)
}

var defaultLanguage = language.English
