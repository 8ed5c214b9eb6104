// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"image/color"
	"math"

	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/hit"
	"github.com/gogpu/flamegraph/internal/logging"
	"github.com/gogpu/flamegraph/schedule"
	"github.com/gogpu/flamegraph/surface"
	"github.com/gogpu/flamegraph/textmetrics"
	"github.com/gogpu/flamegraph/viewport"
)

const flameTitle = "Flame chart"

var (
	gridStroke      = surface.StrokeStyle{Color: colorGrid, Width: 1}
	hoverStroke     = surface.StrokeStyle{Color: colorHover, Width: 1}
	selectionStroke = surface.StrokeStyle{Color: colorSelection, Width: 2}
)

// draw renders one pass. A partial pass only repaints the flame area.
func (c *Chart) draw(s surface.Surface, pass schedule.Pass) {
	st := c.engine.State()
	grid := c.engine.Grid()
	clip, _ := s.(surface.ClippableSurface)

	if pass == schedule.Full {
		s.Clear(colorBackground)
	}

	drawn := 0
	for _, p := range c.engine.Panels() {
		h := p.VisibleHeight()
		if h <= 0 || (pass != schedule.Full && p.ID != c.flame) {
			continue
		}
		bounds := surface.Rect{Y: p.Position, W: st.Width, H: h}
		if clip != nil {
			clip.PushClip(bounds)
		}
		switch p.ID {
		case c.timeline:
			c.drawTimeline(s, bounds, grid)
		case c.header:
			c.drawHeader(s, bounds)
		case c.flame:
			drawn = c.drawFlame(s, bounds, st, grid)
		case c.handle:
			c.drawHandle(s, bounds)
		}
		if clip != nil {
			clip.PopClip()
		}
	}
	logging.Get().Debug("flamegraph: frame", "pass", pass, "clusters", drawn)
}

func (c *Chart) drawTimeline(s surface.Surface, b surface.Rect, g viewport.Grid) {
	s.FillRect(b, colorHeader)
	style := surface.TextStyle{Color: colorMuted, Size: c.cfg.FontSize}
	baseline := b.Y + (b.H+c.cfg.FontSize*0.7)/2
	for _, tk := range g.Ticks {
		s.Line(tk.X, b.Y, tk.X, b.Y+b.H, gridStroke)
		s.DrawText(tk.Label, tk.X+labelPadding, baseline, style)
	}
}

func (c *Chart) drawHeader(s surface.Surface, b surface.Rect) {
	s.FillRect(b, colorHeader)

	box := surface.Rect{X: b.X + 4, Y: b.Y + 4, W: HeaderHeight - 8, H: HeaderHeight - 8}
	s.StrokeRect(box, surface.StrokeStyle{Color: colorMuted, Width: 1})
	midX, midY := box.X+box.W/2, box.Y+box.H/2
	s.Line(box.X+2, midY, box.X+box.W-2, midY, surface.StrokeStyle{Color: colorText, Width: 1})
	if c.FlameCollapsed() {
		s.Line(midX, box.Y+2, midX, box.Y+box.H-2, surface.StrokeStyle{Color: colorText, Width: 1})
	}

	s.DrawText(flameTitle, b.X+HeaderHeight+labelPadding, b.Y+(b.H+c.cfg.FontSize*0.7)/2,
		surface.TextStyle{Color: colorText, Size: c.cfg.FontSize})
}

func (c *Chart) drawFlame(s surface.Surface, b surface.Rect, st viewport.State, g viewport.Grid) int {
	s.FillRect(b, colorBackground)
	for _, tk := range g.Ticks {
		s.Line(tk.X, b.Y, tk.X, b.Y+b.H, gridStroke)
	}

	visible := c.VisibleClusters()
	hovered := c.hoveredCluster()
	for i := range visible {
		rc := &visible[i]
		r := c.clusterRect(rc, st)
		r.Y += b.Y
		if r.Y+r.H <= b.Y || r.Y >= b.Y+b.H {
			continue
		}

		fill := c.clusterColor(rc)
		isHovered := hovered != nil && sameCluster(rc, hovered)
		if isHovered {
			fill = mix(fill, colorWhite, 0.3)
		}
		s.FillRect(r, fill)
		switch {
		case c.hasSelected && sameCluster(rc, &c.selected):
			s.StrokeRect(r, selectionStroke)
		case isHovered:
			s.StrokeRect(r, hoverStroke)
		}

		if rc.ShowsLabel(st.Zoom, c.cfg.MinLabelWidth) {
			left := math.Max(r.X, 0)
			right := math.Min(r.X+r.W, st.Width)
			text := textmetrics.Fit(c.measurer, rc.Nodes[0].Name(), right-left-2*labelPadding, c.cfg.FontSize)
			if text != "" {
				s.DrawText(text, left+labelPadding, r.Y+(r.H+c.cfg.FontSize*0.7)/2,
					surface.TextStyle{Color: labelColor(fill), Size: c.cfg.FontSize})
			}
		}
	}

	if knob, ok := c.knobRect(b.H, st.Width); ok {
		knob.Y += b.Y
		s.FillRect(knob, colorKnob)
	}
	return len(visible)
}

func (c *Chart) drawHandle(s surface.Surface, b surface.Rect) {
	s.FillRect(b, colorHeader)
	mid := b.Y + b.H/2
	s.Line(b.X+b.W/2-12, mid, b.X+b.W/2+12, mid, surface.StrokeStyle{Color: colorKnob, Width: 2})
}

// rebuildRegions recomputes every panel layer from the current state.
// Regions are panel-local; the knob is added before clusters so it wins.
func (c *Chart) rebuildRegions() {
	c.dispatcher.ClearAll()
	st := c.engine.State()

	tp, _ := c.engine.Panel(c.timeline)
	tl := c.dispatcher.Layer(c.timeline)
	for _, tk := range c.engine.Grid().Ticks {
		tl.Add(hit.Region{
			Payload: hit.TimestampPayload{Time: tk.Time, Label: tk.Label},
			X:       tk.X,
			W:       c.measurer.Advance(tk.Label, c.cfg.FontSize) + 2*labelPadding,
			H:       tp.Height,
		})
	}

	c.dispatcher.Layer(c.header).Add(hit.Region{
		Payload: hit.TogglePayload{Target: c.flame},
		W:       HeaderHeight,
		H:       HeaderHeight,
		Cursor:  hit.CursorPointer,
	})

	fp, _ := c.engine.Panel(c.flame)
	fl := c.dispatcher.Layer(c.flame)
	if knob, ok := c.knobRect(fp.VisibleHeight(), st.Width); ok {
		fl.Add(hit.Region{
			Payload: hit.KnobPayload{Panel: c.flame, Name: "scroll"},
			X:       knob.X,
			Y:       knob.Y,
			W:       knob.W,
			H:       knob.H,
			Cursor:  hit.CursorGrab,
		})
	}
	for _, rc := range c.VisibleClusters() {
		r := c.clusterRect(&rc, st)
		if r.Y+r.H <= 0 || r.Y >= fp.Height {
			continue
		}
		fl.Add(hit.Region{
			Payload: hit.ClusterPayload{Cluster: rc},
			X:       r.X,
			Y:       r.Y,
			W:       r.W,
			H:       r.H,
			Cursor:  hit.CursorPointer,
		})
	}

	c.dispatcher.Layer(c.handle).Add(hit.Region{
		Payload: hit.ResizePayload{Target: c.flame},
		W:       st.Width,
		H:       HandleHeight,
		Cursor:  hit.CursorRowResize,
	})

	c.dispatcher.Refresh()
}

// rowHeight is the drawn height of one level, leaving a 1px gap when there
// is room for it.
func (c *Chart) rowHeight() float64 {
	if c.cfg.NodeHeight > 2 {
		return c.cfg.NodeHeight - 1
	}
	return c.cfg.NodeHeight
}

// clusterRect returns the flame-local rectangle of rc.
func (c *Chart) clusterRect(rc *cluster.RenderCluster, st viewport.State) surface.Rect {
	return surface.Rect{
		X: st.TimeToPixel(rc.Start),
		Y: float64(rc.Level)*c.cfg.NodeHeight - c.scrollY,
		W: rc.PixelWidth(st.Zoom, c.params),
		H: c.rowHeight(),
	}
}

// knobRect returns the flame-local scroll knob, present only when the
// content is taller than the panel.
func (c *Chart) knobRect(panelHeight, width float64) (surface.Rect, bool) {
	content := c.contentHeight()
	if panelHeight <= 0 || content <= panelHeight {
		return surface.Rect{}, false
	}
	h := math.Max(panelHeight*panelHeight/content, math.Min(minKnobHeight, panelHeight))
	y := c.scrollY / (content - panelHeight) * (panelHeight - h)
	return surface.Rect{X: width - KnobWidth, Y: y, W: KnobWidth, H: h}, true
}

func (c *Chart) clusterColor(rc *cluster.RenderCluster) color.RGBA {
	if col, ok := ParseColor(rc.Color); ok {
		return col
	}
	return c.fallback
}

func (c *Chart) hoveredCluster() *cluster.RenderCluster {
	r := c.dispatcher.Hovered()
	if r == nil {
		return nil
	}
	if p, ok := r.Payload.(hit.ClusterPayload); ok {
		return &p.Cluster
	}
	return nil
}

func sameCluster(a, b *cluster.RenderCluster) bool {
	return hit.ClusterPayload{Cluster: *a}.Key() == hit.ClusterPayload{Cluster: *b}.Key()
}

// labelColor picks a text color readable on fill.
func labelColor(fill color.RGBA) color.RGBA {
	if 299*int(fill.R)+587*int(fill.G)+114*int(fill.B) < 140*1000 {
		return colorWhite
	}
	return colorText
}
