// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"math"

	"github.com/gogpu/flamegraph/hit"
	"github.com/gogpu/flamegraph/internal/logging"
)

// handleSelect updates the selection for clicks on clusters or background
// and flips the flame area for clicks on the toggle.
func (c *Chart) handleSelect(r *hit.Region) {
	if r == nil {
		c.hasSelected = false
	} else {
		switch p := r.Payload.(type) {
		case hit.ClusterPayload:
			c.selected, c.hasSelected = p.Cluster, true
		case hit.TogglePayload:
			collapsed := c.engine.ToggleCollapsed(p.Target)
			logging.Get().Debug("flamegraph: toggle panel", "panel", p.Target, "collapsed", collapsed)
			c.layoutChanged()
		}
	}
	c.selectObs.Emit(r)
	c.requestPartial()
}

func (c *Chart) handleHover(r *hit.Region) {
	c.hoverObs.Emit(r)
	c.requestPartial()
}

func (c *Chart) handleDoubleClick(*hit.Region) {
	c.engine.ResetToFit()
}

// handleDrag resizes, scrolls or pans depending on where the drag started.
func (c *Chart) handleDrag(d hit.Drag) {
	var origin hit.Payload
	if d.Origin != nil {
		origin = d.Origin.Payload
	}

	switch p := origin.(type) {
	case hit.ResizePayload:
		panel, ok := c.engine.Panel(p.Target)
		if !ok {
			return
		}
		c.engine.SetPanelHeight(p.Target, math.Max(panel.VisibleHeight()+d.DY, 0))
		c.layoutChanged()
	case hit.KnobPayload:
		fp := c.FlamePanel()
		h := fp.VisibleHeight()
		knob, ok := c.knobRect(h, c.engine.State().Width)
		if !ok || h <= knob.H {
			return
		}
		c.SetScrollY(c.scrollY + d.DY*(c.contentHeight()-h)/(h-knob.H))
	case hit.TogglePayload:
	default:
		if d.DX != 0 {
			c.engine.Pan(-d.DeltaTime)
		}
	}
}

// handleWheel zooms around the pointer for vertical wheel input and pans
// for horizontal input. A negative DeltaY zooms in.
func (c *Chart) handleWheel(w hit.WheelEvent) {
	switch {
	case w.DeltaX == 0 && w.DeltaY == 0:
	case math.Abs(w.DeltaY) >= math.Abs(w.DeltaX):
		f := c.cfg.WheelZoomFactor
		if w.DeltaY > 0 {
			f = 1 / f
		}
		c.engine.ZoomAt(w.X, f)
	default:
		c.engine.Pan(c.engine.PixelsToDuration(w.DeltaX))
	}
}
