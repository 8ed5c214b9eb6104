// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"fmt"
	"math"
)

// PanelID identifies a panel in the engine arena. IDs start at 1.
type PanelID int

// RootID is the parent of top-level panels: the Engine itself.
const RootID PanelID = 0

// Policy selects how a panel gets its height.
type Policy uint8

const (
	// Static panels always use their configured height.
	Static Policy = iota

	// Flexible panels share the space left by static panels, unless they
	// were given an explicit height.
	Flexible
)

func (p Policy) String() string {
	switch p {
	case Static:
		return "static"
	case Flexible:
		return "flexible"
	default:
		return fmt.Sprintf("Policy(%d)", p)
	}
}

// PanelSpec describes a panel to add.
type PanelSpec struct {
	Name   string
	Parent PanelID
	Policy Policy

	// Height is required for Static panels. For Flexible panels a positive
	// Height is an explicit height; zero lets the panel grow.
	Height float64

	Collapsed bool
}

// Panel is one stacked track. Zoom, PositionX, Min and Max in Shared are
// copies of the root state; Height, Position and Collapsed are local.
type Panel struct {
	ID        PanelID
	Parent    PanelID
	Name      string
	Policy    Policy
	Height    float64
	Position  float64
	Collapsed bool

	// Explicit marks a flexible panel whose height was set by the user.
	Explicit bool

	Shared State

	// configured is the height requested for static or explicit panels.
	configured float64
}

// VisibleHeight is the height the panel occupies: 0 when collapsed.
func (p *Panel) VisibleHeight() float64 {
	if p.Collapsed {
		return 0
	}
	return p.Height
}

// Contains reports whether the global y lies inside the panel band.
func (p *Panel) Contains(y float64) bool {
	h := p.VisibleHeight()
	return h > 0 && y >= p.Position && y < p.Position+h
}

// growing reports whether the panel takes a share of the free space.
func (p *Panel) growing() bool {
	return p.Policy == Flexible && !p.Explicit
}

// AddPanel appends a panel below the existing ones and relayouts.
func (e *Engine) AddPanel(spec PanelSpec) PanelID {
	id := PanelID(len(e.panels) + 1)
	p := Panel{
		ID:         id,
		Parent:     spec.Parent,
		Name:       spec.Name,
		Policy:     spec.Policy,
		Collapsed:  spec.Collapsed,
		Explicit:   spec.Policy == Flexible && spec.Height > 0,
		configured: max(spec.Height, 0),
	}
	e.panels = append(e.panels, p)
	e.Relayout()
	e.propagate()
	return id
}

// Panel returns a copy of the panel with the given id.
func (e *Engine) Panel(id PanelID) (Panel, bool) {
	p := e.panel(id)
	if p == nil {
		return Panel{}, false
	}
	return *p, true
}

// Panels returns copies of all panels, top to bottom.
func (e *Engine) Panels() []Panel {
	out := make([]Panel, len(e.panels))
	copy(out, e.panels)
	return out
}

func (e *Engine) panel(id PanelID) *Panel {
	i := int(id) - 1
	if i < 0 || i >= len(e.panels) {
		return nil
	}
	return &e.panels[i]
}

// SetPanelHeight sets an explicit height. A flexible panel stops growing
// until ClearPanelHeight is called.
func (e *Engine) SetPanelHeight(id PanelID, height float64) bool {
	p := e.panel(id)
	if p == nil {
		return false
	}
	p.configured = max(height, 0)
	if p.Policy == Flexible {
		p.Explicit = true
	}
	e.Relayout()
	return true
}

// ClearPanelHeight returns a flexible panel to sharing the free space.
func (e *Engine) ClearPanelHeight(id PanelID) bool {
	p := e.panel(id)
	if p == nil || p.Policy != Flexible {
		return false
	}
	p.Explicit = false
	e.Relayout()
	return true
}

// SetCollapsed collapses or expands a panel.
func (e *Engine) SetCollapsed(id PanelID, collapsed bool) bool {
	p := e.panel(id)
	if p == nil {
		return false
	}
	p.Collapsed = collapsed
	e.Relayout()
	return true
}

// ToggleCollapsed flips the collapsed flag and returns the new value.
func (e *Engine) ToggleCollapsed(id PanelID) bool {
	p := e.panel(id)
	if p == nil {
		return false
	}
	e.SetCollapsed(id, !p.Collapsed)
	return p.Collapsed
}

// Relayout recomputes panel heights and positions.
//
// Static panels and flexible panels with an explicit height are subtracted
// from the total height; collapsed panels count as 0. The remaining free
// space is split evenly, rounded down, among the growing flexible panels.
func (e *Engine) Relayout() {
	free := e.state.Height
	growing := 0
	for i := range e.panels {
		p := &e.panels[i]
		if p.growing() {
			if !p.Collapsed {
				growing++
			}
			continue
		}
		p.Height = p.configured
		free -= p.VisibleHeight()
	}

	share := 0.0
	if growing > 0 && free > 0 {
		share = math.Floor(free / float64(growing))
	}

	pos := 0.0
	for i := range e.panels {
		p := &e.panels[i]
		if p.growing() {
			p.Height = share
		}
		p.Position = pos
		pos += p.VisibleHeight()
		p.Shared.Height = p.Height
	}
}

// PanelAt returns the panel whose band contains the global y, with y
// translated into panel-local coordinates.
func (e *Engine) PanelAt(y float64) (PanelID, float64, bool) {
	for i := range e.panels {
		p := &e.panels[i]
		if p.Contains(y) {
			return p.ID, y - p.Position, true
		}
	}
	return 0, 0, false
}

// propagate copies the shared fields of the root state into every panel.
func (e *Engine) propagate() {
	for i := range e.panels {
		sh := &e.panels[i].Shared
		sh.Zoom = e.state.Zoom
		sh.PositionX = e.state.PositionX
		sh.Min = e.state.Min
		sh.Max = e.state.Max
		sh.Width = e.state.Width
	}
}
