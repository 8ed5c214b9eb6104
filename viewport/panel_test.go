// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import "testing"

func TestRelayoutHeights(t *testing.T) {
	e := New(800, 500, DefaultConfig())
	e.SetBounds(0, 100)

	ruler := e.AddPanel(PanelSpec{Name: "ruler", Policy: Static, Height: 20})
	flame := e.AddPanel(PanelSpec{Name: "flame", Policy: Flexible})
	fixed := e.AddPanel(PanelSpec{Name: "marks", Policy: Flexible, Height: 80})
	wf := e.AddPanel(PanelSpec{Name: "waterfall", Policy: Flexible})

	// free = 500 - 20 - 80 = 400, split between two growing panels.
	want := map[PanelID]struct{ h, pos float64 }{
		ruler: {20, 0},
		flame: {200, 20},
		fixed: {80, 220},
		wf:    {200, 300},
	}
	for id, w := range want {
		p, ok := e.Panel(id)
		if !ok {
			t.Fatalf("Panel(%d) missing", id)
		}
		if p.Height != w.h || p.Position != w.pos {
			t.Errorf("%s: height %v pos %v, want %v %v", p.Name, p.Height, p.Position, w.h, w.pos)
		}
	}
}

func TestRelayoutFloorsShare(t *testing.T) {
	e := New(800, 101, DefaultConfig())
	a := e.AddPanel(PanelSpec{Policy: Flexible})
	b := e.AddPanel(PanelSpec{Policy: Flexible})

	pa, _ := e.Panel(a)
	pb, _ := e.Panel(b)
	if pa.Height != 50 || pb.Height != 50 {
		t.Errorf("heights = %v, %v, want 50, 50", pa.Height, pb.Height)
	}
}

func TestCollapseAndResize(t *testing.T) {
	e := New(800, 300, DefaultConfig())
	top := e.AddPanel(PanelSpec{Policy: Static, Height: 100})
	a := e.AddPanel(PanelSpec{Policy: Flexible})
	b := e.AddPanel(PanelSpec{Policy: Flexible})

	e.SetCollapsed(top, true)
	pa, _ := e.Panel(a)
	if pa.Height != 150 || pa.Position != 0 {
		t.Errorf("after collapse: a height %v pos %v, want 150 0", pa.Height, pa.Position)
	}

	if !e.ToggleCollapsed(a) {
		t.Error("ToggleCollapsed() = false, want true")
	}
	pb, _ := e.Panel(b)
	if pb.Height != 300 || pb.Position != 0 {
		t.Errorf("b height %v pos %v, want 300 0", pb.Height, pb.Position)
	}

	e.SetCollapsed(a, false)
	e.SetPanelHeight(a, 60)
	pb, _ = e.Panel(b)
	if pb.Height != 240 || pb.Position != 60 {
		t.Errorf("b height %v pos %v, want 240 60", pb.Height, pb.Position)
	}

	e.ClearPanelHeight(a)
	pb, _ = e.Panel(b)
	if pb.Height != 150 {
		t.Errorf("b height %v after ClearPanelHeight, want 150", pb.Height)
	}

	e.Resize(800, 500)
	pb, _ = e.Panel(b)
	if pb.Height != 250 || pb.Position != 250 {
		t.Errorf("after root resize: b height %v pos %v, want 250 250", pb.Height, pb.Position)
	}
}

func TestPanelAt(t *testing.T) {
	e := New(800, 300, DefaultConfig())
	a := e.AddPanel(PanelSpec{Policy: Static, Height: 100})
	c := e.AddPanel(PanelSpec{Policy: Static, Height: 50, Collapsed: true})
	b := e.AddPanel(PanelSpec{Policy: Flexible})

	tests := []struct {
		y     float64
		id    PanelID
		local float64
		ok    bool
	}{
		{0, a, 0, true},
		{99.5, a, 99.5, true},
		{100, b, 0, true},
		{250, b, 150, true},
		{300, 0, 0, false},
		{-1, 0, 0, false},
	}
	for _, tt := range tests {
		id, local, ok := e.PanelAt(tt.y)
		if id != tt.id || local != tt.local || ok != tt.ok {
			t.Errorf("PanelAt(%v) = (%d, %v, %v), want (%d, %v, %v)", tt.y, id, local, ok, tt.id, tt.local, tt.ok)
		}
	}
	if id, _, _ := e.PanelAt(120); id == c {
		t.Error("collapsed panel matched")
	}
}

func TestPropagateSharedState(t *testing.T) {
	e := New(1000, 300, DefaultConfig())
	a := e.AddPanel(PanelSpec{Policy: Flexible})
	b := e.AddPanel(PanelSpec{Policy: Static, Height: 40})
	e.SetBounds(0, 100)
	e.SetZoom(40)
	e.Pan(30)

	root := e.State()
	for _, id := range []PanelID{a, b} {
		p, _ := e.Panel(id)
		if p.Shared.Zoom != root.Zoom || p.Shared.PositionX != root.PositionX ||
			p.Shared.Min != root.Min || p.Shared.Max != root.Max {
			t.Errorf("panel %d shared %+v, root %+v", id, p.Shared, root)
		}
		if p.Shared.Height != p.Height {
			t.Errorf("panel %d Shared.Height = %v, want %v", id, p.Shared.Height, p.Height)
		}
	}

	// Panels are copies: mutating one does not write back.
	ps := e.Panels()
	ps[0].Shared.Zoom = 1
	if e.State().Zoom != 40 {
		t.Error("panel copy wrote back into the root state")
	}
}

func TestPolicyString(t *testing.T) {
	if Static.String() != "static" || Flexible.String() != "flexible" {
		t.Error("unexpected Policy strings")
	}
	if Policy(9).String() != "Policy(9)" {
		t.Errorf("Policy(9).String() = %q", Policy(9).String())
	}
}
