// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hit

import (
	"testing"
	"time"

	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/tree"
	"github.com/gogpu/flamegraph/viewport"
)

type fixture struct {
	engine *viewport.Engine
	top    viewport.PanelID
	bottom viewport.PanelID
	d      *Dispatcher
	clock  time.Time
}

func newFixture() *fixture {
	e := viewport.New(1000, 300, viewport.DefaultConfig())
	e.SetBounds(0, 500)
	f := &fixture{
		engine: e,
		top:    e.AddPanel(viewport.PanelSpec{Name: "top", Policy: viewport.Static, Height: 100}),
		bottom: e.AddPanel(viewport.PanelSpec{Name: "bottom", Policy: viewport.Flexible}),
		clock:  time.Unix(1000, 0),
	}
	f.d = NewDispatcher(e, DefaultConfig())
	f.d.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) send(typ EventType, x, y float64) {
	f.d.Handle(PointerEvent{Type: typ, X: x, Y: y})
}

func clusterRegion(name string, x, y, w, h float64) Region {
	node := &tree.FlatNode{Source: &tree.Interval{Name: name}}
	return Region{
		Payload: ClusterPayload{Cluster: cluster.RenderCluster{Nodes: []*tree.FlatNode{node}}},
		X:       x, Y: y, W: w, H: h,
		Cursor: CursorPointer,
	}
}

func TestLayerFirstMatchWins(t *testing.T) {
	var l Layer
	a := Region{Payload: TimestampPayload{Label: "A"}, X: 0, Y: 0, W: 50, H: 50}
	b := Region{Payload: TimestampPayload{Label: "B"}, X: 10, Y: 10, W: 50, H: 50}
	l.Add(a)
	l.Add(b)

	got := l.HitTest(20, 20)
	if got == nil {
		t.Fatal("HitTest() = nil")
	}
	if p := got.Payload.(TimestampPayload); p.Label != "A" {
		t.Errorf("HitTest() = %s, want A (first inserted)", p.Label)
	}
	if got := l.HitTest(55, 55); got == nil || got.Payload.(TimestampPayload).Label != "B" {
		t.Error("point only inside B should hit B")
	}
	if got := l.HitTest(200, 200); got != nil {
		t.Errorf("HitTest() outside = %+v, want nil", got)
	}

	l.Clear()
	if l.Len() != 0 || l.HitTest(20, 20) != nil {
		t.Error("Clear() left regions behind")
	}
}

func TestRegionContainsHalfOpen(t *testing.T) {
	r := Region{X: 10, Y: 10, W: 10, H: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{19.9, 19.9, true},
		{20, 15, false},
		{15, 20, false},
		{9.9, 15, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSame(t *testing.T) {
	a := clusterRegion("a", 0, 0, 10, 10)
	a2 := a
	a2.X = 99
	b := clusterRegion("b", 0, 0, 10, 10)

	if !Same(&a, &a2) {
		t.Error("same payload at a new position should be Same")
	}
	if Same(&a, &b) {
		t.Error("different clusters should differ")
	}
	if !Same(nil, nil) || Same(&a, nil) {
		t.Error("nil handling wrong")
	}
	tg := Region{Payload: TogglePayload{Target: 2}}
	rs := Region{Payload: ResizePayload{Target: 2}}
	if Same(&tg, &rs) {
		t.Error("different kinds should differ")
	}
}

func TestKindString(t *testing.T) {
	if KindResizeHandle.String() != "resize-handle" || KindCluster.String() != "cluster" {
		t.Error("unexpected kind names")
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}

func TestDispatcherRoutesByPanel(t *testing.T) {
	f := newFixture()
	f.d.Layer(f.top).Add(clusterRegion("top", 0, 0, 100, 20))
	f.d.Layer(f.bottom).Add(clusterRegion("bottom", 0, 0, 100, 20))

	r := f.d.HitTest(50, 10)
	if r == nil || r.Panel != f.top {
		t.Fatalf("HitTest(50, 10) = %+v, want top panel region", r)
	}
	// y=110 is 10 px into the bottom panel.
	r = f.d.HitTest(50, 110)
	if r == nil || r.Panel != f.bottom {
		t.Fatalf("HitTest(50, 110) = %+v, want bottom panel region", r)
	}
	if r := f.d.HitTest(50, 150); r != nil {
		t.Errorf("HitTest over bottom background = %+v, want nil", r)
	}
	if r := f.d.HitTest(50, 1000); r != nil {
		t.Errorf("HitTest below all panels = %+v, want nil", r)
	}
}

func TestHoverSequence(t *testing.T) {
	f := newFixture()
	l := f.d.Layer(f.top)
	l.Add(clusterRegion("a", 0, 0, 50, 20))
	l.Add(clusterRegion("b", 50, 0, 50, 20))

	var seq []string
	f.d.OnHover(func(r *Region) {
		if r == nil {
			seq = append(seq, "nil")
			return
		}
		seq = append(seq, r.Payload.(ClusterPayload).Cluster.Nodes[0].Name())
	})

	f.send(Move, 10, 10) // a
	f.send(Move, 20, 10) // still a
	f.send(Move, 60, 10) // b
	f.send(Move, 60, 50) // background
	f.send(Move, 10, 10) // a

	want := []string{"a", "nil", "b", "nil", "a"}
	if len(seq) != len(want) {
		t.Fatalf("hover sequence = %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("hover sequence = %v, want %v", seq, want)
		}
	}
	for i := 1; i < len(seq); i++ {
		if seq[i] != "nil" && seq[i-1] != "nil" {
			t.Fatalf("two consecutive non-nil hovers: %v", seq)
		}
	}
	if f.d.Cursor() != CursorPointer {
		t.Errorf("Cursor() = %v, want CursorPointer", f.d.Cursor())
	}
}

func TestClickSelectsAndDragDoesNot(t *testing.T) {
	f := newFixture()
	f.d.Layer(f.top).Add(clusterRegion("a", 0, 0, 100, 20))

	var selected []*Region
	f.d.OnSelect(func(r *Region) { selected = append(selected, r) })
	var drags []Drag
	f.d.OnChangePosition(func(d Drag) { drags = append(drags, d) })

	f.send(Down, 10, 10)
	f.send(Up, 10, 10)
	if len(selected) != 1 || selected[0] == nil {
		t.Fatalf("click selections = %v, want one region", selected)
	}

	f.send(Down, 10, 10)
	f.send(Move, 30, 12)
	if f.d.State() != Dragging {
		t.Errorf("State() = %v, want dragging", f.d.State())
	}
	f.send(Up, 30, 12)
	if len(selected) != 1 {
		t.Errorf("drag produced a selection")
	}
	if len(drags) != 1 {
		t.Fatalf("drags = %d, want 1", len(drags))
	}
	// zoom is 2 px per unit: 20 px is 10 time units.
	if drags[0].DX != 20 || drags[0].DY != 2 || drags[0].DeltaTime != 10 {
		t.Errorf("drag = %+v, want DX 20 DY 2 DeltaTime 10", drags[0])
	}
	if drags[0].Origin == nil {
		t.Error("drag origin should be the pressed region")
	}

	f.send(Down, 500, 50)
	f.send(Up, 500, 50)
	if len(selected) != 2 || selected[1] != nil {
		t.Errorf("background click should select nil, got %v", selected)
	}
}

func TestDoubleClick(t *testing.T) {
	f := newFixture()
	f.d.Layer(f.top).Add(clusterRegion("a", 0, 0, 100, 20))
	f.d.Layer(f.top).Add(Region{Payload: TogglePayload{Target: 2}, X: 200, Y: 0, W: 20, H: 20})

	doubles := 0
	f.d.OnDoubleClick(func(*Region) { doubles++ })

	click := func(x float64, after time.Duration) {
		f.clock = f.clock.Add(after)
		f.send(Down, x, 10)
		f.send(Up, x, 10)
	}

	click(10, 0)
	click(12, 200*time.Millisecond)
	if doubles != 1 {
		t.Fatalf("doubles = %d, want 1", doubles)
	}

	// A third quick click starts a new sequence.
	click(12, 50*time.Millisecond)
	if doubles != 1 {
		t.Errorf("triple click produced %d doubles", doubles)
	}

	// Too slow.
	click(10, time.Second)
	click(10, 301*time.Millisecond)
	if doubles != 1 {
		t.Errorf("slow clicks produced a double click")
	}

	// Toggle regions do not qualify.
	click(205, time.Second)
	click(205, 10*time.Millisecond)
	if doubles != 1 {
		t.Errorf("toggle region produced a double click")
	}
}

func TestWheelAndLeave(t *testing.T) {
	f := newFixture()
	f.d.Layer(f.bottom).Add(clusterRegion("a", 0, 0, 100, 20))

	var got WheelEvent
	f.d.OnWheel(func(w WheelEvent) { got = w })
	f.d.Handle(PointerEvent{Type: Wheel, X: 10, Y: 105, DeltaY: -3})
	if got.Panel != f.bottom || got.Region == nil || got.DeltaY != -3 {
		t.Errorf("wheel = %+v", got)
	}

	hovers := 0
	f.d.OnHover(func(*Region) { hovers++ })
	f.send(Move, 10, 105)
	f.send(Leave, 0, 0)
	if f.d.Hovered() != nil || hovers != 2 {
		t.Errorf("after leave: hovered %v, hover events %d", f.d.Hovered(), hovers)
	}
}

func TestRefreshAfterRebuild(t *testing.T) {
	f := newFixture()
	l := f.d.Layer(f.top)
	l.Add(clusterRegion("a", 0, 0, 100, 20))
	f.send(Move, 10, 10)
	if f.d.Hovered() == nil {
		t.Fatal("expected hover")
	}

	f.d.ClearAll()
	f.d.Refresh()
	if f.d.Hovered() != nil {
		t.Error("hover should clear when the region disappears")
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Pressed.String() != "pressed" || Dragging.String() != "dragging" {
		t.Error("unexpected state names")
	}
}
