// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hit

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/flamegraph/internal/logging"
	"github.com/gogpu/flamegraph/internal/observer"
	"github.com/gogpu/flamegraph/viewport"
)

// DefaultDoubleClickWindow is the longest gap between two clicks that still
// counts as a double click.
const DefaultDoubleClickWindow = 300 * time.Millisecond

// EventType is the kind of a raw pointer event from the host.
type EventType uint8

const (
	Move EventType = iota
	Down
	Up
	Wheel
	Leave
)

// PointerEvent is a raw pointer event in surface pixels.
type PointerEvent struct {
	Type   EventType
	X, Y   float64
	DeltaX float64
	DeltaY float64

	// Time is when the event happened. Zero means now.
	Time time.Time
}

// State is the press/drag state of the pointer.
type State uint8

const (
	Idle State = iota
	Pressed
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// View is what the dispatcher needs from the viewport. *viewport.Engine
// implements it.
type View interface {
	PanelAt(y float64) (viewport.PanelID, float64, bool)
	PixelsToDuration(px float64) float64
}

// Drag is emitted for every move while the pointer is down.
type Drag struct {
	// DX and DY are the pixel deltas since the previous move.
	DX, DY float64

	// DeltaTime is DX converted to time at the current zoom.
	DeltaTime float64

	// Origin is the region under the pointer when it was pressed.
	Origin *Region
}

// WheelEvent is emitted for wheel input.
type WheelEvent struct {
	X, Y   float64
	DeltaX float64
	DeltaY float64
	Region *Region
	Panel  viewport.PanelID
}

// Config holds dispatcher settings.
type Config struct {
	// DoubleClickWindow is the maximum gap between clicks of a double click.
	DoubleClickWindow time.Duration

	// DragThreshold is the pixel distance a pressed pointer must travel
	// before the press becomes a drag.
	DragThreshold float64

	// DoubleClickKinds lists region kinds that react to double clicks.
	DoubleClickKinds []Kind
}

// DefaultConfig returns the default dispatcher settings.
func DefaultConfig() Config {
	return Config{
		DoubleClickWindow: DefaultDoubleClickWindow,
		DoubleClickKinds:  []Kind{KindCluster},
	}
}

// Dispatcher routes pointer events to the regions of stacked panels and
// tracks hover, click, double click and drag state.
//
// It is not safe for concurrent use.
type Dispatcher struct {
	view   View
	cfg    Config
	layers map[viewport.PanelID]*Layer
	now    func() time.Time

	state          State
	x, y           float64
	pressX, pressY float64
	origin         *Region
	hovered        *Region

	lastClick       time.Time
	lastClickRegion *Region

	selectObs observer.List[*Region]
	hoverObs  observer.List[*Region]
	doubleObs observer.List[*Region]
	dragObs   observer.List[Drag]
	wheelObs  observer.List[WheelEvent]
	stateObs  observer.List[State]
}

// NewDispatcher creates a dispatcher that locates panels through view.
func NewDispatcher(view View, cfg Config) *Dispatcher {
	if cfg.DoubleClickWindow <= 0 {
		cfg.DoubleClickWindow = DefaultDoubleClickWindow
	}
	return &Dispatcher{
		view:   view,
		cfg:    cfg,
		layers: make(map[viewport.PanelID]*Layer),
		now:    time.Now,
	}
}

// Layer returns the region layer of a panel, creating it on first use.
func (d *Dispatcher) Layer(id viewport.PanelID) *Layer {
	l := d.layers[id]
	if l == nil {
		l = &Layer{}
		d.layers[id] = l
	}
	return l
}

// ClearAll clears every panel layer.
func (d *Dispatcher) ClearAll() {
	for _, l := range d.layers {
		l.Clear()
	}
}

// State returns the current press/drag state.
func (d *Dispatcher) State() State {
	return d.state
}

// Position returns the last known pointer position.
func (d *Dispatcher) Position() (x, y float64) {
	return d.x, d.y
}

// Hovered returns the region under the pointer, or nil.
func (d *Dispatcher) Hovered() *Region {
	return d.hovered
}

// Cursor returns the cursor hint of the hovered region.
func (d *Dispatcher) Cursor() Cursor {
	if d.state == Dragging {
		return CursorGrab
	}
	if d.hovered == nil {
		return CursorDefault
	}
	return d.hovered.Cursor
}

// HitTest resolves a global point to the first matching region of the panel
// whose band contains y. It returns nil over background.
func (d *Dispatcher) HitTest(x, y float64) *Region {
	id, local, ok := d.view.PanelAt(y)
	if !ok {
		return nil
	}
	l := d.layers[id]
	if l == nil {
		return nil
	}
	r := l.HitTest(x, local)
	if r == nil {
		return nil
	}
	out := *r
	out.Panel = id
	return &out
}

// OnSelect registers fn for click selection. fn receives nil for clicks on
// background.
func (d *Dispatcher) OnSelect(fn func(*Region)) observer.Handle { return d.selectObs.Add(fn) }

// OnHover registers fn for hover changes. A change of hovered region is
// always reported as hover(nil) followed by hover(new).
func (d *Dispatcher) OnHover(fn func(*Region)) observer.Handle { return d.hoverObs.Add(fn) }

// OnDoubleClick registers fn for double clicks on qualifying regions.
func (d *Dispatcher) OnDoubleClick(fn func(*Region)) observer.Handle { return d.doubleObs.Add(fn) }

// OnChangePosition registers fn for drag moves.
func (d *Dispatcher) OnChangePosition(fn func(Drag)) observer.Handle { return d.dragObs.Add(fn) }

// OnWheel registers fn for wheel events.
func (d *Dispatcher) OnWheel(fn func(WheelEvent)) observer.Handle { return d.wheelObs.Add(fn) }

// OnStateChange registers fn for press/drag state transitions.
func (d *Dispatcher) OnStateChange(fn func(State)) observer.Handle { return d.stateObs.Add(fn) }

// Handle processes one pointer event.
func (d *Dispatcher) Handle(ev PointerEvent) {
	if ev.Time.IsZero() {
		ev.Time = d.now()
	}

	switch ev.Type {
	case Move:
		d.move(ev)
	case Down:
		d.down(ev)
	case Up:
		d.up(ev)
	case Wheel:
		d.x, d.y = ev.X, ev.Y
		id, _, _ := d.view.PanelAt(ev.Y)
		d.wheelObs.Emit(WheelEvent{
			X: ev.X, Y: ev.Y,
			DeltaX: ev.DeltaX, DeltaY: ev.DeltaY,
			Region: d.HitTest(ev.X, ev.Y),
			Panel:  id,
		})
	case Leave:
		d.setState(Idle)
		d.origin = nil
		d.setHover(nil)
	}
}

// Refresh re-resolves the hovered region at the last pointer position.
// Call it after the region layers were rebuilt.
func (d *Dispatcher) Refresh() {
	d.setHover(d.HitTest(d.x, d.y))
}

func (d *Dispatcher) move(ev PointerEvent) {
	dx, dy := ev.X-d.x, ev.Y-d.y
	d.x, d.y = ev.X, ev.Y

	if d.state == Pressed &&
		(math.Abs(ev.X-d.pressX) > d.cfg.DragThreshold || math.Abs(ev.Y-d.pressY) > d.cfg.DragThreshold) {
		d.setState(Dragging)
	}
	if d.state != Idle && (dx != 0 || dy != 0) {
		d.dragObs.Emit(Drag{DX: dx, DY: dy, DeltaTime: d.view.PixelsToDuration(dx), Origin: d.origin})
	}

	d.setHover(d.HitTest(ev.X, ev.Y))
}

func (d *Dispatcher) down(ev PointerEvent) {
	d.x, d.y = ev.X, ev.Y
	d.pressX, d.pressY = ev.X, ev.Y
	d.origin = d.HitTest(ev.X, ev.Y)
	d.setState(Pressed)
}

func (d *Dispatcher) up(ev PointerEvent) {
	d.x, d.y = ev.X, ev.Y
	wasClick := d.state == Pressed
	d.origin = nil
	d.setState(Idle)
	if !wasClick {
		return
	}

	r := d.HitTest(ev.X, ev.Y)
	d.selectObs.Emit(r)

	if r != nil && d.qualifies(r) && Same(r, d.lastClickRegion) &&
		!d.lastClick.IsZero() && ev.Time.Sub(d.lastClick) <= d.cfg.DoubleClickWindow {
		logging.Get().Debug("hit: double click", "kind", r.Kind())
		d.lastClick, d.lastClickRegion = time.Time{}, nil
		d.doubleObs.Emit(r)
		return
	}
	d.lastClick, d.lastClickRegion = ev.Time, r
}

func (d *Dispatcher) qualifies(r *Region) bool {
	for _, k := range d.cfg.DoubleClickKinds {
		if r.Kind() == k {
			return true
		}
	}
	return false
}

func (d *Dispatcher) setState(s State) {
	if d.state == s {
		return
	}
	d.state = s
	d.stateObs.Emit(s)
}

func (d *Dispatcher) setHover(r *Region) {
	if Same(r, d.hovered) {
		d.hovered = r
		return
	}
	if d.hovered != nil {
		d.hovered = nil
		d.hoverObs.Emit(nil)
	}
	if r != nil {
		d.hovered = r
		d.hoverObs.Emit(r)
	}
}
