// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/hit"
	"github.com/gogpu/flamegraph/internal/logging"
	"github.com/gogpu/flamegraph/internal/observer"
	"github.com/gogpu/flamegraph/schedule"
	"github.com/gogpu/flamegraph/surface"
	"github.com/gogpu/flamegraph/textmetrics"
	"github.com/gogpu/flamegraph/tree"
	"github.com/gogpu/flamegraph/viewport"
)

// Chrome sizes in pixels.
const (
	HeaderHeight = 16.0
	HandleHeight = 6.0
	KnobWidth    = 8.0

	minKnobHeight = 16.0
	labelPadding  = 4.0
)

// Chart is an interactive flame chart.
//
// A Chart is not safe for concurrent use. With a schedule.Loop host all
// calls must happen on the goroutine running the loop, for example through
// Loop.Post.
type Chart struct {
	cfg      Config
	params   cluster.Params
	eq       cluster.Equivalence
	measurer textmetrics.Measurer
	fallback color.RGBA

	forest []*tree.Interval
	flat   []*tree.FlatNode
	metas  []cluster.MetaCluster
	levels int

	// clusters covers the whole extent at clusteredZoom.
	clusters      []cluster.RenderCluster
	clusteredZoom float64

	engine   *viewport.Engine
	timeline viewport.PanelID
	header   viewport.PanelID
	flame    viewport.PanelID
	handle   viewport.PanelID
	scrollY  float64

	dispatcher *hit.Dispatcher
	frames     *schedule.FrameScheduler
	rebuild    *schedule.Debouncer
	target     surface.Surface

	selected    cluster.RenderCluster
	hasSelected bool

	selectObs   observer.List[*hit.Region]
	hoverObs    observer.List[*hit.Region]
	viewportObs observer.List[viewport.Change]
}

// New creates a chart for a surface of the given size.
func New(width, height float64, opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		logging.Get().Warn("flamegraph: invalid config, using defaults", "err", err)
		o.cfg = DefaultConfig()
	}
	if o.measurer == nil {
		o.measurer = defaultMeasurer()
	}
	fallback, _ := ParseColor(o.cfg.FallbackColor)

	c := &Chart{
		cfg:      o.cfg,
		params:   o.cfg.clusterParams(),
		eq:       o.eq,
		measurer: o.measurer,
		fallback: fallback,
		engine:   viewport.New(width, height, o.cfg.viewportConfig()),
	}
	c.timeline = c.engine.AddPanel(viewport.PanelSpec{Name: "timeline", Policy: viewport.Static, Height: o.cfg.TimelineHeight})
	c.header = c.engine.AddPanel(viewport.PanelSpec{Name: "flame-header", Policy: viewport.Static, Height: HeaderHeight})
	c.flame = c.engine.AddPanel(viewport.PanelSpec{Name: "flame", Policy: viewport.Flexible})
	c.handle = c.engine.AddPanel(viewport.PanelSpec{Name: "resize", Policy: viewport.Static, Height: HandleHeight})

	c.dispatcher = hit.NewDispatcher(c.engine, o.cfg.hitConfig())
	if o.host != nil {
		c.frames = schedule.NewFrameScheduler(o.host, c.frame)
		c.rebuild = schedule.NewDebouncer(o.host, o.cfg.RegionRebuildDelay)
	}

	c.engine.OnChange(c.viewportChanged)
	c.dispatcher.OnSelect(c.handleSelect)
	c.dispatcher.OnHover(c.handleHover)
	c.dispatcher.OnDoubleClick(c.handleDoubleClick)
	c.dispatcher.OnChangePosition(c.handleDrag)
	c.dispatcher.OnWheel(c.handleWheel)
	return c
}

func defaultMeasurer() textmetrics.Measurer {
	s, err := textmetrics.DefaultShaper()
	if err != nil {
		logging.Get().Warn("flamegraph: default font unavailable", "err", err)
		return textmetrics.FixedMeasurer{Ratio: 0.6}
	}
	return s
}

// Config returns the chart configuration.
func (c *Chart) Config() Config {
	return c.cfg
}

// SetData replaces the displayed forest and fits it to the width. On error
// the previous data is kept.
func (c *Chart) SetData(forest []*tree.Interval) error {
	if err := tree.Validate(forest); err != nil {
		logging.Get().Warn("flamegraph: rejected data", "err", err)
		return fmt.Errorf("flamegraph: set data: %w", err)
	}

	c.forest = forest
	c.flat = tree.Flatten(forest)
	c.metas = cluster.MetaClusterize(c.flat, c.eq)
	c.levels = tree.MaxLevel(c.flat) + 1
	c.hasSelected = false
	c.scrollY = 0
	c.clusteredZoom = 0

	lo, hi := tree.Extent(c.flat)
	c.engine.SetBounds(lo, hi)

	logging.Get().Info("flamegraph: data loaded",
		"intervals", tree.Count(forest),
		"levels", c.levels,
		"meta_clusters", len(c.metas),
		"clusters", len(c.clusters))
	return nil
}

// Data returns the forest passed to the last successful SetData.
func (c *Chart) Data() []*tree.Interval {
	return c.forest
}

// SetViewport changes the surface size.
func (c *Chart) SetViewport(width, height float64) {
	c.engine.Resize(width, height)
}

// Viewport returns the root viewport engine.
func (c *Chart) Viewport() *viewport.Engine {
	return c.engine
}

// Pan shifts the visible window by deltaTime.
func (c *Chart) Pan(deltaTime float64) {
	c.engine.Pan(deltaTime)
}

// ZoomAt multiplies the zoom by factor, keeping the time under pixelX in
// place. It reports whether the zoom changed.
func (c *Chart) ZoomAt(pixelX, factor float64) bool {
	return c.engine.ZoomAt(pixelX, factor)
}

// ResetToFit shows the whole extent.
func (c *Chart) ResetToFit() {
	c.engine.ResetToFit()
}

// TimeToPixel maps a time to a horizontal surface position.
func (c *Chart) TimeToPixel(t float64) float64 {
	return c.engine.TimeToPixel(t)
}

// PixelToTime maps a horizontal surface position to a time.
func (c *Chart) PixelToTime(px float64) float64 {
	return c.engine.PixelToTime(px)
}

// VisibleClusters returns the clusters intersecting the visible window,
// refined for the current zoom.
func (c *Chart) VisibleClusters() []cluster.RenderCluster {
	st := c.engine.State()
	return cluster.Reclusterize(c.clusters, st.Zoom, st.PositionX, st.VisibleEnd(), c.params)
}

// Selected returns the selected cluster.
func (c *Chart) Selected() (cluster.RenderCluster, bool) {
	return c.selected, c.hasSelected
}

// ClearSelection drops the selection.
func (c *Chart) ClearSelection() {
	if !c.hasSelected {
		return
	}
	c.hasSelected = false
	c.requestPartial()
}

// SetFlameCollapsed collapses or expands the flame area.
func (c *Chart) SetFlameCollapsed(collapsed bool) {
	c.engine.SetCollapsed(c.flame, collapsed)
	c.layoutChanged()
}

// FlameCollapsed reports whether the flame area is collapsed.
func (c *Chart) FlameCollapsed() bool {
	p, _ := c.engine.Panel(c.flame)
	return p.Collapsed
}

// SetFlameHeight gives the flame area an explicit height. A height <= 0
// lets it grow into the free space again.
func (c *Chart) SetFlameHeight(height float64) {
	if height <= 0 {
		c.engine.ClearPanelHeight(c.flame)
	} else {
		c.engine.SetPanelHeight(c.flame, height)
	}
	c.layoutChanged()
}

// FlamePanel returns the flame area panel.
func (c *Chart) FlamePanel() viewport.Panel {
	p, _ := c.engine.Panel(c.flame)
	return p
}

// ScrollY returns the vertical scroll offset of the flame area.
func (c *Chart) ScrollY() float64 {
	return c.scrollY
}

// SetScrollY scrolls the flame area, clamped to its content.
func (c *Chart) SetScrollY(y float64) {
	y = math.Min(math.Max(y, 0), c.maxScroll())
	if y == c.scrollY {
		return
	}
	c.scrollY = y
	c.requestFull()
}

func (c *Chart) contentHeight() float64 {
	return float64(c.levels) * c.cfg.NodeHeight
}

func (c *Chart) maxScroll() float64 {
	p, _ := c.engine.Panel(c.flame)
	return math.Max(c.contentHeight()-p.VisibleHeight(), 0)
}

// HitTest returns the region under a surface point in the last rebuilt
// region set, or nil.
func (c *Chart) HitTest(x, y float64) *hit.Region {
	return c.dispatcher.HitTest(x, y)
}

// HandlePointer feeds one pointer event to the chart.
func (c *Chart) HandlePointer(ev hit.PointerEvent) {
	c.dispatcher.Handle(ev)
}

// Cursor returns the pointer shape hint for the hovered region.
func (c *Chart) Cursor() hit.Cursor {
	return c.dispatcher.Cursor()
}

// Hovered returns the region under the pointer, or nil.
func (c *Chart) Hovered() *hit.Region {
	return c.dispatcher.Hovered()
}

// OnSelect registers fn for clicks. fn receives nil for clicks on
// background.
func (c *Chart) OnSelect(fn func(*hit.Region)) observer.Handle { return c.selectObs.Add(fn) }

// OnHover registers fn for hover changes. A change is reported as nil
// followed by the new region.
func (c *Chart) OnHover(fn func(*hit.Region)) observer.Handle { return c.hoverObs.Add(fn) }

// OnViewportChanged registers fn for pan, zoom and resize.
func (c *Chart) OnViewportChanged(fn func(viewport.Change)) observer.Handle {
	return c.viewportObs.Add(fn)
}

// Attach sets the surface drawn by scheduled frames. Pass nil to detach.
func (c *Chart) Attach(s surface.Surface) {
	c.target = s
	if s != nil {
		c.requestFull()
	}
}

// Render draws a full frame onto s and rebuilds the hit regions at once.
// A pending scheduled frame is dropped.
func (c *Chart) Render(s surface.Surface) error {
	if c.frames != nil {
		c.frames.Cancel()
	}
	if c.rebuild != nil {
		c.rebuild.Cancel()
	}
	c.draw(s, schedule.Full)
	c.rebuildRegions()
	if err := s.Flush(); err != nil {
		return fmt.Errorf("flamegraph: render: %w", err)
	}
	return nil
}

// PendingFrame returns the pass of the pending scheduled frame.
func (c *Chart) PendingFrame() schedule.Pass {
	if c.frames == nil {
		return schedule.None
	}
	return c.frames.Pending()
}

// frame is the FrameScheduler callback.
func (c *Chart) frame(pass schedule.Pass) {
	if c.target == nil {
		return
	}
	c.draw(c.target, pass)
	if err := c.target.Flush(); err != nil {
		logging.Get().Warn("flamegraph: flush failed", "err", err)
	}
	if pass == schedule.Full {
		c.rebuild.Trigger(c.rebuildRegions)
	}
}

func (c *Chart) requestFull() {
	if c.frames != nil {
		c.frames.RequestFull()
	}
}

func (c *Chart) requestPartial() {
	if c.frames != nil {
		c.frames.RequestPartial()
	}
}

// viewportChanged reclusters the full extent after zoom changes and
// schedules a redraw.
func (c *Chart) viewportChanged(ch viewport.Change) {
	if ch.Zoom != c.clusteredZoom {
		c.clusters = cluster.Clusterize(c.metas, ch.Zoom, math.Inf(-1), math.Inf(1), c.params)
		c.clusteredZoom = ch.Zoom
		logging.Get().Debug("flamegraph: reclustered", "zoom", ch.Zoom, "clusters", len(c.clusters))
	}
	c.scrollY = math.Min(c.scrollY, c.maxScroll())
	c.viewportObs.Emit(ch)
	c.requestFull()
}

func (c *Chart) layoutChanged() {
	c.scrollY = math.Min(c.scrollY, c.maxScroll())
	c.requestFull()
}
