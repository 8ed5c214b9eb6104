// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cluster

import (
	"github.com/gogpu/flamegraph/tree"
)

// Default clustering thresholds, in pixels.
const (
	DefaultStickDistance = 0.25
	DefaultMinBlockSize  = 1.0
	DefaultMinNodeWidth  = 1.0
)

// Params holds the pixel thresholds used by Clusterize and Reclusterize.
type Params struct {
	// StickDistance is the largest pixel gap that still lets two nodes merge.
	StickDistance float64

	// MinBlockSize is the pixel width below which a node may be merged
	// with its neighbours.
	MinBlockSize float64

	// MinNodeWidth is the rendered width floor so zero-duration nodes stay
	// visible and clickable.
	MinNodeWidth float64
}

// DefaultParams returns the default clustering thresholds.
func DefaultParams() Params {
	return Params{
		StickDistance: DefaultStickDistance,
		MinBlockSize:  DefaultMinBlockSize,
		MinNodeWidth:  DefaultMinNodeWidth,
	}
}

// MinClusterSize is the on-screen width above which Reclusterize keeps a
// cluster unchanged.
func (p Params) MinClusterSize() float64 {
	return 2*p.MinBlockSize + p.StickDistance
}

// Equivalence reports whether two same-level neighbours belong to the same
// visual category.
type Equivalence func(a, b *tree.FlatNode) bool

// DefaultEquivalence groups nodes with equal Type and equal Color.
func DefaultEquivalence(a, b *tree.FlatNode) bool {
	return a.Type() == b.Type() && a.Color() == b.Color()
}

// MetaCluster is a maximal run of adjacent same-level flat nodes that
// satisfy an Equivalence. It does not depend on zoom.
type MetaCluster struct {
	Nodes []*tree.FlatNode
}

// Level returns the level shared by all nodes.
func (m MetaCluster) Level() int {
	return m.Nodes[0].Level
}

// RenderCluster is a zoom-dependent merge of a contiguous sub-run of one
// MetaCluster. Type, Color and Level come from the first member.
type RenderCluster struct {
	Start    float64
	End      float64
	Duration float64
	Level    int
	Type     string
	Color    string
	Nodes    []*tree.FlatNode
}

// Single reports whether the cluster holds exactly one node.
func (c *RenderCluster) Single() bool {
	return len(c.Nodes) == 1
}

// Overlaps reports whether the cluster intersects the open range (start, end).
func (c *RenderCluster) Overlaps(start, end float64) bool {
	return c.Start < end && c.End > start
}

// PixelWidth returns the rendered width at zoom, floored at p.MinNodeWidth.
func (c *RenderCluster) PixelWidth(zoom float64, p Params) float64 {
	return max(c.Duration*zoom, p.MinNodeWidth)
}

// ShowsLabel reports whether a label should be drawn: only single-node
// clusters wider than minLabelWidth pixels get one.
func (c *RenderCluster) ShowsLabel(zoom, minLabelWidth float64) bool {
	return c.Single() && c.Duration*zoom > minLabelWidth
}

// MetaClusterize splits the (Level, Start)-sorted flat sequence into
// MetaClusters in a single forward pass. A nil eq uses DefaultEquivalence.
//
// The returned clusters alias flat; their concatenation equals flat.
func MetaClusterize(flat []*tree.FlatNode, eq Equivalence) []MetaCluster {
	if len(flat) == 0 {
		return nil
	}
	if eq == nil {
		eq = DefaultEquivalence
	}

	var out []MetaCluster
	first := 0
	for i := 1; i < len(flat); i++ {
		prev, n := flat[i-1], flat[i]
		if prev.Level == n.Level && eq(prev, n) {
			continue
		}
		out = append(out, MetaCluster{Nodes: flat[first:i:i]})
		first = i
	}
	return append(out, MetaCluster{Nodes: flat[first:len(flat):len(flat)]})
}

// Clusterize merges the nodes of every MetaCluster into RenderClusters for
// the window [start, end] at zoom pixels per time unit.
//
// Nodes outside the window are skipped and close the open cluster, so each
// result is a contiguous sub-run of its MetaCluster. A node joins the open
// cluster when the pixel gap to the previous node is below StickDistance and
// both nodes are narrower than MinBlockSize.
func Clusterize(metas []MetaCluster, zoom, start, end float64, p Params) []RenderCluster {
	var out []RenderCluster
	for _, m := range metas {
		out = appendClusters(out, m.Nodes, zoom, start, end, p)
	}
	return out
}

// Reclusterize refines clusters produced by Clusterize for a new window.
// Clusters outside the window are dropped. Clusters already at least
// MinClusterSize pixels wide are kept; the rest are re-run through the
// render clustering scan over their own nodes.
//
// For unchanged parameters the result equals the input restricted to the
// window.
func Reclusterize(clusters []RenderCluster, zoom, start, end float64, p Params) []RenderCluster {
	var out []RenderCluster
	limit := p.MinClusterSize()
	for i := range clusters {
		c := &clusters[i]
		if !c.Overlaps(start, end) {
			continue
		}
		if c.Duration*zoom >= limit {
			out = append(out, *c)
			continue
		}
		out = appendClusters(out, c.Nodes, zoom, start, end, p)
	}
	return out
}

func appendClusters(out []RenderCluster, nodes []*tree.FlatNode, zoom, start, end float64, p Params) []RenderCluster {
	first := -1
	for i, n := range nodes {
		if !(n.Start < end && n.End > start) {
			if first >= 0 {
				out = append(out, newRenderCluster(nodes[first:i:i]))
				first = -1
			}
			continue
		}
		if first >= 0 {
			prev := nodes[i-1]
			if (n.Start-prev.End)*zoom < p.StickDistance &&
				prev.Duration()*zoom < p.MinBlockSize &&
				n.Duration()*zoom < p.MinBlockSize {
				continue
			}
			out = append(out, newRenderCluster(nodes[first:i:i]))
		}
		first = i
	}
	if first >= 0 {
		out = append(out, newRenderCluster(nodes[first:len(nodes):len(nodes)]))
	}
	return out
}

func newRenderCluster(nodes []*tree.FlatNode) RenderCluster {
	head, tail := nodes[0], nodes[len(nodes)-1]
	return RenderCluster{
		Start:    head.Start,
		End:      tail.End,
		Duration: tail.End - head.Start,
		Level:    head.Level,
		Type:     head.Type(),
		Color:    head.Color(),
		Nodes:    nodes,
	}
}
