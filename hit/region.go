// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hit

import (
	"fmt"

	"github.com/gogpu/flamegraph/cluster"
	"github.com/gogpu/flamegraph/tree"
	"github.com/gogpu/flamegraph/viewport"
)

// Kind identifies what a region represents.
type Kind uint8

const (
	KindCluster Kind = iota + 1
	KindKnob
	KindToggle
	KindTimestamp
	KindResizeHandle
)

var kindNames = [...]string{
	KindCluster:      "cluster",
	KindKnob:         "knob",
	KindToggle:       "toggle",
	KindTimestamp:    "timestamp",
	KindResizeHandle: "resize-handle",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Cursor is a hint for the host pointer shape over a region.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorRowResize
	CursorGrab
)

// Payload is the typed data carried by a region. The set of payloads is
// closed: ClusterPayload, KnobPayload, TogglePayload, TimestampPayload and
// ResizePayload.
type Payload interface {
	Kind() Kind

	// Key identifies the payload across region rebuilds. It must be
	// comparable.
	Key() any

	payload()
}

// ClusterPayload is attached to a drawn cluster.
type ClusterPayload struct {
	Cluster cluster.RenderCluster
}

type clusterKey struct {
	head *tree.FlatNode
	n    int
}

func (ClusterPayload) Kind() Kind { return KindCluster }
func (p ClusterPayload) Key() any {
	if len(p.Cluster.Nodes) == 0 {
		return clusterKey{}
	}
	return clusterKey{head: p.Cluster.Nodes[0], n: len(p.Cluster.Nodes)}
}
func (ClusterPayload) payload() {}

// KnobPayload marks a draggable knob, for example a panel scroll handle.
type KnobPayload struct {
	Panel viewport.PanelID
	Name  string
}

func (KnobPayload) Kind() Kind { return KindKnob }
func (p KnobPayload) Key() any { return p }
func (KnobPayload) payload()   {}

// TogglePayload collapses or expands a panel when clicked.
type TogglePayload struct {
	Target viewport.PanelID
}

func (TogglePayload) Kind() Kind { return KindToggle }
func (p TogglePayload) Key() any { return p }
func (TogglePayload) payload()   {}

// TimestampPayload marks a point in time such as a grid tick or marker.
type TimestampPayload struct {
	Time  float64
	Label string
}

func (TimestampPayload) Kind() Kind { return KindTimestamp }
func (p TimestampPayload) Key() any { return p }
func (TimestampPayload) payload()   {}

// ResizePayload is a handle that changes the height of Target by dragging.
type ResizePayload struct {
	Target viewport.PanelID
}

func (ResizePayload) Kind() Kind { return KindResizeHandle }
func (p ResizePayload) Key() any { return p }
func (ResizePayload) payload()   {}

// Region is an axis-aligned rectangle in panel-local pixels with a payload.
type Region struct {
	Payload Payload
	X, Y    float64
	W, H    float64
	Cursor  Cursor
	Panel   viewport.PanelID
}

// Kind returns the payload kind, or 0 for a region without payload.
func (r *Region) Kind() Kind {
	if r.Payload == nil {
		return 0
	}
	return r.Payload.Kind()
}

// Contains reports whether (x, y) lies in the half-open rectangle
// [X, X+W) x [Y, Y+H).
func (r *Region) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Same reports whether a and b refer to the same element: same panel, kind
// and payload key. Two nil regions are the same.
func Same(a, b *Region) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Panel != b.Panel || a.Kind() != b.Kind() {
		return false
	}
	if a.Payload == nil {
		return true
	}
	return a.Payload.Key() == b.Payload.Key()
}
