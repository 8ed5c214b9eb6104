// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"cmp"
	"math"
	"slices"
)

// Interval is one node of the input forest: a named span of time with
// optional nested children.
//
// Children are conventionally contained in their parent's time range, but
// containment is not enforced.
type Interval struct {
	Name     string      `json:"name" yaml:"name"`
	Start    float64     `json:"start" yaml:"start"`
	Duration float64     `json:"duration" yaml:"duration"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty"`
	Color    string      `json:"color,omitempty" yaml:"color,omitempty"`
	Children []*Interval `json:"children,omitempty" yaml:"children,omitempty"`
}

// End returns Start + Duration.
func (iv *Interval) End() float64 {
	return iv.Start + iv.Duration
}

// FlatNode is an Interval placed in the flattened, leveled sequence.
//
// Parent is a non-owning back reference into the same flattened slice.
type FlatNode struct {
	Source *Interval
	Start  float64
	End    float64
	Parent *FlatNode

	// Level is the depth from the root of the tree the node belongs to.
	Level int

	// Index is the depth-first visit position. It is only a tiebreak.
	Index int
}

// Duration returns End - Start.
func (n *FlatNode) Duration() float64 {
	return n.End - n.Start
}

// Name returns the source interval name.
func (n *FlatNode) Name() string {
	return n.Source.Name
}

// Type returns the source interval category.
func (n *FlatNode) Type() string {
	return n.Source.Type
}

// Color returns the source interval colour hint.
func (n *FlatNode) Color() string {
	return n.Source.Color
}

// Flatten converts a forest into a flat sequence sorted by (Level, Start).
// Every root is at level 0. Nil intervals are skipped; use Validate to reject
// them up front.
func Flatten(forest []*Interval) []*FlatNode {
	out := make([]*FlatNode, 0, Count(forest))

	type frame struct {
		iv     *Interval
		parent *FlatNode
		level  int
	}
	// Explicit stack; pushing children in reverse keeps pre-order visits.
	stack := make([]frame, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame{iv: forest[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.iv == nil {
			continue
		}

		node := &FlatNode{
			Source: f.iv,
			Start:  f.iv.Start,
			End:    f.iv.End(),
			Parent: f.parent,
			Level:  f.level,
			Index:  len(out),
		}
		out = append(out, node)

		for i := len(f.iv.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{iv: f.iv.Children[i], parent: node, level: f.level + 1})
		}
	}

	slices.SortFunc(out, func(a, b *FlatNode) int {
		if c := cmp.Compare(a.Level, b.Level); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	return out
}

// Extent returns the smallest Start and the largest End over flat.
// It returns (0, 0) for empty input.
func Extent(flat []*FlatNode) (lo, hi float64) {
	if len(flat) == 0 {
		return 0, 0
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, n := range flat {
		lo = min(lo, n.Start)
		hi = max(hi, n.End)
	}
	return lo, hi
}

// Count returns the number of non-nil intervals in the forest.
func Count(forest []*Interval) int {
	n := 0
	for _, iv := range forest {
		if iv == nil {
			continue
		}
		n += 1 + Count(iv.Children)
	}
	return n
}

// MaxLevel returns the deepest level present in flat, or -1 when empty.
// flat must be sorted as returned by Flatten.
func MaxLevel(flat []*FlatNode) int {
	if len(flat) == 0 {
		return -1
	}
	return flat[len(flat)-1].Level
}
