// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"testing"

	"github.com/gogpu/flamegraph/textmetrics"
	"github.com/gogpu/flamegraph/tree"
)

type countingMeasurer struct {
	textmetrics.FixedMeasurer
	calls int
}

func (m *countingMeasurer) Advance(text string, size float64) float64 {
	m.calls++
	return m.FixedMeasurer.Advance(text, size)
}

func TestWithMeasurer(t *testing.T) {
	m := &countingMeasurer{FixedMeasurer: textmetrics.FixedMeasurer{Ratio: 0.6}}
	tc := newTestChart(t, WithMeasurer(m))
	tc.render()
	if m.calls == 0 {
		t.Error("custom measurer was not used for labels")
	}
}

func TestWithEquivalence(t *testing.T) {
	forest := []*tree.Interval{
		{Name: "a", Start: 0, Duration: 0.1, Type: "x"},
		{Name: "b", Start: 0.1, Duration: 0.1, Type: "y"},
		{Name: "c", Start: 0.2, Duration: 0.1, Type: "z"},
		{Name: "wide", Start: 0.3, Duration: 99.7, Type: "w"},
	}

	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"default splits types", nil, 4},
		{"merge everything", []Option{WithEquivalence(func(a, b *tree.FlatNode) bool { return true })}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithMeasurer(textmetrics.FixedMeasurer{Ratio: 0.6})}, tt.opts...)
			c := New(testWidth, testHeight, opts...)
			if err := c.SetData(forest); err != nil {
				t.Fatal(err)
			}
			if got := len(c.VisibleClusters()); got != tt.want {
				t.Errorf("VisibleClusters() = %d clusters, want %d", got, tt.want)
			}
		})
	}
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NodeHeight = 24
	cfg.TimelineHeight = 30
	c := New(testWidth, testHeight, WithConfig(cfg))

	if got := c.Config().NodeHeight; got != 24 {
		t.Errorf("NodeHeight = %v, want 24", got)
	}
	if p := c.FlamePanel(); p.Position != 30+HeaderHeight {
		t.Errorf("flame position = %v, want %v", p.Position, 30+HeaderHeight)
	}
}
