// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/flamegraph/tree"
)

// loadForest reads a forest from JSON or YAML, chosen by extension. An
// empty path returns a synthetic profile.
func loadForest(path string) ([]*tree.Interval, error) {
	if path == "" {
		return syntheticForest(rand.New(rand.NewPCG(1, 2))), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var forest []*tree.Interval
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &forest)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &forest)
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return forest, nil
}

var syntheticKinds = []struct {
	typ   string
	color string
}{
	{"script", "#e5a34b"},
	{"layout", "#8a6fd1"},
	{"paint", "#4fa36b"},
	{"gc", "#c8c8c8"},
}

// syntheticForest builds a few thousand nested calls with bursts of tiny
// gc nodes that merge when zoomed out.
func syntheticForest(r *rand.Rand) []*tree.Interval {
	var forest []*tree.Interval
	t := 0.0
	for i := range 12 {
		d := 40 + r.Float64()*160
		forest = append(forest, syntheticNode(r, fmt.Sprintf("task %d", i), t, d, 0))
		t += d + r.Float64()*20
	}
	return forest
}

func syntheticNode(r *rand.Rand, name string, start, duration float64, depth int) *tree.Interval {
	kind := syntheticKinds[r.IntN(len(syntheticKinds)-1)]
	iv := &tree.Interval{Name: name, Start: start, Duration: duration, Type: kind.typ, Color: kind.color}
	if depth >= 6 || duration < 1 {
		return iv
	}

	t := start
	end := start + duration
	for n := 0; t < end; n++ {
		if r.IntN(8) == 0 {
			t = syntheticBurst(r, iv, t, end)
			continue
		}
		d := min(duration*(0.1+r.Float64()*0.4), end-t)
		iv.Children = append(iv.Children, syntheticNode(r, fmt.Sprintf("%s.%d", name, n), t, d, depth+1))
		t += d + duration*r.Float64()*0.05
	}
	return iv
}

// syntheticBurst appends a run of short adjacent gc children.
func syntheticBurst(r *rand.Rand, parent *tree.Interval, t, end float64) float64 {
	gc := syntheticKinds[len(syntheticKinds)-1]
	for range 10 + r.IntN(40) {
		d := 0.01 + r.Float64()*0.05
		if t+d > end {
			break
		}
		parent.Children = append(parent.Children, &tree.Interval{
			Name: "gc", Start: t, Duration: d, Type: gc.typ, Color: gc.color,
		})
		t += d + 0.005
	}
	return t + 0.01
}
