// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command flamedemo renders a flame chart to PNG or SVG.
//
// Usage:
//
//	flamedemo -input profile.json -output flame.svg -zoom 4
//	flamedemo -steps 20 -zoom 8 -output zoomed.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gogpu/flamegraph"
	_ "github.com/gogpu/flamegraph/export"
	"github.com/gogpu/flamegraph/recording"
	"github.com/gogpu/flamegraph/schedule"
	"github.com/gogpu/flamegraph/surface"
	"github.com/gogpu/flamegraph/tree"
)

type params struct {
	input  string
	config string
	output string
	width  int
	height int
	zoom   float64
	at     float64
	steps  int

	// surface names the surface backend PNG output is drawn into.
	surface string
}

func main() {
	var (
		p       params
		verbose bool
	)
	flag.StringVar(&p.input, "input", "", "forest file (.json, .yaml or .yml); a synthetic profile when empty")
	flag.StringVar(&p.config, "config", "", "YAML chart configuration")
	flag.StringVar(&p.output, "output", "flame.png", "output file (.png or .svg)")
	flag.IntVar(&p.width, "width", 1200, "image width")
	flag.IntVar(&p.height, "height", 600, "image height")
	flag.Float64Var(&p.zoom, "zoom", 1, "zoom factor around -at")
	flag.Float64Var(&p.at, "at", -1, "zoom anchor in pixels; the centre when negative")
	flag.IntVar(&p.steps, "steps", 0, "reach -zoom in this many animated steps on a frame loop")
	flag.StringVar(&p.surface, "surface", recording.DefaultRasterSurface,
		"surface backend for raster output, one of "+strings.Join(surface.Backends(), ", "))
	flag.BoolVar(&verbose, "v", false, "log chart diagnostics to stderr")
	flag.Parse()

	if verbose {
		flamegraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(p); err != nil {
		log.Fatalf("flamedemo: %v", err)
	}
	log.Printf("Chart saved to %s (%dx%d)\n", p.output, p.width, p.height)
}

func run(p params) error {
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", p.width, p.height)
	}
	if p.zoom <= 0 {
		return fmt.Errorf("invalid zoom %v", p.zoom)
	}
	if p.surface == "" {
		p.surface = recording.DefaultRasterSurface
	}
	if !slices.Contains(surface.Backends(), p.surface) {
		return fmt.Errorf("unknown surface backend %q (have %s)", p.surface, strings.Join(surface.Backends(), ", "))
	}
	if p.at < 0 {
		p.at = float64(p.width) / 2
	}

	cfg := flamegraph.DefaultConfig()
	if p.config != "" {
		var err error
		if cfg, err = flamegraph.LoadConfigFile(p.config); err != nil {
			return err
		}
	}

	forest, err := loadForest(p.input)
	if err != nil {
		return err
	}

	rec := &frameRecorder{Recorder: recording.NewRecorder(p.width, p.height)}
	if p.steps > 0 {
		err = animate(p, cfg, forest, rec)
	} else {
		err = renderOnce(p, cfg, forest, rec)
	}
	if err != nil {
		return err
	}
	return export(rec.Finish(), p.output, p.surface)
}

func renderOnce(p params, cfg flamegraph.Config, forest []*tree.Interval, rec *frameRecorder) error {
	c := flamegraph.New(float64(p.width), float64(p.height), flamegraph.WithConfig(cfg))
	if err := c.SetData(forest); err != nil {
		return err
	}
	if p.zoom != 1 {
		c.ZoomAt(p.at, p.zoom)
	}
	return c.Render(rec)
}

// animate drives the chart from a frame loop, zooming one step per two
// frames, and stops once the last regions are rebuilt.
func animate(p params, cfg flamegraph.Config, forest []*tree.Interval, rec *frameRecorder) error {
	loop := schedule.NewLoop(schedule.DefaultFrameInterval)
	c := flamegraph.New(float64(p.width), float64(p.height),
		flamegraph.WithConfig(cfg), flamegraph.WithHost(loop))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var setErr error
	loop.Post(func() {
		if setErr = c.SetData(forest); setErr != nil {
			cancel()
			return
		}
		c.Attach(rec)
	})

	factor := math.Pow(p.zoom, 1/float64(p.steps))
	step := 2 * schedule.DefaultFrameInterval
	for i := 1; i <= p.steps; i++ {
		loop.AfterFunc(step*time.Duration(i), func() {
			c.ZoomAt(p.at, factor)
		})
	}
	loop.AfterFunc(step*time.Duration(p.steps+2)+cfg.RegionRebuildDelay, cancel)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return setErr
}

// frameRecorder keeps only the latest frame: a full frame starts with
// Clear, which drops everything recorded before it.
type frameRecorder struct {
	*recording.Recorder
}

func (r *frameRecorder) Clear(c color.Color) {
	r.Recorder.Reset()
	r.Recorder.Clear(c)
}

func export(rec *recording.Recording, path, surfaceName string) error {
	backend, name, err := recording.BackendFor(path)
	if err != nil {
		return err
	}
	if rb, ok := backend.(*recording.RasterBackend); ok {
		rb.SurfaceName = surfaceName
	}
	w, ok := backend.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", name)
	}
	if err := rec.Playback(w); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
