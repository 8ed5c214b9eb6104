// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawing target a chart renders into.
//
// Surface is the small set of primitives a flame chart needs: filled and
// stroked rectangles, lines and single-line text. Keeping the contract this
// narrow lets the same render pass target a raster image, a command
// recording or a vector exporter.
//
// # Implementations
//
//   - ImageSurface: CPU rasterization into *image.RGBA using
//     golang.org/x/image/vector and an opentype face
//   - recording.Recorder: captures commands for playback or SVG export
//
// Backends register themselves by name:
//
//	s, err := surface.NewSurfaceByName("image", 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(surface.Rect{X: 10, Y: 10, W: 100, H: 18}, color.RGBA{R: 200, A: 255})
//	s.DrawText("main", 14, 23, surface.DefaultTextStyle())
//
// Surfaces are not safe for concurrent use.
package surface
