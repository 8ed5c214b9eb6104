// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures chart drawing as typed commands.
//
// Recorder implements surface.Surface, so a chart render pass can target it
// like any other surface. Finish returns an immutable Recording that can be
// replayed to a Backend: the built-in "raster" backend, the "svg" backend
// from package export, or any surface through PlaybackTo.
//
// Colors are interned in a Palette and referenced by ColorRef, so a chart
// with thousands of same-colored clusters records each color once.
//
//	rec := recording.NewRecorder(800, 600)
//	chart.Render(rec)
//	r := rec.Finish()
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
package recording
