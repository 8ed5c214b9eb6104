// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hit resolves pointer positions to drawn elements.
//
// Each panel owns a Layer: a flat list of rectangular regions rebuilt on
// every render pass. Dispatcher finds the panel whose vertical band holds
// the pointer, translates y into panel-local coordinates and returns the
// first region of that panel containing the point. The first inserted match
// wins, so panels add their topmost regions first.
//
// Dispatcher also turns raw down/move/up events into hover, select, double
// click and drag notifications:
//
//	d := hit.NewDispatcher(engine, hit.DefaultConfig())
//	d.OnSelect(func(r *hit.Region) { ... })
//	d.Handle(hit.PointerEvent{Type: hit.Down, X: 10, Y: 20})
package hit
