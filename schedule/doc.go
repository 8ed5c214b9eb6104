// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package schedule defers rendering work to host frames.
//
// The chart never renders synchronously in response to input. Mutations
// request a partial frame (flame area only) or a full frame (flame, grid,
// panels); FrameScheduler coalesces requests so at most one host frame is
// pending. Hit regions are rebuilt a short while after a full frame through
// a Debouncer.
//
// Timing comes from a Host. Loop is a Host for programs that own their event
// loop; ManualHost drives frames and timers explicitly in tests.
package schedule
