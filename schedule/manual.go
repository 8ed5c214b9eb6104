// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"slices"
	"time"
)

// ManualHost is a Host whose frames and timers only run when told to.
// It is not safe for concurrent use.
type ManualHost struct {
	now    time.Time
	frames []*pending
	timers []*manualTimer
	seq    int
}

type manualTimer struct {
	at  time.Time
	seq int
	pending
}

// NewManualHost creates a host with its clock at start.
func NewManualHost(start time.Time) *ManualHost {
	return &ManualHost{now: start}
}

// Now returns the host clock.
func (h *ManualHost) Now() time.Time {
	return h.now
}

// RequestFrame implements Host.
func (h *ManualHost) RequestFrame(fn func()) func() {
	p := &pending{fn: fn}
	h.frames = append(h.frames, p)
	return func() { p.canceled.Store(true) }
}

// AfterFunc implements Host.
func (h *ManualHost) AfterFunc(d time.Duration, fn func()) func() bool {
	h.seq++
	t := &manualTimer{at: h.now.Add(d), seq: h.seq}
	t.fn = fn
	h.timers = append(h.timers, t)
	return func() bool { return !t.canceled.Swap(true) }
}

// PendingFrames returns the number of frame requests not yet run or
// cancelled.
func (h *ManualHost) PendingFrames() int {
	n := 0
	for _, p := range h.frames {
		if !p.canceled.Load() {
			n++
		}
	}
	return n
}

// PendingTimers returns the number of timers not yet fired or stopped.
func (h *ManualHost) PendingTimers() int {
	n := 0
	for _, t := range h.timers {
		if !t.canceled.Load() {
			n++
		}
	}
	return n
}

// Frame runs the pending frame callbacks. Frames requested from inside a
// callback wait for the next call.
func (h *ManualHost) Frame() int {
	frames := h.frames
	h.frames = nil
	n := 0
	for _, p := range frames {
		if !p.canceled.Load() {
			p.fn()
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and fires due timers in deadline
// order.
func (h *ManualHost) Advance(d time.Duration) {
	h.now = h.now.Add(d)
	for {
		i := h.nextDue()
		if i < 0 {
			return
		}
		t := h.timers[i]
		h.timers = slices.Delete(h.timers, i, i+1)
		if !t.canceled.Swap(true) {
			t.fn()
		}
	}
}

func (h *ManualHost) nextDue() int {
	best := -1
	for i, t := range h.timers {
		if t.at.After(h.now) {
			continue
		}
		if best < 0 || t.at.Before(h.timers[best].at) ||
			(t.at.Equal(h.timers[best].at) && t.seq < h.timers[best].seq) {
			best = i
		}
	}
	return best
}
