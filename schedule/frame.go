// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"fmt"
	"sync"
)

// Pass selects how much of the chart a frame redraws.
type Pass uint8

const (
	// None means no frame is pending.
	None Pass = iota

	// Partial redraws the flame area only, for hover and selection changes.
	Partial

	// Full redraws clusters, grid and panel chrome, and rebuilds hit
	// regions afterwards.
	Full
)

func (p Pass) String() string {
	switch p {
	case None:
		return "none"
	case Partial:
		return "partial"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Pass(%d)", p)
	}
}

// FrameScheduler coalesces render requests into at most one pending host
// frame.
//
// Repeated requests of the same pass are merged. A full request supersedes a
// pending partial one: the partial frame is cancelled and a full frame is
// requested instead. A partial request never downgrades a pending full one.
type FrameScheduler struct {
	host   Host
	render func(Pass)

	mu      sync.Mutex
	pending Pass
	cancel  func()
	seq     uint64
}

// NewFrameScheduler creates a scheduler that calls render on host frames.
func NewFrameScheduler(host Host, render func(Pass)) *FrameScheduler {
	return &FrameScheduler{host: host, render: render}
}

// RequestPartial asks for a flame-area-only redraw.
func (s *FrameScheduler) RequestPartial() {
	s.request(Partial)
}

// RequestFull asks for a complete redraw.
func (s *FrameScheduler) RequestFull() {
	s.request(Full)
}

// Pending returns the pass of the pending frame, or None.
func (s *FrameScheduler) Pending() Pass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Cancel drops the pending frame, if any.
func (s *FrameScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop()
}

func (s *FrameScheduler) request(p Pass) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending >= p {
		return
	}
	s.drop()

	s.seq++
	seq := s.seq
	s.pending = p
	s.cancel = s.host.RequestFrame(func() {
		pass := func() Pass {
			s.mu.Lock()
			defer s.mu.Unlock()
			if seq != s.seq {
				return None
			}
			pass := s.pending
			s.pending, s.cancel = None, nil
			return pass
		}()
		if pass != None {
			s.render(pass)
		}
	})
}

// drop must be called with mu held.
func (s *FrameScheduler) drop() {
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.pending = None
}
