// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is the frame period used by Loop when none is given.
const DefaultFrameInterval = 16 * time.Millisecond

// Host supplies frame and timer callbacks.
//
// Callbacks must be delivered on the goroutine that drives the chart.
type Host interface {
	// RequestFrame runs fn before the next frame is presented. The returned
	// function cancels the request if it has not run yet.
	RequestFrame(fn func()) (cancel func())

	// AfterFunc runs fn once after d. stop cancels it and reports whether
	// the call was prevented.
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

// Loop is a Host backed by a goroutine-confined event loop.
//
// Run executes every callback on the calling goroutine. Other goroutines
// hand work to the loop with Post.
type Loop struct {
	interval time.Duration
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	frames []*pending
}

type pending struct {
	fn       func()
	canceled atomic.Bool
}

// NewLoop creates a loop that presents a frame every interval.
// A non-positive interval selects DefaultFrameInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Loop{
		interval: interval,
		queue:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine. It reports false when the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// RequestFrame implements Host.
func (l *Loop) RequestFrame(fn func()) func() {
	p := &pending{fn: fn}
	l.mu.Lock()
	l.frames = append(l.frames, p)
	l.mu.Unlock()
	return func() { p.canceled.Store(true) }
}

// AfterFunc implements Host. fn runs on the loop goroutine.
func (l *Loop) AfterFunc(d time.Duration, fn func()) func() bool {
	p := &pending{fn: fn}
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !p.canceled.Load() {
				p.fn()
			}
		})
	})
	return func() bool {
		stopped := t.Stop()
		return !p.canceled.Swap(true) && stopped
	}
}

// Run executes queued callbacks and frames until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer l.stopOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		case <-ticker.C:
			l.runFrames()
		}
	}
}

func (l *Loop) runFrames() {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()

	for _, p := range frames {
		if !p.canceled.Load() {
			p.fn()
		}
	}
}
