// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package schedule

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the default debounce window, about one frame.
const DefaultDebounceDelay = 16 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback. When Trigger is
// called again before the delay elapses, the earlier callback is cancelled
// and the delay restarts.
type Debouncer struct {
	host  Host
	delay time.Duration

	mu   sync.Mutex
	stop func() bool
	seq  uint64
}

// NewDebouncer creates a debouncer on host. A zero delay selects
// DefaultDebounceDelay.
func NewDebouncer(host Host, delay time.Duration) *Debouncer {
	if delay == 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{host: host, delay: delay}
}

// Trigger schedules callback after the delay, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.stop != nil {
		d.stop()
	}
	d.stop = d.host.AfterFunc(d.delay, func() {
		shouldRun := func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			// A stale timer may still fire after Stop lost the race.
			if seq != d.seq {
				return false
			}
			d.stop = nil
			return true
		}()
		if shouldRun {
			callback()
		}
	})
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// Cancel cancels any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}

// Delay returns the debounce delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
