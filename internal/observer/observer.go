// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package observer provides typed subscriber lists with removable handles.
package observer

import "slices"

// List is an ordered set of callbacks receiving values of type T.
// The zero value is ready to use. List is not safe for concurrent use.
type List[T any] struct {
	entries []entry[T]
	nextID  uint32
}

type entry[T any] struct {
	id uint32
	fn func(T)
}

// Handle removes a callback registered with List.Add.
type Handle struct {
	remove func()
}

// Remove unregisters the callback. It is safe to call more than once and
// on the zero Handle.
func (h Handle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// Add registers fn and returns a handle that removes it.
func (l *List[T]) Add(fn func(T)) Handle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})
	return Handle{remove: func() { l.remove(id) }}
}

func (l *List[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = entry[T]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

// Emit calls every registered callback in registration order.
// Callbacks added or removed during Emit take effect on the next Emit.
func (l *List[T]) Emit(v T) {
	for _, e := range slices.Clone(l.entries) {
		e.fn(v)
	}
}

// Len returns the number of registered callbacks.
func (l *List[T]) Len() int {
	return len(l.entries)
}
