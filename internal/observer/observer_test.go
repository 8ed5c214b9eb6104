// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package observer

import "testing"

func TestListEmitOrder(t *testing.T) {
	var l List[int]
	var got []int
	l.Add(func(v int) { got = append(got, v) })
	l.Add(func(v int) { got = append(got, v*10) })

	l.Emit(2)
	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Errorf("Emit() calls = %v, want [2 20]", got)
	}
}

func TestHandleRemove(t *testing.T) {
	var l List[string]
	calls := 0
	h := l.Add(func(string) { calls++ })
	l.Add(func(string) {})

	h.Remove()
	h.Remove()
	Handle{}.Remove()

	l.Emit("x")
	if calls != 0 {
		t.Errorf("removed callback called %d times", calls)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}
