// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textmetrics

import (
	"strconv"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func TestFit(t *testing.T) {
	m := FixedMeasurer{Ratio: 0.5} // 6px per rune at size 12
	tests := []struct {
		name  string
		label string
		width float64
		want  string
	}{
		{"fits", "main", 24, "main"},
		{"truncated", "runtime", 30, "runt…"},
		{"only ellipsis", "runtime", 6, "…"},
		{"too narrow", "runtime", 5, ""},
		{"zero width", "main", 0, ""},
		{"empty", "", 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(m, tt.label, tt.width, 12); got != tt.want {
				t.Errorf("Fit(%q, %v) = %q, want %q", tt.label, tt.width, got, tt.want)
			}
		})
	}
}

func TestShaperAdvance(t *testing.T) {
	s, err := DefaultShaper()
	if err != nil {
		t.Fatalf("DefaultShaper() error = %v", err)
	}

	short := s.Advance("main", 12)
	long := s.Advance("main.function", 12)
	if short <= 0 || long <= short {
		t.Errorf("Advance: short %v long %v, want 0 < short < long", short, long)
	}
	if big := s.Advance("main", 24); big <= short {
		t.Errorf("Advance at 24px = %v, want more than %v", big, short)
	}
	if s.Advance("", 12) != 0 {
		t.Error("empty text should have no advance")
	}

	s.Advance("main", 12)
	if st := s.Stats(); st.Hits == 0 {
		t.Errorf("Stats() = %+v, want cache hits", st)
	}
}

func TestShaperRejectsGarbage(t *testing.T) {
	if _, err := NewShaper([]byte("not a font")); err == nil {
		t.Error("NewShaper(garbage) error = nil")
	}
}

func TestFaceMeasurerAgreesWithShaper(t *testing.T) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	fm := NewFaceMeasurer(f)
	defer fm.Close()
	s, err := DefaultShaper()
	if err != nil {
		t.Fatal(err)
	}

	a, b := fm.Advance("flamegraph", 12), s.Advance("flamegraph", 12)
	if a <= 0 || b <= 0 {
		t.Fatalf("advances %v and %v, want positive", a, b)
	}
	// Hinting and kerning differ slightly between the two paths.
	if d := a - b; d > 3 || d < -3 {
		t.Errorf("FaceMeasurer %v vs Shaper %v differ by more than 3px", a, b)
	}
}

func TestFitWithShaper(t *testing.T) {
	s, err := DefaultShaper()
	if err != nil {
		t.Fatal(err)
	}
	label := "runtime.gcBgMarkWorker"
	w := s.Advance(label, 12) / 2
	got := Fit(s, label, w, 12)
	if got == label || got == "" {
		t.Fatalf("Fit() = %q, want a truncated label", got)
	}
	if adv := s.Advance(got, 12); adv > w {
		t.Errorf("Fit() result %q is %v px, wider than %v", got, adv, w)
	}
}

func TestShaperConcurrentMisses(t *testing.T) {
	s, err := DefaultShaper()
	if err != nil {
		t.Fatalf("DefaultShaper() error = %v", err)
	}
	labels := make([]string, 64)
	want := make([]float64, len(labels))
	ref, _ := DefaultShaper()
	for i := range labels {
		labels[i] = "frame." + strconv.Itoa(i)
		want[i] = ref.Advance(labels[i], 12)
	}

	var wg sync.WaitGroup
	got := make([][]float64, 8)
	for g := range got {
		got[g] = make([]float64, len(labels))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, l := range labels {
				got[g][i] = s.Advance(l, 12)
			}
		}()
	}
	wg.Wait()

	for g := range got {
		for i := range labels {
			if got[g][i] != want[i] {
				t.Fatalf("goroutine %d: Advance(%q) = %v, want %v", g, labels[i], got[g][i], want[i])
			}
		}
	}
}
