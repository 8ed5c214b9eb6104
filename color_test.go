// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   color.RGBA
		wantOK bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"FF8000", color.RGBA{255, 128, 0, 255}, true},
		{"#f80", color.RGBA{255, 136, 0, 255}, true},
		{"#f808", color.RGBA{255, 136, 0, 136}, true},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}, true},
		{" #000 ", color.RGBA{0, 0, 0, 255}, true},
		{"", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"red", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseColor(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMix(t *testing.T) {
	c := color.RGBA{0, 100, 200, 255}
	if got := mix(c, colorWhite, 0); got != c {
		t.Errorf("mix(t=0) = %v", got)
	}
	if got := mix(c, colorWhite, 1); got != colorWhite {
		t.Errorf("mix(t=1) = %v", got)
	}
	if got := mix(c, colorWhite, 0.5); got.R != 128 || got.A != 255 {
		t.Errorf("mix(t=0.5) = %v", got)
	}
}
