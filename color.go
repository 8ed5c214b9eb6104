// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package flamegraph

import (
	"image/color"
	"strings"
)

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". The leading
// '#' is optional. It reports false for anything else.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var v [8]uint8
	for i := 0; i < len(s) && i < len(v); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return color.RGBA{}, false
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return color.RGBA{v[0] * 17, v[1] * 17, v[2] * 17, 255}, true
	case 4:
		return color.RGBA{v[0] * 17, v[1] * 17, v[2] * 17, v[3] * 17}, true
	case 6:
		return color.RGBA{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], 255}, true
	case 8:
		return color.RGBA{v[0]<<4 | v[1], v[2]<<4 | v[3], v[4]<<4 | v[5], v[6]<<4 | v[7]}, true
	default:
		return color.RGBA{}, false
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// mix blends c toward target by t in [0, 1]. Alpha is kept.
func mix(c, target color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{lerp(c.R, target.R), lerp(c.G, target.G), lerp(c.B, target.B), c.A}
}

// Chrome colors.
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorHeader     = color.RGBA{240, 240, 242, 255}
	colorText       = color.RGBA{34, 34, 34, 255}
	colorMuted      = color.RGBA{110, 110, 118, 255}
	colorGrid       = color.RGBA{228, 228, 232, 255}
	colorHover      = color.RGBA{20, 20, 20, 255}
	colorSelection  = color.RGBA{0, 102, 204, 255}
	colorKnob       = color.RGBA{180, 180, 188, 255}
	colorWhite      = color.RGBA{255, 255, 255, 255}
)
