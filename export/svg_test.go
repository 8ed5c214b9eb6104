// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/flamegraph/recording"
	"github.com/gogpu/flamegraph/surface"
)

func sampleRecording() *recording.Recording {
	r := recording.NewRecorder(200, 100)
	r.Clear(color.White)
	r.PushClip(surface.Rect{X: 0, Y: 0, W: 200, H: 50})
	r.FillRect(surface.Rect{X: 10, Y: 10, W: 0.2, H: 18}, color.RGBA{200, 60, 30, 255})
	r.DrawText("main & <init>", 12, 24, surface.DefaultTextStyle().WithAlign(surface.AlignCenter))
	r.PopClip()
	r.Line(0, 50, 200, 50, surface.DefaultStrokeStyle())
	return r.Finish()
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, sampleRecording()); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`width="200"`,
		`clip-path="url(#clip1)"`,
		`fill:rgb(200,60,30)`,
		`text-anchor:middle`,
		`main &amp; &lt;init&gt;`,
		`<line`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg output missing %q", want)
		}
	}

	// The document must be well-formed XML.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("invalid xml: %v", err)
			}
			break
		}
	}
}

func TestSnapKeepsThinRects(t *testing.T) {
	tests := []struct {
		r       surface.Rect
		x, w, h int
	}{
		{surface.Rect{X: 10.2, W: 0.2, H: 5}, 10, 1, 5},
		{surface.Rect{X: 1.6, W: 3.8, H: 5}, 2, 3, 5},
		{surface.Rect{X: 0, W: 0, H: 5}, 0, 0, 5},
	}
	for _, tt := range tests {
		x, _, w, h := snap(tt.r)
		if x != tt.x || w != tt.w || h != tt.h {
			t.Errorf("snap(%+v) = x %d w %d h %d, want %d %d %d", tt.r, x, w, h, tt.x, tt.w, tt.h)
		}
	}
}

func TestRegisteredBackend(t *testing.T) {
	b, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatalf("NewBackend(svg) error = %v", err)
	}
	sb := b.(*SVGBackend)
	if _, err := sb.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotEnded) {
		t.Errorf("WriteTo() before End = %v, want ErrNotEnded", err)
	}
	if err := sampleRecording().Playback(sb); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(sb.Bytes()), []byte("<?xml")) {
		t.Errorf("output does not start with an xml declaration: %.40s", sb.Bytes())
	}
}

func TestFillOpacity(t *testing.T) {
	if got := fill(color.RGBA{255, 0, 0, 255}); strings.Contains(got, "opacity") {
		t.Errorf("opaque fill = %q, want no opacity", got)
	}
	if got := fill(color.RGBA{0, 0, 0, 0x80}); !strings.Contains(got, "fill-opacity:0.502") {
		t.Errorf("translucent fill = %q", got)
	}
}
