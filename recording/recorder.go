// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"image/color"

	"github.com/gogpu/flamegraph/surface"
)

// ErrUnbalancedClip is returned by Playback when a recording pops more clips
// than it pushed.
var ErrUnbalancedClip = errors.New("recording: unbalanced clip")

// Recorder is a surface.Surface that records commands instead of drawing.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	palette       *Palette
	clipDepth     int
	closed        bool
}

var _ surface.ClippableSurface = (*Recorder)(nil)

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    max(width, 1),
		height:   max(height, 1),
		commands: make([]Command, 0, 256),
		palette:  NewPalette(),
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() int { return r.width }

// Height returns the canvas height.
func (r *Recorder) Height() int { return r.height }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Clear records a full-canvas fill. Earlier commands are kept; they are
// simply painted over on playback.
func (r *Recorder) Clear(c color.Color) {
	r.record(ClearCommand{Color: r.palette.Add(c)})
}

// FillRect records a filled rectangle. Empty rectangles are dropped.
func (r *Recorder) FillRect(rect surface.Rect, c color.Color) {
	if rect.Empty() {
		return
	}
	r.record(FillRectCommand{Rect: rect, Color: r.palette.Add(c)})
}

// StrokeRect records a rectangle outline.
func (r *Recorder) StrokeRect(rect surface.Rect, style surface.StrokeStyle) {
	if style.Width <= 0 || style.Color == nil {
		return
	}
	r.record(StrokeRectCommand{Rect: rect, Color: r.palette.Add(style.Color), Width: style.Width})
}

// Line records a segment.
func (r *Recorder) Line(x0, y0, x1, y1 float64, style surface.StrokeStyle) {
	if style.Width <= 0 || style.Color == nil {
		return
	}
	r.record(LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: r.palette.Add(style.Color), Width: style.Width})
}

// DrawText records a text run.
func (r *Recorder) DrawText(s string, x, y float64, style surface.TextStyle) {
	if s == "" || style.Color == nil {
		return
	}
	size := style.Size
	if size <= 0 {
		size = surface.DefaultTextSize
	}
	r.record(DrawTextCommand{Text: s, X: x, Y: y, Color: r.palette.Add(style.Color), Size: size, Align: style.Align})
}

// PushClip records a clip push.
func (r *Recorder) PushClip(rect surface.Rect) {
	r.clipDepth++
	r.record(PushClipCommand{Rect: rect})
}

// PopClip records a clip pop. Pops without a matching push are ignored.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		return
	}
	r.clipDepth--
	r.record(PopClipCommand{})
}

// Flush is a no-op.
func (r *Recorder) Flush() error { return nil }

// Close stops recording. Further drawing is ignored.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Reset drops all commands and colors so the recorder can be reused.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.palette = NewPalette()
	r.clipDepth = 0
	r.closed = false
}

// Finish returns the recording so far. Open clips are closed. The recorder
// may keep recording; later commands do not affect the returned Recording.
func (r *Recorder) Finish() *Recording {
	cmds := make([]Command, len(r.commands), len(r.commands)+r.clipDepth)
	copy(cmds, r.commands)
	for range r.clipDepth {
		cmds = append(cmds, PopClipCommand{})
	}
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
		palette:  r.palette.clone(),
	}
}

func (r *Recorder) record(c Command) {
	if r.closed {
		return
	}
	r.commands = append(r.commands, c)
}

// Recording is an immutable list of commands with their palette.
type Recording struct {
	width, height int
	commands      []Command
	palette       *Palette
}

// Width returns the canvas width.
func (r *Recording) Width() int { return r.width }

// Height returns the canvas height.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands. Callers must not modify them.
func (r *Recording) Commands() []Command { return r.commands }

// Palette returns the color palette.
func (r *Recording) Palette() *Palette { return r.palette }

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	depth := 0
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear(r.palette.Get(c.Color))
		case FillRectCommand:
			backend.FillRect(c.Rect, r.palette.Get(c.Color))
		case StrokeRectCommand:
			backend.StrokeRect(c.Rect, r.palette.Get(c.Color), c.Width)
		case LineCommand:
			backend.Line(c.X0, c.Y0, c.X1, c.Y1, r.palette.Get(c.Color), c.Width)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, r.palette.Get(c.Color), c.Size, c.Align)
		case PushClipCommand:
			depth++
			backend.PushClip(c.Rect)
		case PopClipCommand:
			if depth == 0 {
				return ErrUnbalancedClip
			}
			depth--
			backend.PopClip()
		}
	}

	return backend.End()
}

// PlaybackTo replays the recording onto a surface.
func (r *Recording) PlaybackTo(s surface.Surface) error {
	return r.Playback(SurfaceBackend{Surface: s})
}
