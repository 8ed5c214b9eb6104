// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/flamegraph/surface"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear CommandType = iota
	CmdFillRect
	CmdStrokeRect
	CmdLine
	CmdDrawText
	CmdPushClip
	CmdPopClip
)

var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
	CmdLine:       "Line",
	CmdDrawText:   "DrawText",
	CmdPushClip:   "PushClip",
	CmdPopClip:    "PopClip",
}

// String returns the command name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded drawing operation.
type Command interface {
	Type() CommandType
}

// ClearCommand fills the whole canvas.
type ClearCommand struct {
	Color ColorRef
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  surface.Rect
	Color ColorRef
}

// StrokeRectCommand outlines a rectangle.
type StrokeRectCommand struct {
	Rect  surface.Rect
	Color ColorRef
	Width float64
}

// LineCommand draws a segment.
type LineCommand struct {
	X0, Y0, X1, Y1 float64
	Color          ColorRef
	Width          float64
}

// DrawTextCommand draws a single line of text with its baseline at Y.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Color ColorRef
	Size  float64
	Align surface.Align
}

// PushClipCommand intersects the clip with a rectangle.
type PushClipCommand struct {
	Rect surface.Rect
}

// PopClipCommand restores the previous clip.
type PopClipCommand struct{}

func (ClearCommand) Type() CommandType      { return CmdClear }
func (FillRectCommand) Type() CommandType   { return CmdFillRect }
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }
func (LineCommand) Type() CommandType       { return CmdLine }
func (DrawTextCommand) Type() CommandType   { return CmdDrawText }
func (PushClipCommand) Type() CommandType   { return CmdPushClip }
func (PopClipCommand) Type() CommandType    { return CmdPopClip }
