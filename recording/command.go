package recording

import (
	"image/color"

	"github.com/gogpu/wireframe"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear      CommandType = iota // Fill the canvas
	CmdStrokeLine                    // Draw one line
	CmdDrawText                      // Draw a label
)

var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdStrokeLine: "StrokeLine",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// ClearCommand fills the canvas with a color.
type ClearCommand struct {
	Color color.NRGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// StrokeLineCommand draws one line in canvas coordinates.
type StrokeLineCommand struct {
	A, B   wireframe.Point
	Stroke Stroke
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// DrawTextCommand draws a label with its baseline origin at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Color color.NRGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
