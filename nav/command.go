package nav

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrClosed         = errors.New("navigation closed")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a logical navigation request, independent of the input device
// that produced it.
type Command uint8

const (
	CmdNone Command = iota
	CmdPanUp
	CmdPanDown
	CmdPanLeft
	CmdPanRight
	CmdZoomIn
	CmdZoomOut
	CmdZoomToRect
	CmdIncreasePrecision
	CmdDecreasePrecision
	CmdCycleColor
	CmdReset
	CmdSave
	CmdClose
	CmdPointer
	CmdGoto
)

var commandNames = [...]string{
	CmdNone:              "none",
	CmdPanUp:             "pan-up",
	CmdPanDown:           "pan-down",
	CmdPanLeft:           "pan-left",
	CmdPanRight:          "pan-right",
	CmdZoomIn:            "zoom-in",
	CmdZoomOut:           "zoom-out",
	CmdZoomToRect:        "zoom-rect",
	CmdIncreasePrecision: "precision-up",
	CmdDecreasePrecision: "precision-down",
	CmdCycleColor:        "color",
	CmdReset:             "reset",
	CmdSave:              "save",
	CmdClose:             "close",
	CmdPointer:           "pointer",
	CmdGoto:              "goto",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand is the inverse of Command.String.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if name == s {
			return Command(i), nil
		}
	}
	return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

func (c Command) MarshalText() ([]byte, error) {
	if int(c) >= len(commandNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, uint8(c))
	}
	return []byte(commandNames[c]), nil
}

func (c *Command) UnmarshalText(b []byte) error {
	cmd, err := ParseCommand(string(b))
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}

// Event is one navigation request.
type Event struct {
	Cmd Command

	// Pointer is the pointer position in image pixels. Used by CmdPointer
	// and CmdZoomToRect.
	Pointer image.Point

	// Landmark names the region for CmdGoto.
	Landmark string
}
