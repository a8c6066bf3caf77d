package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/katalvlaran/fognav/mission"
)

// Event styles for the echo console.
var (
	styleMove     = color.Style{color.FgGray}
	styleBlocked  = color.Style{color.FgRed, color.OpBold}
	styleReached  = color.Style{color.FgGreen, color.OpBold}
	styleChosen   = color.Style{color.FgMagenta, color.OpBold}
	styleMismatch = color.Style{color.FgYellow}
)

// console mirrors events to a terminal.
type console struct {
	w       io.Writer
	colored bool
}

func newConsole(w io.Writer, colored bool) *console {
	return &console{w: w, colored: colored}
}

// styleFor picks the style of an event kind.
func styleFor(k mission.EventKind) color.Style {
	switch k {
	case mission.PathBlocked:
		return styleBlocked
	case mission.ObjectiveReached:
		return styleReached
	case mission.OptionChosen:
		return styleChosen
	default:
		return styleMove
	}
}

func (c *console) paint(s color.Style, text string) string {
	if !c.colored {
		return text
	}
	return s.Sprint(text)
}

// Event prints one event line.
func (c *console) Event(ev mission.Event) error {
	_, err := fmt.Fprintln(c.w, c.paint(styleFor(ev.Kind), ev.String()))
	return err
}

// Mismatch prints one output difference.
func (c *console) Mismatch(line string) {
	fmt.Fprintln(c.w, c.paint(styleMismatch, line))
}
