package main

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/nav"
	"github.com/marben/mandelzoom/view"
)

// halfBlock paints its foreground over the upper half of a cell.
const halfBlock = '▀'

// runeKeys maps typed characters to commands. Terminals report presses only,
// so commands fire on press.
var runeKeys = map[rune]nav.Command{
	'+': nav.CmdZoomIn,
	'=': nav.CmdZoomIn,
	'1': nav.CmdDecreasePrecision,
	'2': nav.CmdIncreasePrecision,
	'0': nav.CmdCycleColor,
	's': nav.CmdSave,
	'S': nav.CmdSave,
	'o': nav.CmdReset,
	'O': nav.CmdReset,
	'q': nav.CmdClose,
}

var specialKeys = map[tcell.Key]nav.Command{
	tcell.KeyUp:     nav.CmdPanUp,
	tcell.KeyDown:   nav.CmdPanDown,
	tcell.KeyLeft:   nav.CmdPanLeft,
	tcell.KeyRight:  nav.CmdPanRight,
	tcell.KeyEscape: nav.CmdClose,
	tcell.KeyCtrlC:  nav.CmdClose,
}

func keyCommand(ev *tcell.EventKey) nav.Command {
	if ev.Key() == tcell.KeyRune {
		return runeKeys[ev.Rune()]
	}
	return specialKeys[ev.Key()]
}

type term struct {
	screen  tcell.Screen
	cfg     mandel.Config
	ctrl    *nav.Controller
	buttons tcell.ButtonMask
	status  string
}

func newTerm(screen tcell.Screen, cfg mandel.Config) (*term, error) {
	t := &term{screen: screen, cfg: cfg}
	if err := t.resize(); err != nil {
		return nil, err
	}
	if cfg.Landmark != "" {
		if err := t.ctrl.Handle(nav.Event{Cmd: nav.CmdGoto, Landmark: cfg.Landmark}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// resize rebuilds the controller for the current terminal size, keeping the
// visible region and colour scheme.
func (t *term) resize() error {
	cols, rows := t.screen.Size()
	state, err := view.New(max(cols, 2), 2*max(rows, 1), t.cfg.Xmin, t.cfg.Xmax)
	if err != nil {
		return err
	}
	if t.ctrl != nil {
		old := t.ctrl.State()
		state = state.GoTo(old.Region())
		for state.Scheme() != old.Scheme() {
			state = state.CycleScheme()
		}
	}
	ctrl, err := nav.New(state, nav.WithFontSize(0), nav.WithSnapshotPath(t.cfg.SnapshotPath))
	if err != nil {
		return err
	}
	t.ctrl = ctrl
	return nil
}

// event translates one tcell event. ok is false for events that do not
// concern navigation.
func (t *term) event(ev tcell.Event) (nav.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := keyCommand(ev)
		return nav.Event{Cmd: cmd, Pointer: t.ctrl.Pointer()}, cmd != nav.CmdNone
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := t.ctrl.Pointer()
		p.X, p.Y = x, 2*y
		pressed := ev.Buttons() &^ t.buttons
		t.buttons = ev.Buttons()
		switch {
		case pressed&tcell.Button1 != 0:
			return nav.Event{Cmd: nav.CmdZoomToRect, Pointer: p}, true
		case ev.Buttons()&tcell.Button2 != 0:
			return nav.Event{Cmd: nav.CmdZoomOut, Pointer: p}, true
		}
		return nav.Event{Cmd: nav.CmdPointer, Pointer: p}, true
	}
	return nav.Event{}, false
}

// handle applies one tcell event. It returns nav.ErrClosed once the user quits.
func (t *term) handle(ev tcell.Event) error {
	if _, ok := ev.(*tcell.EventResize); ok {
		t.screen.Sync()
		return t.resize()
	}
	nev, ok := t.event(ev)
	if !ok {
		return nil
	}
	err := t.ctrl.Handle(nev)
	switch {
	case errors.Is(err, nav.ErrClosed):
		return err
	case err != nil:
		t.status = fmt.Sprintf("%s: %v", nev.Cmd, err)
	default:
		t.status = ""
	}
	return nil
}

func (t *term) loop() error {
	for {
		if err := t.draw(); err != nil {
			return err
		}
		err := t.handle(t.screen.PollEvent())
		if errors.Is(err, nav.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// draw paints the frame two pixel rows per cell and writes the labels over
// the top rows.
func (t *term) draw() error {
	frame, err := t.ctrl.Frame()
	if err != nil {
		return err
	}
	b := frame.Bounds()
	for y := 0; 2*y < b.Dy(); y++ {
		for x := range b.Dx() {
			top := frame.RGBAAt(b.Min.X+x, b.Min.Y+2*y)
			bottom := top
			if 2*y+1 < b.Dy() {
				bottom = frame.RGBAAt(b.Min.X+x, b.Min.Y+2*y+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	zoom, iters := t.ctrl.Labels()
	c := t.ctrl.State().Scheme().Contrast()
	r, g, bl := c.RGB255()
	label := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(bl))).Background(tcell.ColorBlack)
	t.text(0, zoom, label)
	t.text(1, iters, label)
	if t.status != "" {
		t.text(2, t.status, label)
	}
	t.screen.Show()
	return nil
}

func (t *term) text(row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(i, row, r, nil, style)
	}
}
