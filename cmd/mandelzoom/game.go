package main

import (
	"errors"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marben/mandelzoom/nav"
)

type binding struct {
	key ebiten.Key
	cmd nav.Command
}

// keymap holds the commands triggered when a key is released, in the order
// they are handled within one tick.
var keymap = []binding{
	{ebiten.KeyArrowUp, nav.CmdPanUp},
	{ebiten.KeyArrowDown, nav.CmdPanDown},
	{ebiten.KeyArrowLeft, nav.CmdPanLeft},
	{ebiten.KeyArrowRight, nav.CmdPanRight},
	{ebiten.KeyEqual, nav.CmdZoomIn},
	{ebiten.KeyNumpadAdd, nav.CmdZoomIn},
	{ebiten.KeyDigit1, nav.CmdDecreasePrecision},
	{ebiten.KeyDigit2, nav.CmdIncreasePrecision},
	{ebiten.KeyDigit0, nav.CmdCycleColor},
	{ebiten.KeyS, nav.CmdSave},
	{ebiten.KeyO, nav.CmdReset},
	{ebiten.KeyEscape, nav.CmdClose},
}

// input is the slice of ebiten's input state the game reads each tick.
type input interface {
	KeyReleased(ebiten.Key) bool
	LeftClicked() bool
	RightHeld() bool
	Cursor() image.Point
}

type ebitenInput struct{}

func (ebitenInput) KeyReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenInput) LeftClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
func (ebitenInput) RightHeld() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) }
func (ebitenInput) Cursor() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

// Game implements ebiten.Game on top of a navigation controller.
type Game struct {
	ctrl   *nav.Controller
	in     input
	screen *ebiten.Image
	dirty  bool
}

func NewGame(ctrl *nav.Controller) *Game {
	size := ctrl.State().Size()
	return &Game{
		ctrl:   ctrl,
		in:     ebitenInput{},
		screen: ebiten.NewImage(size.X, size.Y),
		dirty:  true,
	}
}

// events translates this tick's input into navigation events. Pointer moves
// come first so a click zooms around the position it happened at.
func (g *Game) events() []nav.Event {
	var evs []nav.Event
	p := g.in.Cursor()
	if p != g.ctrl.Pointer() {
		evs = append(evs, nav.Event{Cmd: nav.CmdPointer, Pointer: p})
	}
	if g.in.LeftClicked() {
		evs = append(evs, nav.Event{Cmd: nav.CmdZoomToRect, Pointer: p})
	}
	if g.in.RightHeld() {
		evs = append(evs, nav.Event{Cmd: nav.CmdZoomOut, Pointer: p})
	}
	for _, b := range keymap {
		if g.in.KeyReleased(b.key) {
			evs = append(evs, nav.Event{Cmd: b.cmd, Pointer: p})
		}
	}
	return evs
}

// step handles every event of one tick. It reports ebiten.Termination once
// the session is closed.
func (g *Game) step() error {
	for _, ev := range g.events() {
		err := g.ctrl.Handle(ev)
		switch {
		case errors.Is(err, nav.ErrClosed):
			return ebiten.Termination
		case err != nil:
			// a failed snapshot must not end the session
			log.Printf("%s: %v", ev.Cmd, err)
		}
		g.dirty = true
	}
	return nil
}

func (g *Game) Update() error {
	if err := g.step(); err != nil {
		return err
	}
	if !g.dirty {
		return nil
	}
	frame, err := g.ctrl.Frame()
	if err != nil {
		return err
	}
	g.screen.WritePixels(frame.Pix)
	g.dirty = false
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.screen, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.ctrl.State().Size()
	return size.X, size.Y
}
