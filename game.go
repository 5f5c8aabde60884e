package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"album/internal/canvas"
	"album/internal/viewport"
)

// inputState holds the polled state of inputs for a single frame.
type inputState struct {
	Mouse image.Point
	Click bool // Left button just pressed
	Held  bool // Left button down
}

func pollInput() inputState {
	x, y := ebiten.CursorPosition()
	return inputState{
		Mouse: image.Pt(x, y),
		Click: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Held:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Game hosts the viewport controller in the ebiten event loop.
type Game struct {
	ctrl   *viewport.Controller
	canvas *canvas.Canvas
	w, h   int

	// interval is the time between animation ticks and
	// next is when the next tick is due. next is zero
	// when no animation is running.
	interval time.Duration
	next     time.Time

	mouse image.Point
	hint  viewport.Affordance

	now       func() time.Time
	setCursor func(viewport.Affordance)
}

func NewGame(ctrl *viewport.Controller, c *canvas.Canvas, interval time.Duration) *Game {
	w, h := c.Size()
	g := newGame(ctrl, w, h, interval)
	g.canvas = c
	return g
}

func newGame(ctrl *viewport.Controller, w, h int, interval time.Duration) *Game {
	return &Game{
		ctrl:      ctrl,
		w:         w,
		h:         h,
		interval:  interval,
		mouse:     image.Pt(-1, -1),
		now:       time.Now,
		setCursor: setCursor,
	}
}

func setCursor(a viewport.Affordance) {
	if a == viewport.Neutral {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeEWResize)
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.handle(pollInput(), g.now())
	return nil
}

func (g *Game) handle(in inputState, now time.Time) {
	moved := in.Mouse != g.mouse
	g.mouse = in.Mouse

	// The first step of an animation is taken immediately.
	refresh := false
	switch {
	case in.Click && g.ctrl.OnClick(in.Mouse.X, in.Mouse.Y):
		g.step(now)
		refresh = true
	case !g.next.IsZero() && !now.Before(g.next):
		g.step(now)
	}

	if refresh || (moved && !in.Held) {
		hint := g.ctrl.OnMove(in.Mouse.X, in.Mouse.Y)
		if hint != g.hint {
			g.hint = hint
			g.setCursor(hint)
		}
	}
}

// step runs one animation tick and schedules the next if needed.
func (g *Game) step(now time.Time) {
	if g.ctrl.Tick() {
		g.next = now.Add(g.interval)
		return
	}
	g.next = time.Time{}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen, g.hint)
}

// Layout: the window is always one slot.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
