// Package pong is a sample app: a ball bounces around the screen and a pad
// on the last row follows the mouse.
package pong

import (
	"termsketch/internal/engine"
)

const pad = "████████"

type vec struct{ x, y int }

type App struct {
	ball vec
	v    vec
	padX int
}

func New() *App {
	return &App{}
}

// Reset centres the ball and the pad.
func (a *App) Reset(gfx *engine.Gfx) {
	a.padX = gfx.Width / 2
	a.ball = vec{gfx.Width / 2, gfx.Height / 2}
	a.v = vec{1, 1}
}

func (a *App) Update(events *engine.EventGroup, gfx *engine.Gfx) bool {
	if p, ok := events.LastMousePos(); ok {
		a.padX = int(p.X)
	}

	next := vec{a.ball.x + a.v.x, a.ball.y + a.v.y}
	if next.x <= 0 || next.x >= gfx.Width {
		a.v.x = -a.v.x
	}
	// The last row holds the pad.
	if next.y <= 0 || next.y >= gfx.Height-1 {
		a.v.y = -a.v.y
	}
	a.ball.x += a.v.x
	a.ball.y += a.v.y
	return true
}

func (a *App) Draw(gfx *engine.Gfx) {
	gfx.ClearScreen()
	gfx.DrawText(pad, a.padX, gfx.Height-1, nil)
	gfx.DrawText("O", a.ball.x, a.ball.y, nil)
}
