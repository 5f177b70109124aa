// Package counter is a sample app that shows how many frames the engine
// actually runs per second.
package counter

import (
	"fmt"
	"time"

	"termsketch/internal/engine"
)

type App struct {
	now     func() time.Time
	frames  int64
	fps     int64
	stamp   int64
	lastKey rune
}

type Option func(*App)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func New(opts ...Option) *App {
	a := &App{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	a.stamp = a.now().Unix()
	return a
}

func (a *App) FPS() int64 { return a.fps }

func (a *App) Reset(*engine.Gfx) {
	a.frames = 0
	a.stamp = a.now().Unix()
}

// Update counts frames until the wall clock second changes, then publishes
// the rate over the elapsed seconds.
func (a *App) Update(events *engine.EventGroup, _ *engine.Gfx) bool {
	if r, ok := events.FirstPressedChar(); ok {
		a.lastKey = r
	}

	sec := a.now().Unix()
	if sec > a.stamp {
		a.fps = (a.frames + 1) / (sec - a.stamp)
		a.frames = 0
		a.stamp = sec
	} else {
		a.frames++
	}
	return true
}

func (a *App) Draw(gfx *engine.Gfx) {
	gfx.ClearScreen()
	x, y := gfx.Width/2-4, gfx.Height/2
	gfx.DrawText(fmt.Sprintf("FPS: %d", a.fps), x, y, nil)
	if a.lastKey != 0 {
		gfx.DrawText(fmt.Sprintf("Key: %c", a.lastKey), x, y+1, nil)
	}
	gfx.DrawStatus(" esc quit")
}
