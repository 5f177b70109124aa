package counter

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/engine"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFPS(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	a := New(WithClock(clock.now))
	a.Reset(nil)

	empty := &engine.EventGroup{}
	for range 29 {
		a.Update(empty, nil)
	}
	if a.FPS() != 0 {
		t.Fatalf("fps published early: %d", a.FPS())
	}

	clock.t = time.Unix(101, 0)
	a.Update(empty, nil)
	if a.FPS() != 30 {
		t.Errorf("fps = %d, want 30", a.FPS())
	}

	// A stall averages over the elapsed seconds.
	for range 9 {
		a.Update(empty, nil)
	}
	clock.t = time.Unix(103, 0)
	a.Update(empty, nil)
	if a.FPS() != 5 {
		t.Errorf("fps after stall = %d, want 5", a.FPS())
	}
}

func TestDrawShowsLastKey(t *testing.T) {
	a := New(WithClock(func() time.Time { return time.Unix(0, 0) }))
	a.Update(&engine.EventGroup{Events: []engine.Event{
		engine.KeyEvent{Pressed: true, Key: tea.Key{Type: tea.KeyRunes, Runes: []rune("q")}},
		engine.KeyEvent{Pressed: true, Key: tea.Key{Type: tea.KeyRunes, Runes: []rune("w")}},
	}}, nil)

	gfx := engine.NewGfx(20, 5)
	a.Draw(gfx)
	rows := gfx.Plain()
	if !strings.Contains(rows[2], "FPS: 0") {
		t.Errorf("row 2 = %q", rows[2])
	}
	if !strings.Contains(rows[3], "Key: q") {
		t.Errorf("row 3 = %q", rows[3])
	}
}
