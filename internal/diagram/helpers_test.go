package diagram

import (
	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/engine"
	"termsketch/internal/geom"
)

func mouse(kind engine.MouseKind, b engine.MouseButton, x, y int) engine.MouseEvent {
	return engine.MouseEvent{Kind: kind, Button: b, Pos: geom.Pt(x, y)}
}

func down(x, y int) engine.Event { return mouse(engine.MouseDown, engine.ButtonLeft, x, y) }
func up(x, y int) engine.Event   { return mouse(engine.MouseUp, engine.ButtonLeft, x, y) }
func move(x, y int) engine.Event { return mouse(engine.MouseMove, engine.ButtonNone, x, y) }

func keyOf(t tea.KeyType) engine.KeyEvent {
	return engine.KeyEvent{Pressed: true, Key: tea.Key{Type: t}}
}

func char(r rune) engine.KeyEvent {
	return engine.KeyEvent{Pressed: true, Key: tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}}
}

func typed(s string) []engine.Event {
	var evs []engine.Event
	for _, r := range s {
		evs = append(evs, char(r))
	}
	return evs
}

// step runs one frame.
func step(a *App, evs ...engine.Event) {
	a.Update(&engine.EventGroup{Events: evs}, nil)
}

// click presses and releases in two frames.
func click(a *App, x, y int) {
	step(a, down(x, y))
	step(a, up(x, y))
}

// drawRect draws a rectangle with the rect tool and returns it.
func drawRect(a *App, x0, y0, x1, y1 int) *RectObject {
	a.intent = IntentRect
	step(a, down(x0, y0))
	step(a, move(x1, y1))
	step(a, up(x1, y1))
	var last *RectObject
	for _, r := range a.Scene().Rects.All() {
		last = r
	}
	return last
}

func onlyLine(a *App) *LineObject {
	for _, l := range a.Scene().Lines.All() {
		return l
	}
	return nil
}

func onlyText(a *App) *TextObject {
	for _, t := range a.Scene().Texts.All() {
		return t
	}
	return nil
}
