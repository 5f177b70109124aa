package engine

import (
	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/geom"
)

// Event is either a MouseEvent or a KeyEvent.
type Event interface {
	event()
}

type MouseKind int

const (
	MouseMove MouseKind = iota
	MouseDown
	MouseUp
)

func (k MouseKind) String() string {
	switch k {
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	default:
		return "move"
	}
}

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// MouseEvent is a pointer press, release or motion at a cell.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
	Pos    geom.Point
}

// KeyEvent wraps a bubbletea key so bindings from bubbles/key match it
// directly through String.
type KeyEvent struct {
	Pressed bool
	tea.Key
}

func (MouseEvent) event() {}
func (KeyEvent) event()   {}

// Char returns the typed rune for printable single-rune keys.
func (k KeyEvent) Char() (rune, bool) {
	switch {
	case k.Type == tea.KeySpace:
		return ' ', true
	case k.Type == tea.KeyRunes && len(k.Runes) == 1 && !k.Paste:
		return k.Runes[0], true
	}
	return 0, false
}

// IsEnterWithoutAlt reports a plain Enter. Alt+Enter is a line break.
func (k KeyEvent) IsEnterWithoutAlt() bool {
	return k.Type == tea.KeyEnter && !k.Alt
}

// EventGroup is the batch of input collected between two frames.
type EventGroup struct {
	Events []Event
}

// LastMousePos returns the position of the newest pointer event.
func (g *EventGroup) LastMousePos() (geom.Point, bool) {
	for i := len(g.Events) - 1; i >= 0; i-- {
		if m, ok := g.Events[i].(MouseEvent); ok {
			return m.Pos, true
		}
	}
	return geom.Point{}, false
}

// FirstPressedChar returns the first typed rune of the batch.
func (g *EventGroup) FirstPressedChar() (rune, bool) {
	for _, e := range g.Events {
		if k, ok := e.(KeyEvent); ok && k.Pressed {
			if r, ok := k.Char(); ok {
				return r, true
			}
		}
	}
	return 0, false
}

// DidPressKey reports whether any key of the given type was pressed.
func (g *EventGroup) DidPressKey(t tea.KeyType) bool {
	for _, e := range g.Events {
		if k, ok := e.(KeyEvent); ok && k.Pressed && k.Type == t {
			return true
		}
	}
	return false
}

func mouseButton(b tea.MouseButton) MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonLeft
	case tea.MouseButtonMiddle:
		return ButtonMiddle
	case tea.MouseButtonRight:
		return ButtonRight
	default:
		return ButtonNone
	}
}
