package diagram

import (
	"fmt"
	"strings"

	"termsketch/internal/geom"
)

// Intent is the drawing tool used when a click hits nothing.
type Intent int

const (
	IntentNone Intent = iota
	IntentRect
	IntentLine
	IntentText
	IntentFreehand
)

func (i Intent) String() string {
	switch i {
	case IntentRect:
		return "Rect"
	case IntentLine:
		return "Line"
	case IntentText:
		return "Text"
	case IntentFreehand:
		return "Freehand"
	default:
		return "None"
	}
}

// ParseIntent accepts the tool names used in the config file.
func ParseIntent(s string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rectangle":
		return IntentRect, nil
	case "line":
		return IntentLine, nil
	case "text":
		return IntentText, nil
	case "freehand", "pen":
		return IntentFreehand, nil
	case "none", "":
		return IntentNone, nil
	}
	return IntentNone, fmt.Errorf("unknown intent %q", s)
}

// Action is an in-progress mouse or keyboard operation.
type Action interface {
	Name() string
}

type DrawRect struct{ Start geom.Point }

type DrawLine struct{ Start geom.Point }

type DrawText struct {
	Start  geom.Point
	Editor *TextEditor
	Color  int
}

type DragRectangle struct {
	ID     ID
	Offset geom.Delta
}

type ResizeRectangle struct {
	ID    ID
	Fixed geom.Point
}

type DragLineEndpoint struct {
	ID  ID
	End Endpoint
}

type DragText struct{ ID ID }

type DrawFreehand struct{ Points []geom.Point }

type BendLine struct{ ID ID }

func (*DrawRect) Name() string        { return "rect" }
func (*DrawLine) Name() string        { return "line" }
func (*DrawText) Name() string        { return "text" }
func (*DragRectangle) Name() string   { return "drag rectangle" }
func (*ResizeRectangle) Name() string { return "resize rectangle" }
func (*DragText) Name() string        { return "drag text" }
func (*DrawFreehand) Name() string    { return "freehand" }
func (*BendLine) Name() string        { return "bend line" }

func (a *DragLineEndpoint) Name() string {
	return "drag line " + a.End.String()
}

// actionSlot holds at most one Action. Completion handlers consume it with
// Take.
type actionSlot struct {
	cur Action
}

func (s *actionSlot) Active() bool {
	return s.cur != nil
}

func (s *actionSlot) Current() Action {
	return s.cur
}

// Start fills the slot. It refuses when an action is already active.
func (s *actionSlot) Start(a Action) bool {
	if s.cur != nil {
		return false
	}
	s.cur = a
	return true
}

func (s *actionSlot) Take() Action {
	a := s.cur
	s.cur = nil
	return a
}
