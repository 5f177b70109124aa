package diagram

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"termsketch/internal/engine"
	"termsketch/internal/geom"
)

// App is the diagram editor. It implements engine.App.
type App struct {
	scene     *Scene
	intent    Intent
	color     int
	action    actionSlot
	pointer   geom.Point
	clipboard ClipboardReader
	keys      keyMap
	help      help.Model
}

type Option func(*App)

func WithIntent(i Intent) Option {
	return func(a *App) { a.intent = i }
}

// WithColor selects the initial palette entry. Out of range values are
// ignored.
func WithColor(c int) Option {
	return func(a *App) {
		if c >= 0 && c < len(palette) {
			a.color = c
		}
	}
}

func WithClipboard(read ClipboardReader) Option {
	return func(a *App) { a.clipboard = read }
}

func New(opts ...Option) *App {
	h := help.New()
	h.Styles = help.Styles{}
	a := &App{
		scene:     NewScene(),
		intent:    IntentRect,
		color:     defaultColor,
		clipboard: systemClipboard,
		keys:      defaultKeyMap(),
		help:      h,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Scene() *Scene       { return a.scene }
func (a *App) Intent() Intent      { return a.intent }
func (a *App) Color() int          { return a.color }
func (a *App) Pointer() geom.Point { return a.pointer }

// Action returns the in-progress action or nil.
func (a *App) Action() Action {
	return a.action.Current()
}

// Reset is a no-op: the scene does not depend on the screen size.
func (a *App) Reset(*engine.Gfx) {}

// Update dispatches one frame of input in order, then applies the active
// action at the final pointer position and re-snaps anchored objects.
func (a *App) Update(events *engine.EventGroup, _ *engine.Gfx) bool {
	for _, ev := range events.Events {
		switch ev := ev.(type) {
		case engine.MouseEvent:
			a.pointer = ev.Pos
			a.onMouse(ev)
			a.track()
		case engine.KeyEvent:
			if ev.Pressed {
				a.onKey(ev)
			}
		}
	}

	a.track()
	a.scene.FollowAnchors(a.draggedText())
	return true
}

func (a *App) onMouse(ev engine.MouseEvent) {
	switch {
	case ev.Kind == engine.MouseDown && ev.Button == engine.ButtonLeft:
		a.onLeftDown(ev.Pos)
	case ev.Kind == engine.MouseUp && ev.Button == engine.ButtonLeft:
		a.onLeftUp()
	case ev.Kind == engine.MouseDown && ev.Button == engine.ButtonRight:
		a.onRightDown(ev.Pos)
	case ev.Kind == engine.MouseUp && ev.Button == engine.ButtonRight:
		if _, ok := a.action.Current().(*BendLine); ok {
			a.action.Take()
		}
	}
}

// onLeftDown picks what a click grabs. The first matching rule wins.
func (a *App) onLeftDown(p geom.Point) {
	if a.action.Active() {
		engine.Logger().Warn("pointer down ignored, action in progress",
			"action", a.action.Current().Name(), "pos", p)
		return
	}

	s := a.scene
	if r, ok := s.Rects.Find(func(r *RectObject) bool { return r.IsResizePoint(p) }); ok {
		a.action.Start(&ResizeRectangle{ID: r.ID, Fixed: r.Rect.Start})
		return
	}
	for _, end := range []Endpoint{StartPoint, EndPoint} {
		if l, ok := s.Lines.Find(func(l *LineObject) bool { return l.Point(end) == p }); ok {
			l.SetAnchor(end, 0)
			a.action.Start(&DragLineEndpoint{ID: l.ID, End: end})
			return
		}
	}
	if t, ok := s.Texts.Find(func(t *TextObject) bool { return s.IsTextEditableAt(t, p) }); ok {
		s.Texts.Remove(t.ID)
		a.action.Start(&DrawText{Start: t.Start, Editor: NewTextEditorWithLines(t.Lines), Color: t.Color})
		return
	}
	if r, ok := s.Rects.Find(func(r *RectObject) bool { return r.IsDragPoint(p) }); ok {
		a.action.Start(&DragRectangle{ID: r.ID, Offset: p.Sub(r.Rect.Start)})
		return
	}
	a.startDraw(p)
}

func (a *App) startDraw(p geom.Point) {
	var act Action
	switch a.intent {
	case IntentRect:
		act = &DrawRect{Start: p}
	case IntentLine:
		act = &DrawLine{Start: p}
	case IntentText:
		act = &DrawText{Start: p, Editor: NewTextEditor(), Color: a.color}
	case IntentFreehand:
		act = &DrawFreehand{Points: []geom.Point{p}}
	default:
		engine.Logger().Info("no drawing tool selected", "pos", p)
		return
	}
	if !a.action.Start(act) {
		engine.Logger().Warn("draw ignored, action in progress",
			"action", a.action.Current().Name(), "intent", a.intent)
	}
}

func (a *App) onLeftUp() {
	a.track()
	s := a.scene
	switch act := a.action.Current().(type) {
	case *DrawRect:
		a.action.Take()
		s.AddRect(geom.NewRect(act.Start, a.pointer), a.color)
	case *DrawLine:
		a.action.Take()
		l := s.AddLine(geom.Line{Start: act.Start, End: a.pointer}, a.color)
		s.resolveLineAnchor(l, StartPoint)
		s.resolveLineAnchor(l, EndPoint)
	case *DragLineEndpoint:
		a.action.Take()
		if l, ok := s.Lines.Get(act.ID); ok {
			s.resolveLineAnchor(l, act.End)
		}
	case *DragRectangle, *ResizeRectangle:
		a.action.Take()
	case *DrawFreehand:
		a.action.Take()
		if len(act.Points) > 0 {
			s.AddFreehand(act.Points, a.color)
		}
	}
}

func (a *App) onRightDown(p geom.Point) {
	if a.action.Active() {
		engine.Logger().Warn("bend ignored, action in progress",
			"action", a.action.Current().Name(), "pos", p)
		return
	}
	if l, ok := a.scene.Lines.Find(func(l *LineObject) bool { return l.IsPointOn(p) }); ok {
		a.action.Start(&BendLine{ID: l.ID})
	}
}

// track applies the active action at the current pointer position.
func (a *App) track() {
	s := a.scene
	switch act := a.action.Current().(type) {
	case *DragRectangle:
		if r, ok := s.Rects.Get(act.ID); ok {
			r.Rect.MoveTo(a.pointer.Offset(act.Offset.Neg()))
		}
	case *ResizeRectangle:
		if r, ok := s.Rects.Get(act.ID); ok {
			r.Rect.Resize(act.Fixed, a.pointer)
		}
	case *DragLineEndpoint:
		if l, ok := s.Lines.Get(act.ID); ok {
			l.SetPoint(act.End, a.pointer)
		}
	case *DragText:
		if t, ok := s.Texts.Get(act.ID); ok {
			t.Start = a.pointer
		}
	case *BendLine:
		if l, ok := s.Lines.Get(act.ID); ok {
			p := a.pointer
			l.Bend = &p
		}
	case *DrawFreehand:
		if act.Points[len(act.Points)-1] != a.pointer {
			act.Points = append(act.Points, a.pointer)
		}
	}
}

func (a *App) onKey(k engine.KeyEvent) {
	switch act := a.action.Current().(type) {
	case *DrawText:
		switch {
		case k.IsEnterWithoutAlt():
			a.endTextMode()
		case key.Matches(k, a.keys.Paste):
			a.paste(act.Editor)
		default:
			act.Editor.Edit(k)
		}
		return
	case *DragText:
		if k.IsEnterWithoutAlt() {
			a.endTextDrag()
		}
		return
	}

	switch {
	case key.Matches(k, a.keys.Rect):
		a.intent = IntentRect
	case key.Matches(k, a.keys.Line):
		a.intent = IntentLine
	case key.Matches(k, a.keys.Text):
		a.intent = IntentText
	case key.Matches(k, a.keys.Freehand):
		a.intent = IntentFreehand
	case key.Matches(k, a.keys.Color):
		a.color = int(k.Runes[0] - '0')
	case key.Matches(k, a.keys.Delete):
		if a.scene.DeleteUnderPoint(a.pointer) {
			engine.Logger().Debug("deleted object", "pos", a.pointer)
		}
	case key.Matches(k, a.keys.MoveText):
		a.startTextDrag()
	case key.Matches(k, a.keys.Straight):
		if l, ok := a.scene.Lines.Find(func(l *LineObject) bool { return l.IsPointOn(a.pointer) }); ok {
			l.Bend = nil
		}
	}
}

// endTextMode commits the open text. It must only be reached with a
// DrawText action active.
func (a *App) endTextMode() {
	act, ok := a.action.Current().(*DrawText)
	if !ok {
		panic("diagram: text commit without an open text action")
	}
	a.action.Take()
	s := a.scene
	s.AddText(act.Start, act.Editor.Lines, s.ResolveAnchor(act.Start), act.Color)
}

func (a *App) startTextDrag() {
	t, ok := a.scene.Texts.Find(func(t *TextObject) bool { return a.scene.IsTextAt(t, a.pointer) })
	if !ok {
		return
	}
	if !a.action.Start(&DragText{ID: t.ID}) {
		engine.Logger().Warn("text drag ignored, action in progress",
			"action", a.action.Current().Name())
	}
}

func (a *App) endTextDrag() {
	act := a.action.Take().(*DragText)
	if t, ok := a.scene.Texts.Get(act.ID); ok {
		t.Anchor = a.scene.ResolveAnchor(t.Start)
	}
}

func (a *App) draggedText() ID {
	if act, ok := a.action.Current().(*DragText); ok {
		return act.ID
	}
	return 0
}

func (a *App) paste(ed *TextEditor) {
	text, err := a.clipboard()
	if err != nil {
		engine.Logger().Warn("clipboard read failed", "err", err)
		return
	}
	ed.Insert(cleanClipboardText(text))
}
