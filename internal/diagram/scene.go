package diagram

import "termsketch/internal/geom"

// Scene owns every object of a diagram.
type Scene struct {
	lastID    ID
	Rects     *Store[RectObject]
	Lines     *Store[LineObject]
	Texts     *Store[TextObject]
	Freehands *Store[FreehandObject]
}

func NewScene() *Scene {
	return &Scene{
		Rects:     NewStore[RectObject](),
		Lines:     NewStore[LineObject](),
		Texts:     NewStore[TextObject](),
		Freehands: NewStore[FreehandObject](),
	}
}

// NextID issues a new id. The first one is 1.
func (s *Scene) NextID() ID {
	s.lastID++
	return s.lastID
}

func (s *Scene) AddRect(r geom.Rect, color int) *RectObject {
	o := &RectObject{ID: s.NextID(), Color: color, Rect: r}
	s.Rects.Insert(o.ID, o)
	return o
}

func (s *Scene) AddLine(l geom.Line, color int) *LineObject {
	o := &LineObject{ID: s.NextID(), Line: l, Color: color}
	s.Lines.Insert(o.ID, o)
	return o
}

func (s *Scene) AddText(start geom.Point, lines []string, anchor ID, color int) *TextObject {
	o := &TextObject{ID: s.NextID(), Start: start, Lines: lines, Anchor: anchor, Color: color}
	s.Texts.Insert(o.ID, o)
	return o
}

func (s *Scene) AddFreehand(points []geom.Point, color int) *FreehandObject {
	o := &FreehandObject{ID: s.NextID(), Points: points, Color: color}
	s.Freehands.Insert(o.ID, o)
	return o
}

// ResolveAnchor returns the smallest rectangle containing p, border
// included, or zero. Equal areas keep the older rectangle.
func (s *Scene) ResolveAnchor(p geom.Point) ID {
	var best *RectObject
	for _, r := range s.Rects.All() {
		if !r.Rect.IsPointOn(p) {
			continue
		}
		if best == nil || r.Rect.Area() < best.Rect.Area() {
			best = r
		}
	}
	if best == nil {
		return 0
	}
	return best.ID
}

// IsTextEditableAt is the click target that reopens a text for editing:
// the interior of its anchor rectangle, or its start cell when free.
func (s *Scene) IsTextEditableAt(t *TextObject, p geom.Point) bool {
	if r, ok := s.Rects.Get(t.Anchor); ok {
		return r.Rect.IsPointInside(p)
	}
	return t.Start == p
}

// IsTextAt is IsTextEditableAt widened to the rendered glyphs.
func (s *Scene) IsTextAt(t *TextObject, p geom.Point) bool {
	return s.IsTextEditableAt(t, p) || t.IsOnGlyphs(p)
}

// DeleteUnderPoint removes at most one object at p: a text, else a line,
// else the smallest rectangle, else a trace. Lines and texts anchored to a
// deleted rectangle keep the dangling id and simply stop following.
func (s *Scene) DeleteUnderPoint(p geom.Point) bool {
	if t, ok := s.Texts.Find(func(t *TextObject) bool { return s.IsTextAt(t, p) }); ok {
		s.Texts.Remove(t.ID)
		return true
	}
	if l, ok := s.Lines.Find(func(l *LineObject) bool { return l.IsPointOn(p) }); ok {
		s.Lines.Remove(l.ID)
		return true
	}
	// TODO: clear anchors that point at the removed rectangle once there is
	// a way to detach text without moving it.
	if id := s.ResolveAnchor(p); id != 0 {
		s.Rects.Remove(id)
		return true
	}
	if f, ok := s.Freehands.Find(func(f *FreehandObject) bool { return f.IsPointOn(p) }); ok {
		s.Freehands.Remove(f.ID)
		return true
	}
	return false
}
