package diagram

import "termsketch/internal/geom"

func (s *Scene) resolveLineAnchor(l *LineObject, end Endpoint) {
	l.SetAnchor(end, s.ResolveAnchor(l.Point(end)))
}

// FollowAnchors snaps anchored objects to their rectangles. Line ends go to
// where the line crosses the border, or the midpoint when it does not.
// Anchored texts are centred on the midpoint, except dragged.
func (s *Scene) FollowAnchors(dragged ID) {
	for _, l := range s.Lines.All() {
		s.followLineEnd(l, StartPoint)
		s.followLineEnd(l, EndPoint)
	}
	for id, t := range s.Texts.All() {
		if id == dragged {
			continue
		}
		if r, ok := s.Rects.Get(t.Anchor); ok {
			t.Start = r.Rect.Midpoint()
		}
	}
}

func (s *Scene) followLineEnd(l *LineObject, end Endpoint) {
	r, ok := s.Rects.Get(l.Anchor(end))
	if !ok {
		return
	}
	l.SetPoint(end, r.Rect.Midpoint())
	if p, ok := geom.SegmentIntersection(r.Rect, l.segmentFrom(end)); ok {
		l.SetPoint(end, p)
	}
}
