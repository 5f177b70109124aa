package geom

import "iter"

// Line is a segment between two cells. Start and End carry no ordering.
type Line struct {
	Start, End Point
}

// Span is an inclusive coordinate range.
type Span struct {
	Min, Max uint16
}

func (s Span) Contains(v uint16) bool {
	return v >= s.Min && v <= s.Max
}

func (l Line) XRange() Span {
	return Span{Min: min(l.Start.X, l.End.X), Max: max(l.Start.X, l.End.X)}
}

func (l Line) YRange() Span {
	return Span{Min: min(l.Start.Y, l.End.Y), Max: max(l.Start.Y, l.End.Y)}
}

// Slope returns dy/dx. Vertical lines (dx == 0, degenerate ones included)
// report vertical=true and a zero slope instead of dividing by zero.
func (l Line) Slope() (m float64, vertical bool) {
	d := l.End.Sub(l.Start)
	if d.X == 0 {
		return 0, true
	}
	return float64(d.Y) / float64(d.X), false
}

// IsDegenerate reports whether both endpoints are the same cell.
func (l Line) IsDegenerate() bool {
	return l.Start == l.End
}

// IsPointOn reports whether the rasterized line passes through p.
func (l Line) IsPointOn(p Point) bool {
	if !l.XRange().Contains(p.X) || !l.YRange().Contains(p.Y) {
		return false
	}
	it := l.Points()
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		if q == p {
			return true
		}
	}
	return false
}

// Points returns a fresh rasterizer positioned at Start.
func (l Line) Points() *LinePoints {
	return newLinePoints(l.Start, l.End)
}

// All yields every rasterized cell from Start to End.
func (l Line) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := l.Points()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
