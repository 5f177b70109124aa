package geom

import "math"

// RectLineIntersections returns where the infinite extension of l crosses
// the border of r, checked in the order top, bottom, left, right. Corners
// can show up twice. Edges parallel to the line are skipped.
func RectLineIntersections(r Rect, l Line) []Point {
	m, vertical := l.Slope()
	horizontal := !vertical && l.Start.Y == l.End.Y
	end := r.End()
	out := make([]Point, 0, 4)

	if !horizontal {
		ys := l.YRange()
		for _, y := range [2]uint16{r.Start.Y, end.Y} {
			if !ys.Contains(y) {
				continue
			}
			x := int(l.Start.X)
			if !vertical {
				x = roundInt((float64(y)-float64(l.Start.Y))/m + float64(l.Start.X))
			}
			if x >= int(r.Start.X) && x <= int(end.X) {
				out = append(out, Point{X: uint16(x), Y: y})
			}
		}
	}

	if !vertical {
		xs := l.XRange()
		for _, x := range [2]uint16{r.Start.X, end.X} {
			if !xs.Contains(x) {
				continue
			}
			y := roundInt(m*(float64(x)-float64(l.Start.X)) + float64(l.Start.Y))
			if y >= int(r.Start.Y) && y <= int(end.Y) {
				out = append(out, Point{X: x, Y: uint16(y)})
			}
		}
	}

	return out
}

// SegmentIntersection returns the first border crossing of r that also lies
// within the finite segment l.
func SegmentIntersection(r Rect, l Line) (Point, bool) {
	xs, ys := l.XRange(), l.YRange()
	for _, p := range RectLineIntersections(r, l) {
		if xs.Contains(p.X) && ys.Contains(p.Y) {
			return p, true
		}
	}
	return Point{}, false
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
