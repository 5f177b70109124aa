package geom

import "math"

// LinePoints walks a line one cell at a time along its major axis. It is
// single use: once Next reports false it stays exhausted.
type LinePoints struct {
	start  Point
	xMajor bool
	ratio  float64 // minor delta / major delta
	cur    int
	last   int
	step   int
	done   bool
}

func newLinePoints(a, b Point) *LinePoints {
	d := b.Sub(a)
	lp := &LinePoints{start: a}

	if abs(d.X) >= abs(d.Y) {
		lp.xMajor = true
		lp.cur, lp.last = int(a.X), int(b.X)
		if d.X != 0 {
			lp.ratio = float64(d.Y) / float64(d.X)
		}
	} else {
		lp.cur, lp.last = int(a.Y), int(b.Y)
		lp.ratio = float64(d.X) / float64(d.Y)
	}

	switch {
	case lp.last > lp.cur:
		lp.step = 1
	case lp.last < lp.cur:
		lp.step = -1
	}
	return lp
}

// Next returns the next cell. A zero-length line yields its single cell.
func (lp *LinePoints) Next() (Point, bool) {
	if lp.done {
		return Point{}, false
	}

	major := lp.cur
	var p Point
	if lp.xMajor {
		p = Point{X: uint16(major), Y: lp.minor(lp.start.Y, major-int(lp.start.X))}
	} else {
		p = Point{X: lp.minor(lp.start.X, major-int(lp.start.Y)), Y: uint16(major)}
	}

	// cur stays between the two endpoints, so stepping toward zero can never
	// wrap below it.
	if major == lp.last {
		lp.done = true
	} else {
		lp.cur += lp.step
	}
	return p, true
}

func (lp *LinePoints) minor(origin uint16, offset int) uint16 {
	v := math.Round(lp.ratio*float64(offset) + float64(origin))
	return clamp16(int(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
