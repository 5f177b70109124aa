package geom

import (
	"slices"
	"testing"
)

func collect(l Line) []Point {
	return slices.Collect(l.All())
}

func TestLinePointsEndpoints(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(10, 3)},
		{Pt(10, 3), Pt(0, 0)},
		{Pt(4, 1), Pt(6, 12)},
		{Pt(6, 12), Pt(4, 1)},
		{Pt(3, 3), Pt(9, 9)},
		{Pt(5, 2), Pt(5, 8)},
		{Pt(1, 7), Pt(14, 7)},
		{Pt(20, 0), Pt(0, 5)},
	}

	for _, l := range lines {
		pts := collect(l)
		if len(pts) == 0 {
			t.Fatalf("%+v produced no points", l)
		}
		if pts[0] != l.Start {
			t.Errorf("%+v: first point %v, want %v", l, pts[0], l.Start)
		}
		if pts[len(pts)-1] != l.End {
			t.Errorf("%+v: last point %v, want %v", l, pts[len(pts)-1], l.End)
		}
	}
}

func TestLinePointsMajorAxisStepsByOne(t *testing.T) {
	tests := []struct {
		line   Line
		xMajor bool
	}{
		{Line{Pt(0, 0), Pt(10, 3)}, true},
		{Line{Pt(10, 3), Pt(0, 0)}, true},
		{Line{Pt(2, 2), Pt(6, 6)}, true}, // tie goes to x
		{Line{Pt(4, 1), Pt(6, 12)}, false},
		{Line{Pt(6, 12), Pt(4, 1)}, false},
	}

	for _, tt := range tests {
		pts := collect(tt.line)
		for i := 1; i < len(pts); i++ {
			var step int
			if tt.xMajor {
				step = int(pts[i].X) - int(pts[i-1].X)
			} else {
				step = int(pts[i].Y) - int(pts[i-1].Y)
			}
			if step != 1 && step != -1 {
				t.Fatalf("%+v: step %d between %v and %v", tt.line, step, pts[i-1], pts[i])
			}
		}
	}
}

func TestLinePointsDegenerate(t *testing.T) {
	l := Line{Pt(7, 4), Pt(7, 4)}
	pts := collect(l)
	if len(pts) != 1 || pts[0] != Pt(7, 4) {
		t.Errorf("degenerate line points = %v, want [(7,4)]", pts)
	}
	if !l.IsPointOn(Pt(7, 4)) {
		t.Error("degenerate line should hit its own point")
	}
	if l.IsPointOn(Pt(7, 5)) {
		t.Error("degenerate line should not hit a neighbour")
	}
}

func TestLinePointsStopAtZero(t *testing.T) {
	pts := collect(Line{Pt(3, 2), Pt(0, 0)})
	want := []Point{Pt(3, 2), Pt(2, 1), Pt(1, 1), Pt(0, 0)}
	if !slices.Equal(pts, want) {
		t.Errorf("points = %v, want %v", pts, want)
	}
}

func TestLinePointsNotRestartable(t *testing.T) {
	it := Line{Pt(0, 0), Pt(2, 0)}.Points()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n != 3 {
		t.Fatalf("got %d points, want 3", n)
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator produced another point")
	}
}

func TestIsPointOnConsistentWithRasterizer(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(10, 3)},
		{Pt(4, 1), Pt(6, 12)},
		{Pt(12, 9), Pt(1, 2)},
		{Pt(5, 2), Pt(5, 8)},
	}

	for _, l := range lines {
		on := map[Point]bool{}
		for p := range l.All() {
			on[p] = true
			if !l.IsPointOn(p) {
				t.Errorf("%+v: IsPointOn(%v) = false for a rasterized point", l, p)
			}
		}

		xs, ys := l.XRange(), l.YRange()
		for x := 0; x < 16; x++ {
			for y := 0; y < 16; y++ {
				p := Pt(x, y)
				if xs.Contains(p.X) && ys.Contains(p.Y) {
					if l.IsPointOn(p) != on[p] {
						t.Errorf("%+v: IsPointOn(%v) disagrees with rasterizer", l, p)
					}
					continue
				}
				if l.IsPointOn(p) {
					t.Errorf("%+v: IsPointOn(%v) = true outside bounding box", l, p)
				}
			}
		}
	}
}

func TestSlope(t *testing.T) {
	tests := []struct {
		line     Line
		slope    float64
		vertical bool
	}{
		{Line{Pt(0, 0), Pt(4, 2)}, 0.5, false},
		{Line{Pt(4, 2), Pt(0, 0)}, 0.5, false},
		{Line{Pt(0, 5), Pt(5, 5)}, 0, false},
		{Line{Pt(3, 0), Pt(3, 9)}, 0, true},
		{Line{Pt(3, 3), Pt(3, 3)}, 0, true},
	}
	for _, tt := range tests {
		m, v := tt.line.Slope()
		if m != tt.slope || v != tt.vertical {
			t.Errorf("Slope(%+v) = %v,%v want %v,%v", tt.line, m, v, tt.slope, tt.vertical)
		}
	}
}
