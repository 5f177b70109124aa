// Package geom holds the screen geometry shared by the engine and the apps:
// unsigned cell coordinates, rectangles, lines and their rasterization.
package geom

import (
	"fmt"
	"math"
)

// Point is a terminal cell. Everything stored in a scene is a Point; signed
// arithmetic goes through Delta and is clamped back on the way in.
type Point struct {
	X, Y uint16
}

// Delta is a signed offset between two points.
type Delta struct {
	X, Y int
}

// Pt builds a Point from signed coordinates, clamping each into range.
func Pt(x, y int) Point {
	return Point{X: clamp16(x), Y: clamp16(y)}
}

func clamp16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// Add returns p+q, saturating at the coordinate maximum.
func (p Point) Add(q Point) Point {
	return Pt(int(p.X)+int(q.X), int(p.Y)+int(q.Y))
}

// Sub returns the signed offset p-q.
func (p Point) Sub(q Point) Delta {
	return Delta{X: int(p.X) - int(q.X), Y: int(p.Y) - int(q.Y)}
}

// Offset moves p by d. Coordinates that would go negative stop at zero.
func (p Point) Offset(d Delta) Point {
	return Pt(int(p.X)+d.X, int(p.Y)+d.Y)
}

// Half divides both coordinates by two, rounding toward zero.
func (p Point) Half() Point {
	return Point{X: p.X / 2, Y: p.Y / 2}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Neg flips the direction of d.
func (d Delta) Neg() Delta {
	return Delta{X: -d.X, Y: -d.Y}
}

// Normalize returns the bounding corners of a and b, independent of order.
func Normalize(a, b Point) (minX, minY, maxX, maxY uint16) {
	return min(a.X, b.X), min(a.Y, b.Y), max(a.X, b.X), max(a.Y, b.Y)
}
