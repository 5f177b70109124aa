package geom

// Rect is an axis aligned rectangle. It is only ever built from two corners
// through NewRect or Resize so the invariants below always hold.
type Rect struct {
	// Start is the top-left (min-x, min-y) corner.
	Start Point
	// Size is the extent from Start to the opposite corner.
	Size Point
}

// NewRect returns the rectangle spanned by two arbitrary corners.
func NewRect(a, b Point) Rect {
	minX, minY, maxX, maxY := Normalize(a, b)
	return Rect{
		Start: Point{X: minX, Y: minY},
		Size:  Point{X: maxX - minX, Y: maxY - minY},
	}
}

// End is the bottom-right corner. It doubles as the resize handle.
func (r Rect) End() Point {
	return r.Start.Add(r.Size)
}

// Midpoint rounds toward Start on odd sizes.
func (r Rect) Midpoint() Point {
	return r.Start.Add(r.Size.Half())
}

func (r Rect) Area() int {
	return int(r.Size.X) * int(r.Size.Y)
}

// IsPointOnHeader reports whether p lies on the top edge, corners included.
func (r Rect) IsPointOnHeader(p Point) bool {
	return p.Y == r.Start.Y && p.X >= r.Start.X && p.X <= r.End().X
}

// IsPointOn reports whether p lies on or within the border.
func (r Rect) IsPointOn(p Point) bool {
	end := r.End()
	return p.X >= r.Start.X && p.X <= end.X &&
		p.Y >= r.Start.Y && p.Y <= end.Y
}

// IsPointInside reports whether p lies strictly inside the border.
func (r Rect) IsPointInside(p Point) bool {
	end := r.End()
	x, y := int(p.X), int(p.Y)
	return x >= int(r.Start.X)+1 && x <= int(end.X)-1 &&
		y >= int(r.Start.Y)+1 && y <= int(end.Y)-1
}

// Resize recomputes r from a fixed corner and the current free corner.
func (r *Rect) Resize(fixed, corner Point) {
	*r = NewRect(fixed, corner)
}

// MoveTo places the top-left corner at p keeping the size.
func (r *Rect) MoveTo(p Point) {
	r.Start = p
}
