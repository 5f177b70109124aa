// Package diagram is the vector diagram editor: rectangles, lines and text
// that can be drawn, dragged, resized and anchored to each other with the
// mouse.
package diagram

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"termsketch/internal/geom"
)

// ID identifies a scene object for the lifetime of the process. Ids are
// never reused and zero is never issued, so a zero anchor means "none".
type ID uint64

type paletteEntry struct {
	Name  string
	Color lipgloss.TerminalColor
}

var palette = [10]paletteEntry{
	{"Default color", lipgloss.NoColor{}},
	{"Red", lipgloss.Color("1")},
	{"Yellow", lipgloss.Color("3")},
	{"Dark gray", lipgloss.Color("8")},
	{"Light red", lipgloss.Color("9")},
	{"Light green", lipgloss.Color("10")},
	{"Light yellow", lipgloss.Color("11")},
	{"Light blue", lipgloss.Color("12")},
	{"Light magenta", lipgloss.Color("13")},
	{"Light cyan", lipgloss.Color("14")},
}

const defaultColor = 0

func paletteColor(i int) lipgloss.TerminalColor {
	if i < 0 || i >= len(palette) {
		return palette[defaultColor].Color
	}
	return palette[i].Color
}

type RectObject struct {
	ID    ID
	Color int
	Rect  geom.Rect
}

// IsResizePoint reports whether p is the bottom-right handle.
func (o *RectObject) IsResizePoint(p geom.Point) bool {
	return o.Rect.End() == p
}

// IsDragPoint reports whether p is on the header.
func (o *RectObject) IsDragPoint(p geom.Point) bool {
	return o.Rect.IsPointOnHeader(p)
}

// Endpoint selects one end of a line.
type Endpoint int

const (
	StartPoint Endpoint = iota
	EndPoint
)

func (e Endpoint) String() string {
	if e == EndPoint {
		return "end"
	}
	return "start"
}

type LineObject struct {
	ID          ID
	Line        geom.Line
	Color       int
	StartAnchor ID
	EndAnchor   ID
	// Bend, when set, renders the line as two segments through it. The
	// logical endpoints stay the same.
	Bend *geom.Point
}

func (o *LineObject) Point(e Endpoint) geom.Point {
	if e == EndPoint {
		return o.Line.End
	}
	return o.Line.Start
}

func (o *LineObject) SetPoint(e Endpoint, p geom.Point) {
	if e == EndPoint {
		o.Line.End = p
	} else {
		o.Line.Start = p
	}
}

func (o *LineObject) Anchor(e Endpoint) ID {
	if e == EndPoint {
		return o.EndAnchor
	}
	return o.StartAnchor
}

func (o *LineObject) SetAnchor(e Endpoint, id ID) {
	if e == EndPoint {
		o.EndAnchor = id
	} else {
		o.StartAnchor = id
	}
}

// Segments returns the rendered pieces of the line.
func (o *LineObject) Segments() []geom.Line {
	if o.Bend == nil {
		return []geom.Line{o.Line}
	}
	return []geom.Line{
		{Start: o.Line.Start, End: *o.Bend},
		{Start: *o.Bend, End: o.Line.End},
	}
}

// segmentFrom is the rendered segment that touches endpoint e, oriented
// away from it.
func (o *LineObject) segmentFrom(e Endpoint) geom.Line {
	other := o.Point(1 - e)
	if o.Bend != nil {
		other = *o.Bend
	}
	return geom.Line{Start: o.Point(e), End: other}
}

func (o *LineObject) IsPointOn(p geom.Point) bool {
	for _, seg := range o.Segments() {
		if seg.IsPointOn(p) {
			return true
		}
	}
	return false
}

type TextObject struct {
	ID     ID
	Start  geom.Point
	Lines  []string
	Anchor ID
	Color  int
}

// lineStart places row i. Anchored text is centred on Start, free text
// hangs from it.
func (o *TextObject) lineStart(i int) geom.Point {
	x, y := int(o.Start.X), int(o.Start.Y)
	if o.Anchor == 0 {
		return geom.Pt(x, y+i)
	}
	w := textWidth(o.Lines[i])
	return geom.Pt(x-w/2, y-len(o.Lines)/2+i)
}

// IsOnGlyphs reports whether p is on a rendered row, one cell past the end
// included so empty rows stay reachable.
func (o *TextObject) IsOnGlyphs(p geom.Point) bool {
	for i, line := range o.Lines {
		s := o.lineStart(i)
		if p.Y == s.Y && p.X >= s.X && int(p.X) <= int(s.X)+textWidth(line) {
			return true
		}
	}
	return false
}

func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FreehandObject is a pointer trace.
type FreehandObject struct {
	ID     ID
	Points []geom.Point
	Color  int
}

func (o *FreehandObject) Segments() []geom.Line {
	return traceSegments(o.Points)
}

func (o *FreehandObject) IsPointOn(p geom.Point) bool {
	for _, seg := range o.Segments() {
		if seg.IsPointOn(p) {
			return true
		}
	}
	return false
}

func traceSegments(points []geom.Point) []geom.Line {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []geom.Line{{Start: points[0], End: points[0]}}
	}
	segs := make([]geom.Line, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs = append(segs, geom.Line{Start: points[i-1], End: points[i]})
	}
	return segs
}
