package engine

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"termsketch/internal/geom"
)

// Glyphs used by the draw primitives.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	lineJoint      = 'o'
)

// Color is any lipgloss terminal colour. lipgloss.NoColor{} keeps the
// terminal default.
type Color = lipgloss.TerminalColor

var statusStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("8")).
	Foreground(lipgloss.Color("15"))

// Cell is one screen cell. A zero Rune marks the right half of a wide rune.
type Cell struct {
	Rune  rune
	Color Color
}

// Gfx is the frame buffer the apps draw into. Everything is clipped to the
// screen, and the last row is replaced by the status line when one is set.
type Gfx struct {
	Width  int
	Height int

	cells  []Cell
	penX   int
	penY   int
	status string
	styles map[Color]lipgloss.Style
}

func NewGfx(width, height int) *Gfx {
	g := &Gfx{styles: make(map[Color]lipgloss.Style)}
	g.Resize(width, height)
	return g
}

// Resize drops the old contents.
func (g *Gfx) Resize(width, height int) {
	g.Width = max(width, 0)
	g.Height = max(height, 0)
	g.cells = make([]Cell, g.Width*g.Height)
	g.ClearScreen()
}

func (g *Gfx) ClearScreen() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Color: lipgloss.NoColor{}}
	}
	g.status = ""
	g.penX, g.penY = 0, 0
}

func (g *Gfx) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

func (g *Gfx) set(x, y int, r rune, c Color) {
	if !g.inBounds(x, y) {
		return
	}
	if c == nil {
		c = lipgloss.NoColor{}
	}
	g.cells[y*g.Width+x] = Cell{Rune: r, Color: c}
}

// At returns the cell at x,y, or a blank cell outside the screen.
func (g *Gfx) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{Rune: ' ', Color: lipgloss.NoColor{}}
	}
	return g.cells[y*g.Width+x]
}

// DrawText writes text starting at x,y and leaves the pen after it.
func (g *Gfx) DrawText(text string, x, y int, c Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.set(x, y, r, c)
		if w == 2 {
			g.set(x+1, y, 0, c)
		}
		x += w
	}
	g.penX, g.penY = x, y
}

func (g *Gfx) DrawTextUncoloured(text string, x, y int) {
	g.DrawText(text, x, y, lipgloss.NoColor{})
}

func (g *Gfx) DrawTextAtPoint(text string, p geom.Point, c Color) {
	g.DrawText(text, int(p.X), int(p.Y), c)
}

// DrawTextAtPen continues where the previous text ended.
func (g *Gfx) DrawTextAtPen(text string, c Color) {
	g.DrawText(text, g.penX, g.penY, c)
}

func (g *Gfx) DrawMultilineText(lines []string, x, y int, c Color) {
	for i, line := range lines {
		g.DrawText(line, x, y+i, c)
	}
}

func (g *Gfx) DrawRect(r geom.Rect, c Color) {
	g.DrawRectFromPoints(r.Start, r.End(), c)
}

// DrawRectFromPoints outlines the box spanned by two arbitrary corners.
func (g *Gfx) DrawRectFromPoints(a, b geom.Point, c Color) {
	minX, minY, maxX, maxY := geom.Normalize(a, b)
	x0, y0, x1, y1 := int(minX), int(minY), int(maxX), int(maxY)

	for y := y0; y <= y1; y++ {
		g.set(x0, y, boxVertical, c)
		g.set(x1, y, boxVertical, c)
	}
	for x := x0 + 1; x < x1; x++ {
		g.set(x, y0, boxHorizontal, c)
		g.set(x, y1, boxHorizontal, c)
	}

	g.set(x0, y0, boxTopLeft, c)
	g.set(x1, y0, boxTopRight, c)
	g.set(x0, y1, boxBottomLeft, c)
	g.set(x1, y1, boxBottomRight, c)
}

func (g *Gfx) DrawLine(l geom.Line, c Color) {
	g.DrawLineFromPoints(l.Start, l.End, c)
}

// DrawLineFromPoints rasterizes a segment and marks both ends.
func (g *Gfx) DrawLineFromPoints(a, b geom.Point, c Color) {
	glyph := lineGlyph(b.Sub(a))
	for p := range (geom.Line{Start: a, End: b}).All() {
		g.set(int(p.X), int(p.Y), glyph, c)
	}
	g.set(int(a.X), int(a.Y), lineJoint, c)
	g.set(int(b.X), int(b.Y), lineJoint, c)
}

func lineGlyph(d geom.Delta) rune {
	switch {
	case d.X == 0:
		return boxVertical
	case d.Y == 0:
		return boxHorizontal
	case (d.X > 0) == (d.Y > 0):
		return '\\'
	default:
		return '/'
	}
}

// DrawStatus sets the text of the status line.
func (g *Gfx) DrawStatus(text string) {
	g.status = text
}

// Plain returns the frame as text without any styling.
func (g *Gfx) Plain() []string {
	rows := make([]string, g.Height)
	for y := range g.Height {
		var sb strings.Builder
		for x := range g.Width {
			if r := g.cells[y*g.Width+x].Rune; r != 0 {
				sb.WriteRune(r)
			}
		}
		rows[y] = sb.String()
	}
	if g.status != "" && g.Height > 0 {
		rows[g.Height-1] = runewidth.FillRight(runewidth.Truncate(g.status, g.Width, ""), g.Width)
	}
	return rows
}

// Render turns the frame into the string handed to bubbletea.
func (g *Gfx) Render() string {
	rows := make([]string, g.Height)
	for y := range g.Height {
		rows[y] = g.renderRow(y)
	}
	if g.status != "" && g.Height > 0 {
		status := runewidth.Truncate(g.status, g.Width, "")
		rows[g.Height-1] = statusStyle.Width(g.Width).Render(status)
	}
	return strings.Join(rows, "\n")
}

func (g *Gfx) renderRow(y int) string {
	var out, run strings.Builder
	var runColor Color = lipgloss.NoColor{}

	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.WriteString(g.style(runColor).Render(run.String()))
		run.Reset()
	}

	for x := range g.Width {
		cell := g.cells[y*g.Width+x]
		if cell.Rune == 0 {
			continue
		}
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}

func (g *Gfx) style(c Color) lipgloss.Style {
	if s, ok := g.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(c)
	g.styles[c] = s
	return s
}
