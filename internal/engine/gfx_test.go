package engine

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"termsketch/internal/geom"
)

func TestDrawRect(t *testing.T) {
	g := NewGfx(6, 4)
	g.DrawRect(geom.NewRect(geom.Pt(4, 2), geom.Pt(1, 0)), lipgloss.Color("1"))

	want := []string{
		" ┌──┐ ",
		" │  │ ",
		" └──┘ ",
		"      ",
	}
	if got := g.Plain(); !slices.Equal(got, want) {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
	if c := g.At(1, 0).Color; c != lipgloss.Color("1") {
		t.Errorf("colour = %v", c)
	}
}

func TestDrawLine(t *testing.T) {
	g := NewGfx(5, 1)
	g.DrawLineFromPoints(geom.Pt(0, 0), geom.Pt(4, 0), nil)
	if got := g.Plain()[0]; got != "o───o" {
		t.Errorf("got %q", got)
	}

	g = NewGfx(3, 3)
	g.DrawLine(geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(2, 2)}, nil)
	want := []string{"o  ", " \\ ", "  o"}
	if got := g.Plain(); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDrawTextClipsAndTracksPen(t *testing.T) {
	g := NewGfx(6, 2)
	g.DrawText("abcdefgh", 2, 0, nil)
	g.DrawText("x", -1, 1, nil)
	g.DrawText("yz", 0, 1, nil)
	g.DrawTextAtPen("_", nil)

	want := []string{"  abcd", "yz_   "}
	if got := g.Plain(); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	g := NewGfx(5, 1)
	g.DrawText("世a", 0, 0, nil)
	if got := g.Plain()[0]; got != "世a  " {
		t.Errorf("got %q", got)
	}
	if g.At(1, 0).Rune != 0 {
		t.Error("right half of a wide rune should be a continuation cell")
	}
}

func TestStatusLine(t *testing.T) {
	g := NewGfx(8, 2)
	g.DrawText("top", 0, 0, nil)
	g.DrawStatus("status line too long")

	got := g.Plain()
	if got[1] != "status l" {
		t.Errorf("status row = %q", got[1])
	}
	g.ClearScreen()
	if got := g.Plain(); got[1] != "        " || got[0] != "        " {
		t.Errorf("ClearScreen left %q", got)
	}
}

func TestRenderNonEmpty(t *testing.T) {
	g := NewGfx(4, 2)
	g.DrawText("ab", 0, 0, lipgloss.Color("2"))
	g.DrawStatus("s")
	if out := g.Render(); out == "" {
		t.Error("Render returned nothing")
	}
}
