package diagram

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/engine"
	"termsketch/internal/geom"
)

func TestProjectHoverMarkers(t *testing.T) {
	a := New()
	s := a.Scene()
	s.AddRect(geom.NewRect(geom.Pt(0, 0), geom.Pt(4, 2)), 1)
	s.AddText(geom.Pt(7, 1), []string{"hi"}, 0, 0)

	tests := []struct {
		name   string
		at     geom.Point
		marker string
	}{
		{"resize handle", geom.Pt(4, 2), dragMarker},
		{"text start", geom.Pt(7, 1), editMarker},
		{"nothing", geom.Pt(9, 3), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step(a, move(int(tt.at.X), int(tt.at.Y)))
			var got string
			for _, cmd := range a.Project() {
				if c, ok := cmd.(TextCmd); ok && c.At == tt.at && (c.Text == dragMarker || c.Text == editMarker) {
					got = c.Text
				}
			}
			if got != tt.marker {
				t.Errorf("marker = %q, want %q", got, tt.marker)
			}
		})
	}
}

func TestProjectStatus(t *testing.T) {
	a := New(WithColor(1))
	cmds := a.Project()
	status, ok := cmds[len(cmds)-1].(StatusCmd)
	if !ok {
		t.Fatalf("last command = %T, want StatusCmd", cmds[len(cmds)-1])
	}
	for _, want := range []string{"Intent: Rect", "Active: -", "Color: Red", "r rect"} {
		if !strings.Contains(status.Text, want) {
			t.Errorf("status %q lacks %q", status.Text, want)
		}
	}

	step(a, char('t'))
	click(a, 0, 0)
	status = a.Project()[len(a.Project())-1].(StatusCmd)
	if !strings.Contains(status.Text, "Active: text") || !strings.Contains(status.Text, "alt+enter") {
		t.Errorf("status while editing = %q", status.Text)
	}
}

func TestProjectPreview(t *testing.T) {
	a := New(WithIntent(IntentLine))
	step(a, down(1, 1), move(6, 3))

	var previews []LineCmd
	for _, cmd := range a.Project() {
		if c, ok := cmd.(LineCmd); ok {
			previews = append(previews, c)
		}
	}
	if len(previews) != 1 || previews[0].Line != (geom.Line{Start: geom.Pt(1, 1), End: geom.Pt(6, 3)}) {
		t.Errorf("previews = %+v", previews)
	}
}

func TestDraw(t *testing.T) {
	a := New()
	s := a.Scene()
	s.AddRect(geom.NewRect(geom.Pt(0, 0), geom.Pt(4, 2)), 0)
	bend := geom.Pt(8, 0)
	l := s.AddLine(geom.Line{Start: geom.Pt(6, 0), End: geom.Pt(8, 2)}, 0)
	l.Bend = &bend
	s.AddText(geom.Pt(1, 1), []string{"ab"}, 0, 0)
	step(a, move(11, 3))

	gfx := engine.NewGfx(12, 4)
	a.Draw(gfx)
	got := gfx.Plain()
	want := []string{
		"┌───┐ o─o   ",
		"│ab │   │   ",
		"└───┘   o   ",
	}
	if !slices.Equal(got[:3], want) {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(got[:3], "\n"), strings.Join(want, "\n"))
	}
	if !strings.HasPrefix(got[3], " Intent:") {
		t.Errorf("status row = %q", got[3])
	}
}

func TestDrawTextPreviewWithCaret(t *testing.T) {
	a := New(WithIntent(IntentText))
	click(a, 2, 1)
	step(a, typed("ok")...)

	gfx := engine.NewGfx(8, 3)
	a.Draw(gfx)
	if got := gfx.Plain()[1]; got != "  ok_   " {
		t.Errorf("row = %q", got)
	}

	step(a, engine.KeyEvent{Pressed: true, Key: tea.Key{Type: tea.KeyEnter, Alt: true}})
	a.Draw(gfx)
	if got := gfx.Plain()[2]; !strings.HasPrefix(got, " Intent") {
		t.Errorf("status row = %q", got)
	}
}

func TestAnchoredTextPreviewMatchesCommit(t *testing.T) {
	a := New()
	rect := a.Scene().AddRect(geom.NewRect(geom.Pt(0, 0), geom.Pt(10, 6)), 0)
	a.Scene().AddText(geom.Pt(0, 0), []string{"abcd"}, rect.ID, 0)
	step(a)

	textAt := func() (geom.Point, bool) {
		for _, cmd := range a.Project() {
			if c, ok := cmd.(TextCmd); ok && c.Text == "abcd" {
				return c.At, true
			}
		}
		return geom.Point{}, false
	}
	committed, ok := textAt()
	if !ok || committed != geom.Pt(3, 3) {
		t.Fatalf("committed text at %v, want (3,3)", committed)
	}

	click(a, 3, 2)
	if _, ok := a.Action().(*DrawText); !ok {
		t.Fatalf("action = %T, want *DrawText", a.Action())
	}
	if got, _ := textAt(); got != committed {
		t.Errorf("preview at %v, want %v", got, committed)
	}
	var caret geom.Point
	for _, cmd := range a.Project() {
		if c, ok := cmd.(TextCmd); ok && c.Text == caretMarker {
			caret = c.At
		}
	}
	if caret != geom.Pt(7, 3) {
		t.Errorf("caret at %v, want (7,3)", caret)
	}

	step(a, keyOf(tea.KeyEnter))
	if got, _ := textAt(); got != committed {
		t.Errorf("text moved to %v after commit", got)
	}
}
