package diagram

import (
	"fmt"

	"termsketch/internal/engine"
	"termsketch/internal/geom"
)

const (
	dragMarker  = "+"
	editMarker  = "#"
	traceGlyph  = "*"
	caretMarker = "_"
)

// DrawCmd is one item of a frame's display list.
type DrawCmd interface {
	drawCmd()
}

type RectCmd struct {
	Rect  geom.Rect
	Color engine.Color
}

// LineCmd draws Line, through Bend when set.
type LineCmd struct {
	Line  geom.Line
	Bend  *geom.Point
	Color engine.Color
}

type TraceCmd struct {
	Points []geom.Point
	Color  engine.Color
}

type TextCmd struct {
	Text  string
	At    geom.Point
	Color engine.Color
}

type StatusCmd struct {
	Text string
}

func (RectCmd) drawCmd()   {}
func (LineCmd) drawCmd()   {}
func (TraceCmd) drawCmd()  {}
func (TextCmd) drawCmd()   {}
func (StatusCmd) drawCmd() {}

// Project builds the display list: objects, the in-progress preview, hover
// markers and the status line.
func (a *App) Project() []DrawCmd {
	s := a.scene
	var cmds, markers []DrawCmd
	marker := func(text string) {
		markers = append(markers, TextCmd{Text: text, At: a.pointer, Color: paletteColor(defaultColor)})
	}

	for _, r := range s.Rects.All() {
		cmds = append(cmds, RectCmd{Rect: r.Rect, Color: paletteColor(r.Color)})
		if r.IsResizePoint(a.pointer) {
			marker(dragMarker)
		}
	}
	for _, l := range s.Lines.All() {
		cmds = append(cmds, LineCmd{Line: l.Line, Bend: l.Bend, Color: paletteColor(l.Color)})
		if l.Line.Start == a.pointer || l.Line.End == a.pointer {
			marker(dragMarker)
		}
	}
	for _, f := range s.Freehands.All() {
		cmds = append(cmds, TraceCmd{Points: f.Points, Color: paletteColor(f.Color)})
	}
	for _, t := range s.Texts.All() {
		for i, line := range t.Lines {
			cmds = append(cmds, TextCmd{Text: line, At: t.lineStart(i), Color: paletteColor(t.Color)})
		}
		if s.IsTextEditableAt(t, a.pointer) {
			marker(editMarker)
		}
	}

	cmds = append(cmds, a.preview()...)
	cmds = append(cmds, markers...)
	return append(cmds, StatusCmd{Text: a.status()})
}

func (a *App) preview() []DrawCmd {
	c := paletteColor(a.color)
	switch act := a.action.Current().(type) {
	case *DrawRect:
		return []DrawCmd{RectCmd{Rect: geom.NewRect(act.Start, a.pointer), Color: c}}
	case *DrawLine:
		return []DrawCmd{LineCmd{Line: geom.Line{Start: act.Start, End: a.pointer}, Color: c}}
	case *DrawFreehand:
		return []DrawCmd{TraceCmd{Points: act.Points, Color: c}}
	case *DrawText:
		tc := paletteColor(act.Color)
		// Lay the preview out the way the committed text will be.
		shown := TextObject{Start: act.Start, Lines: act.Editor.Lines}
		if r, ok := a.scene.Rects.Get(a.scene.ResolveAnchor(act.Start)); ok {
			shown.Anchor = r.ID
			shown.Start = r.Rect.Midpoint()
		}
		var cmds []DrawCmd
		for i, line := range shown.Lines {
			cmds = append(cmds, TextCmd{Text: line, At: shown.lineStart(i), Color: tc})
		}
		row := act.Editor.Row()
		at := shown.lineStart(row)
		caret := geom.Pt(int(at.X)+textWidth(shown.Lines[row]), int(at.Y))
		return append(cmds, TextCmd{Text: caretMarker, At: caret, Color: tc})
	}
	return nil
}

func (a *App) status() string {
	active := "-"
	bindings := a.keys.ShortHelp()
	if act := a.action.Current(); act != nil {
		active = act.Name()
		if _, ok := act.(*DrawText); ok {
			bindings = a.keys.editHelp()
		}
	}
	return fmt.Sprintf(" Intent: %s │ Active: %s │ Color: %s │ %s",
		a.intent, active, palette[a.color].Name, a.help.ShortHelpView(bindings))
}

// Draw paints the display list.
func (a *App) Draw(gfx *engine.Gfx) {
	gfx.ClearScreen()
	for _, cmd := range a.Project() {
		switch cmd := cmd.(type) {
		case RectCmd:
			gfx.DrawRect(cmd.Rect, cmd.Color)
		case LineCmd:
			if cmd.Bend == nil {
				gfx.DrawLine(cmd.Line, cmd.Color)
				continue
			}
			gfx.DrawLineFromPoints(cmd.Line.Start, *cmd.Bend, cmd.Color)
			gfx.DrawLineFromPoints(*cmd.Bend, cmd.Line.End, cmd.Color)
		case TraceCmd:
			for _, seg := range traceSegments(cmd.Points) {
				for p := range seg.All() {
					gfx.DrawTextAtPoint(traceGlyph, p, cmd.Color)
				}
			}
		case TextCmd:
			gfx.DrawTextAtPoint(cmd.Text, cmd.At, cmd.Color)
		case StatusCmd:
			gfx.DrawStatus(cmd.Text)
		}
	}
}
