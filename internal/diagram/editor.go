package diagram

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/engine"
)

// TextEditor is a row buffer with a cursor on the last edited row. It has
// no column: input always goes to the end of the row.
type TextEditor struct {
	Lines []string
	row   int
}

func NewTextEditor() *TextEditor {
	return &TextEditor{Lines: []string{""}}
}

// NewTextEditorWithLines reopens existing text with the cursor on its last
// row.
func NewTextEditorWithLines(lines []string) *TextEditor {
	if len(lines) == 0 {
		return NewTextEditor()
	}
	return &TextEditor{Lines: slices.Clone(lines), row: len(lines) - 1}
}

func (e *TextEditor) Row() int {
	return e.row
}

// Edit applies one key. Plain Enter is left to the caller and reported as
// unhandled.
func (e *TextEditor) Edit(k engine.KeyEvent) bool {
	switch {
	case k.Paste && k.Type == tea.KeyRunes:
		e.Insert(cleanClipboardText(string(k.Runes)))
	case k.Type == tea.KeyRunes:
		e.Lines[e.row] += string(k.Runes)
	case k.Type == tea.KeySpace:
		e.Lines[e.row] += " "
	case k.Type == tea.KeyBackspace:
		e.backspace()
	case k.Type == tea.KeyEnter && k.Alt:
		e.newRow()
	default:
		return false
	}
	return true
}

// Insert appends text at the cursor. Each newline starts a new row.
func (e *TextEditor) Insert(text string) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			e.newRow()
		}
		e.Lines[e.row] += part
	}
}

func (e *TextEditor) backspace() {
	line := e.Lines[e.row]
	if line != "" {
		r := []rune(line)
		e.Lines[e.row] = string(r[:len(r)-1])
		return
	}
	if e.row == 0 {
		return
	}
	e.Lines = slices.Delete(e.Lines, e.row, e.row+1)
	e.row--
}

func (e *TextEditor) newRow() {
	e.row++
	e.Lines = slices.Insert(e.Lines, e.row, "")
}
