package diagram

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rect      key.Binding
	Line      key.Binding
	Text      key.Binding
	Freehand  key.Binding
	Color     key.Binding
	Delete    key.Binding
	MoveText  key.Binding
	Straight  key.Binding
	Paste     key.Binding
	EndEdit   key.Binding
	LineBreak key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rect:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rect")),
		Line:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "line")),
		Text:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "text")),
		Freehand:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "pen")),
		Color:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "color")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
		MoveText:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move text")),
		Straight:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "unbend")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		EndEdit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		LineBreak: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "new line")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp is the idle help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rect, k.Line, k.Text, k.Freehand, k.Color, k.Delete, k.Quit}
}

// editHelp is the help line while a text is open.
func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.EndEdit, k.LineBreak, k.Paste}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.MoveText, k.Straight}, k.editHelp()}
}
