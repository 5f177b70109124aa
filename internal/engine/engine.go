// Package engine runs an App at a fixed frame rate inside a bubbletea
// program. Input that arrives between two frames is handed to the app as a
// single EventGroup; the app then draws into a Gfx frame buffer.
package engine

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"termsketch/internal/geom"
)

const DefaultFPS = 60

// App is a program driven by the engine.
type App interface {
	// Reset runs once the screen size is known.
	Reset(gfx *Gfx)
	// Update consumes one frame worth of input. Returning false stops the
	// engine.
	Update(events *EventGroup, gfx *Gfx) bool
	Draw(gfx *Gfx)
}

type frameMsg time.Time

// Engine adapts an App to tea.Model.
type Engine struct {
	app   App
	gfx   *Gfx
	frame time.Duration

	pending []Event
	held    MouseButton
	ready   bool
	view    string
}

func New(app App) *Engine {
	e := &Engine{
		app: app,
		gfx: NewGfx(0, 0),
	}
	e.SetTargetFPS(DefaultFPS)
	return e
}

// SetTargetFPS sets the frame rate. Zero or less runs frames back to back.
func (e *Engine) SetTargetFPS(fps int) {
	if fps <= 0 {
		e.DisableFPS()
		return
	}
	e.frame = time.Second / time.Duration(fps)
}

func (e *Engine) DisableFPS() {
	e.frame = 0
}

func (e *Engine) Gfx() *Gfx {
	return e.gfx
}

func (e *Engine) Init() tea.Cmd {
	return e.nextFrame()
}

func (e *Engine) nextFrame() tea.Cmd {
	d := e.frame
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (e *Engine) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC {
			return e, tea.Quit
		}
		e.pending = append(e.pending, KeyEvent{Pressed: true, Key: tea.Key(msg)})
	case tea.MouseMsg:
		if ev, ok := e.mouseEvent(tea.MouseEvent(msg)); ok {
			e.pending = append(e.pending, ev)
		}
	case frameMsg:
		if !e.Step() {
			return e, tea.Quit
		}
		return e, e.nextFrame()
	}
	return e, nil
}

// Resize updates the frame buffer. The first call resets the app.
func (e *Engine) Resize(width, height int) {
	e.gfx.Resize(width, height)
	if !e.ready {
		e.ready = true
		e.app.Reset(e.gfx)
	}
}

// Step runs one frame with the input queued since the previous one. Frames
// before the first resize are skipped and keep their input queued.
func (e *Engine) Step() bool {
	if !e.ready {
		return true
	}

	events := &EventGroup{Events: e.pending}
	e.pending = nil
	if len(events.Events) > 0 {
		Logger().Debug("frame input", "events", len(events.Events))
	}

	if !e.app.Update(events, e.gfx) {
		return false
	}
	e.app.Draw(e.gfx)
	e.view = e.gfx.Render()
	return true
}

func (e *Engine) View() string {
	return e.view
}

// mouseEvent converts a bubbletea mouse message. Wheel input is dropped.
// Terminals that do not report which button was released get the button
// that was last pressed.
func (e *Engine) mouseEvent(m tea.MouseEvent) (MouseEvent, bool) {
	ev := MouseEvent{
		Pos:    geom.Pt(m.X, m.Y),
		Button: mouseButton(m.Button),
	}

	switch m.Action {
	case tea.MouseActionPress:
		if ev.Button == ButtonNone {
			return ev, false
		}
		ev.Kind = MouseDown
		e.held = ev.Button
	case tea.MouseActionRelease:
		ev.Kind = MouseUp
		if ev.Button == ButtonNone {
			ev.Button = e.held
		}
		e.held = ButtonNone
	default:
		ev.Kind = MouseMove
		ev.Button = e.held
	}
	return ev, true
}
