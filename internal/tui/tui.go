// Package tui is the single-page terminal client.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"todo-app/internal/reconcile"
	"todo-app/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Run starts the terminal client. It requires stdout to be a terminal.
func Run(ctx context.Context, engine *reconcile.Engine) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	program := tea.NewProgram(NewModel(ctx, engine), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeHelp
)

// actionMsg carries the settling action of a finished request back to the UI loop.
type actionMsg struct {
	action state.Action
}

// Model is the bubbletea model of the client. All state changes go through
// state.Reduce on the UI loop; requests run as commands.
type Model struct {
	ctx    context.Context
	engine *reconcile.Engine
	state  state.State
	now    func() time.Time
	loc    *time.Location

	mode   mode
	cursor int
	form   form
}

// NewModel creates the model. Requests are bound to ctx.
func NewModel(ctx context.Context, engine *reconcile.Engine) *Model {
	return &Model{
		ctx:    ctx,
		engine: engine,
		state:  state.New(),
		now:    time.Now,
		loc:    time.Local,
	}
}

// State returns the current client state.
func (m *Model) State() state.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return m.dispatch(m.engine.Load())
}

// dispatch reduces the op's start action and returns its request as a command.
func (m *Model) dispatch(op reconcile.Op) tea.Cmd {
	m.apply(op.Start)
	if op.Run == nil {
		return nil
	}

	ctx, run := m.ctx, op.Run
	return func() tea.Msg {
		return actionMsg{action: run(ctx)}
	}
}

func (m *Model) apply(action state.Action) {
	m.state = state.Reduce(m.state, action)
	m.clampCursor()
}

func (m *Model) visible() []state.TaskView {
	return state.Visible(m.state.Tasks, m.state.Filter)
}

func (m *Model) selected() (state.TaskView, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return state.TaskView{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionMsg:
		m.apply(msg.action)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m, m.updateForm(msg)
		case modeHelp:
			m.mode = modeList
			return m, nil
		default:
			return m, m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "1":
		m.apply(state.FilterChanged{Filter: state.FilterAll})
	case "2":
		m.apply(state.FilterChanged{Filter: state.FilterActive})
	case "3":
		m.apply(state.FilterChanged{Filter: state.FilterCompleted})
	case "r":
		return m.dispatch(m.engine.Load())
	case "x":
		m.apply(state.ErrorDismissed{})
	case "h", "?":
		m.mode = modeHelp
	case "a":
		m.openForm(newForm())
	case "e":
		if task, ok := m.selected(); ok {
			m.openForm(editForm(task, m.loc))
		}
	case " ", "space":
		if task, ok := m.selected(); ok && !m.state.IsDeleting(task.ID) {
			op, err := m.engine.Toggle(m.state, task.ID)
			if err != nil {
				return nil
			}
			return m.dispatch(op)
		}
	case "d":
		if task, ok := m.selected(); ok && !m.state.IsDeleting(task.ID) {
			op, err := m.engine.Remove(m.state, task.ID)
			if err != nil {
				return nil
			}
			return m.dispatch(op)
		}
	}
	return nil
}

func (m *Model) openForm(f form) {
	m.apply(state.ErrorDismissed{})
	m.form = f
	m.mode = modeForm
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.apply(state.ErrorDismissed{})
		return nil
	case tea.KeyEnter:
		return m.submitForm()
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
	case tea.KeyBackspace:
		m.form.backspace()
	case tea.KeySpace:
		m.form.insert([]rune{' '})
	case tea.KeyRunes:
		m.form.insert(msg.Runes)
	}
	return nil
}

// submitForm validates the draft locally. An invalid draft keeps the form open
// with the field errors; a valid one closes it and sends the request.
func (m *Model) submitForm() tea.Cmd {
	draft, err := m.form.draft(m.loc)
	if err != nil {
		m.form.parseErr = err.Error()
		return nil
	}
	m.form.parseErr = ""

	var op reconcile.Op
	if m.form.editing == 0 {
		op = m.engine.Add(draft)
	} else {
		op, err = m.engine.Edit(m.state, m.form.editing, draft)
		if err != nil {
			m.mode = modeList
			return nil
		}
	}

	cmd := m.dispatch(op)
	if op.Run == nil {
		return nil
	}
	m.mode = modeList
	return cmd
}
