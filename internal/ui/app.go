// Package ui renders the timer overlay with Bubble Tea. It is a consumer
// of the projection produced by the state package and a producer of user
// intents handled by the control package; all timer semantics live there.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/revell/cuetime/internal/control"
	"github.com/revell/cuetime/internal/ontime"
	"github.com/revell/cuetime/internal/prefs"
	"github.com/revell/cuetime/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Dispatcher *control.Dispatcher
	Prefs      prefs.Prefs
	PrefsPath  string
	TickEvery  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	store      *state.Store
	dispatcher *control.Dispatcher
	prefs      prefs.Prefs
	prefsPath  string
	tickEvery  time.Duration

	keys  keyMap
	theme Theme

	width  int
	height int

	render   state.RenderState
	now      time.Time
	blink    bool
	blackout bool
	showHelp bool
	note     string
}

type tickMsg time.Time

type storeChangedMsg struct{}

// Run starts the overlay and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	model := NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// NewModel builds the root model.
func NewModel(opts Options) Model {
	tick := opts.TickEvery
	if tick <= 0 {
		tick = time.Second
	}
	m := Model{
		ctx:        opts.Context,
		store:      opts.Store,
		dispatcher: opts.Dispatcher,
		prefs:      opts.Prefs,
		prefsPath:  opts.PrefsPath,
		tickEvery:  tick,
		keys:       DefaultKeyMap(),
		theme:      ThemeByName(opts.Prefs.Theme),
		now:        time.Now(),
	}
	m.render = state.Project(opts.Store.Model(), m.now)
	return m
}

// Init schedules the render tick and the store change listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.waitChangeCmd())
}

// Update handles messages. Both the tick and store changes re-project the
// model; key presses dispatch intents without touching local timer state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.render = state.Project(m.store.Model(), m.now)
		return m, m.tickCmd()

	case storeChangedMsg:
		m.now = time.Now()
		m.render = state.Project(m.store.Model(), m.now)
		return m, m.waitChangeCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, keys.Start):
		m.note = controlNote("start", m.dispatcher.Start())
	case key.Matches(msg, keys.Pause):
		m.note = controlNote("pause", m.dispatcher.Pause())
	case key.Matches(msg, keys.Reload):
		m.note = controlNote("reload", m.dispatcher.Reload())
	case key.Matches(msg, keys.RestartStart):
		m.note = controlNote("restart", m.dispatcher.RestartAndStart())
	case key.Matches(msg, keys.Next):
		m.note = controlNote("next", m.dispatcher.Next())
	case key.Matches(msg, keys.Previous):
		m.note = controlNote("previous", m.dispatcher.Previous())
	case key.Matches(msg, keys.AddMinute):
		m.note = controlNote("+1 min", m.dispatcher.AddMinute())
	case key.Matches(msg, keys.RemoveMinute):
		m.note = controlNote("-1 min", m.dispatcher.RemoveMinute())
	case key.Matches(msg, keys.Blink):
		m.blink = !m.blink
		m.note = controlNote("blink", m.dispatcher.Blink(m.blink))
	case key.Matches(msg, keys.Blackout):
		m.blackout = !m.blackout
		m.note = controlNote("blackout", m.dispatcher.Blackout(m.blackout))
	case key.Matches(msg, keys.ToggleMode):
		if m.prefs.DisplayMode == prefs.ModeTimer {
			m.prefs.DisplayMode = prefs.ModeClock
		} else {
			m.prefs.DisplayMode = prefs.ModeTimer
		}
		_ = prefs.Save(m.prefsPath, m.prefs)
	case key.Matches(msg, keys.ToggleBackground):
		m.prefs.ShowBackground = !m.prefs.ShowBackground
		_ = prefs.Save(m.prefsPath, m.prefs)
	}
	return m, nil
}

// controlNote summarizes a dispatched control for the status line. Rejected
// controls surface here instead of in a dialog.
func controlNote(name string, err error) string {
	if err == nil {
		return name + " sent"
	}
	switch {
	case errors.Is(err, control.ErrDisabled):
		return name + " unavailable"
	case errors.Is(err, control.ErrMissingEvent):
		return name + " needs a loaded event"
	case errors.Is(err, ontime.ErrNotConnected):
		return name + " rejected: not connected"
	default:
		return name + " rejected"
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) waitChangeCmd() tea.Cmd {
	changed := m.store.Changed()
	done := m.ctx.Done()
	return func() tea.Msg {
		select {
		case <-changed:
			return storeChangedMsg{}
		case <-done:
			return nil
		}
	}
}
