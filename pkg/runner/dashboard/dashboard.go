// Package dashboard hosts the Bubble Tea program for the interactive tracker.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/xptrack/pkg/report"
	"tableflip.dev/xptrack/pkg/runner/goal"
	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

type mode int

const (
	modeNormal mode = iota
	modeGoal
	modeConfirmReset
)

// Dashboard runs the interactive tracker until the user quits.
type Dashboard struct {
	Window      time.Duration
	Persistence store.Persistence
	Tracker     *tracker.Tracker
	Log         *zap.Logger
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not open dashboard, no tracker")
	}
	m := New(ctx, n.Tracker, n.Persistence)
	m.window = n.Window
	if n.Log != nil {
		m.log = n.Log
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Model is the dashboard state.
type Model struct {
	ctx         context.Context
	tracker     *tracker.Tracker
	persistence store.Persistence
	log         *zap.Logger
	now         func() time.Time
	window      time.Duration

	keys  keyMap
	help  help.Model
	input textinput.Model
	theme Theme

	mode     mode
	selected int
	status   string
	err      error
	width    int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a dashboard model. Persistence may be nil to disable reloads.
func New(ctx context.Context, t *tracker.Tracker, p store.Persistence) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d", tracker.DefaultXPGoal)
	ti.CharLimit = 7
	ti.Prompt = "goal> "

	return Model{
		ctx:         ctx,
		tracker:     t,
		persistence: p,
		log:         zap.NewNop(),
		now:         time.Now,
		window:      14 * 24 * time.Hour,
		keys:        defaultKeys(),
		help:        help.New(),
		input:       ti,
		theme:       DefaultTheme(),
	}
}

func (m Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.persistence)
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		m.setStatus("Watching " + m.persistence.Location())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.reload(msg.event.Type.String())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeGoal:
		return m.handleGoalKey(msg)
	case modeConfirmReset:
		return m.handleConfirmKey(msg)
	}

	rows := m.tracker.ProgressRows()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Increment):
		m.step(rows, 1)
	case key.Matches(msg, m.keys.Decrement):
		m.step(rows, -1)
	case key.Matches(msg, m.keys.Goal):
		m.mode = modeGoal
		m.input.SetValue("")
		return m.input.Focus()
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
		m.setStatus("Reset all progress? (y/n)")
	case key.Matches(msg, m.keys.Reload):
		m.reload("manual")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleGoalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		m.setStatus("Goal unchanged")
		return nil
	case tea.KeyEnter:
		g, err := goal.Parse(m.input.Value())
		if err != nil {
			m.setError(err)
			return nil
		}
		m.mode = modeNormal
		m.input.Blur()
		if err := m.tracker.SetXPGoal(g); err != nil {
			m.setError(err)
			return nil
		}
		m.setStatus(fmt.Sprintf("Goal set to %d", g))
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeNormal
		if err := m.tracker.ResetProgress(true); err != nil {
			m.setError(err)
			return nil
		}
		m.setStatus("Progress reset")
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.setStatus("Reset cancelled")
	}
	return nil
}

func (m *Model) step(rows []tracker.ProgressRow, delta int) {
	if len(rows) == 0 {
		m.setStatus("No challenges, create some with xptrack challenges create")
		return
	}
	if m.selected >= len(rows) {
		m.selected = len(rows) - 1
	}
	name := rows[m.selected].Name
	if err := m.tracker.UpdateProgress(map[string]int{name: delta}); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("%s %+d", name, delta))
}

func (m *Model) reload(reason string) {
	if m.persistence == nil {
		return
	}
	if err := m.tracker.Load(); err != nil && !errors.Is(err, store.ErrNotFound) {
		m.setError(fmt.Errorf("reload: %w", err))
		return
	}
	if n := m.tracker.Summary().ChallengeCount; m.selected >= n {
		m.selected = max(n-1, 0)
	}
	m.log.Debug("dashboard reloaded", zap.String("reason", reason))
	m.setStatus("Reloaded (" + reason + ")")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
	m.status = ""
}

// Report returns what the dashboard currently renders.
func (m Model) Report() report.Report {
	return report.Build(m.tracker, m.now(), m.window)
}
