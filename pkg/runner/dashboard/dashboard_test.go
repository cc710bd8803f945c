package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

type testConfig string

func (c testConfig) BasePath() string { return string(c) }
func (c testConfig) Strict() bool     { return false }

func newTestModel(t *testing.T) (Model, store.Persistence) {
	t.Helper()
	p, err := store.Load(testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store.Load() = %v", err)
	}
	tr, err := tracker.Open(p)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("tracker.Open() = %v", err)
	}
	if err := tr.UseDefaultChallenges(0); err != nil {
		t.Fatalf("UseDefaultChallenges() = %v", err)
	}
	return New(context.Background(), tr, p), p
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestIncrementSelectedChallenge(t *testing.T) {
	m, p := newTestModel(t)

	m, _ = send(t, m, runes("j"), runes("+"), runes("+"))
	c, ok := m.tracker.Challenge("Kobra sights")
	if !ok || c.Input != 2 || c.Completions != 1 {
		t.Fatalf("unexpected Kobra sights state %+v", c)
	}
	if got := m.tracker.TotalXP(); got != 1000 {
		t.Fatalf("expected total 1000, got %d", got)
	}

	reopened, err := tracker.Open(p)
	if err != nil {
		t.Fatalf("tracker.Open() = %v", err)
	}
	if got := reopened.TotalXP(); got != 1000 {
		t.Fatalf("expected saved total 1000, got %d", got)
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runes("-"))
	c, _ := m.tracker.Challenge("Fenix kills")
	if c.Input != 0 {
		t.Fatalf("expected clamp at zero, got %d", c.Input)
	}
	if m.err != nil {
		t.Fatalf("unexpected error %v", m.err)
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runes("k"))
	if m.selected != 0 {
		t.Fatalf("expected selection 0, got %d", m.selected)
	}
	m, _ = send(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	if m.selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.selected)
	}
}

func TestSetGoal(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, runes("g"), runes("500"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.err == nil || m.mode != modeGoal {
		t.Fatalf("expected out of range goal to be rejected, mode %v err %v", m.mode, m.err)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("g"), runes("20000"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode, got %v", m.mode)
	}
	if got := m.tracker.XPGoal(); got != 20000 {
		t.Fatalf("expected goal 20000, got %d", got)
	}
}

func TestResetNeedsConfirmation(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, runes("+"))

	m, _ = send(t, m, runes("r"), runes("n"))
	if c, _ := m.tracker.Challenge("Fenix kills"); c.Input != 1 {
		t.Fatalf("expected progress kept after cancel, got %+v", c)
	}

	m, _ = send(t, m, runes("r"), runes("y"))
	c, _ := m.tracker.Challenge("Fenix kills")
	if c.Input != 0 {
		t.Fatalf("expected progress zeroed, got %d", c.Input)
	}
	if m.tracker.Summary().ChallengeCount != 3 {
		t.Fatal("expected challenges kept")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestWatchEventReloads(t *testing.T) {
	m, p := newTestModel(t)

	other, err := tracker.Open(p)
	if err != nil {
		t.Fatalf("tracker.Open() = %v", err)
	}
	if err := other.UpdateProgress(map[string]int{"OKP-7 sights": 2}); err != nil {
		t.Fatalf("UpdateProgress() = %v", err)
	}

	m, _ = send(t, m, watchEventMsg{event: store.Event{Type: store.EventDocumentChanged}})
	if got := m.tracker.TotalXP(); got != 3000 {
		t.Fatalf("expected reloaded total 3000, got %d", got)
	}
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, runes("j"), runes("j"), runes("+"))

	view := m.View()
	for _, want := range []string{"XP Tracker", "Fenix kills", "Kobra sights", "OKP-7 sights", "1500 / 50000 XP", "(completed 1)", "Recent XP Activity"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
