package commands

import (
	"errors"
	"testing"

	"tableflip.dev/xptrack/pkg/runner/challenges"
	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func openState(t *testing.T, dir string) *tracker.Tracker {
	t.Helper()
	p, err := store.Load(testConfig(dir))
	if err != nil {
		t.Fatalf("store.Load() = %v", err)
	}
	tr, err := tracker.Open(p)
	if err != nil {
		t.Fatalf("tracker.Open() = %v", err)
	}
	return tr
}

type testConfig string

func (c testConfig) BasePath() string { return string(c) }
func (c testConfig) Strict() bool     { return false }

func TestCommandTree(t *testing.T) {
	want := []string{"challenges", "update", "reset", "goal", "xp", "summary", "progress", "history", "report", "info", "ui", "version", "completion"}
	cmd := New()
	for _, name := range want {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Errorf("expected %q command, got %v", name, err)
		}
	}
}

func TestCreateUpdateAndReport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)

	if err := run(t, "challenges", "create", "--challenge", "Fenix kills:2500:5", "--challenge", "Kobra sights:1000:2"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := run(t, "update", "Fenix kills=6", "Kobra sights=1"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := run(t, "goal", "10000"); err != nil {
		t.Fatalf("goal: %v", err)
	}
	for _, args := range [][]string{{"summary", "--json"}, {"progress", "--yaml"}, {"history"}, {"history", "--calendar"}, {"report", "--last", "3d"}, {"info"}} {
		if err := run(t, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	tr := openState(t, dir)
	if got := tr.TotalXP(); got != 2500 {
		t.Fatalf("expected total 2500, got %d", got)
	}
	if got := tr.XPGoal(); got != 10000 {
		t.Fatalf("expected goal 10000, got %d", got)
	}
	if got := len(tr.History()); got != 3 {
		t.Fatalf("expected 3 history records, got %d", got)
	}
}

func TestXPOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)

	if err := run(t, "challenges", "defaults"); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if err := run(t, "xp", "set", "4000"); err != nil {
		t.Fatalf("xp set: %v", err)
	}
	if err := run(t, "xp", "add", "--", "-500"); err != nil {
		t.Fatalf("xp add: %v", err)
	}
	tr := openState(t, dir)
	if got := tr.TotalXP(); got != 3500 {
		t.Fatalf("expected total 3500, got %d", got)
	}
	if !tr.Decoupled() {
		t.Fatal("expected decoupled total")
	}
}

func TestResetDropsChallenges(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)

	if err := run(t, "challenges", "defaults"); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if err := run(t, "reset", "--keep-challenges=false"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n := openState(t, dir).Summary().ChallengeCount; n != 0 {
		t.Fatalf("expected no challenges, got %d", n)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)

	if err := run(t, "goal", "10"); err == nil {
		t.Error("expected goal range error")
	}
	if err := run(t, "update", "Fenix kills"); err == nil {
		t.Error("expected malformed update error")
	}
	if err := run(t, "challenges", "create"); err == nil {
		t.Error("expected error without challenges")
	}
	if err := run(t, "challenges", "clear"); !errors.Is(err, challenges.ErrNothingToClear) {
		t.Errorf("expected ErrNothingToClear, got %v", err)
	}
	if err := run(t, "challenges", "clear", "--force"); err != nil {
		t.Errorf("forced clear: %v", err)
	}
	if err := run(t, "summary", "--json", "--yaml"); err == nil {
		t.Error("expected error for both output formats")
	}
}

func TestStrictRejectsUnknown(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)
	t.Setenv("XPTRACK_STRICT", "true")

	if err := run(t, "challenges", "defaults"); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	err := run(t, "update", "Nope=1")
	var unknown *tracker.UnknownChallengeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownChallengeError, got %v", err)
	}
}
