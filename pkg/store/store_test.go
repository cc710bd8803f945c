package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/xptrack/pkg/challenge"
	"tableflip.dev/xptrack/pkg/history"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Strict() bool {
	return false
}

func TestReadMissingDocument(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Read(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteThenRead(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	set := challenge.NewSet(
		challenge.Spec{Name: "Fenix kills", XP: 2500, Required: 5},
		challenge.Spec{Name: "Kobra sights", XP: 1000, Required: 2},
	)
	fenix, _ := set.Get("Fenix kills")
	fenix.Add(12)
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	want := &Document{
		Challenges: set,
		TotalXP:    5000,
		XPGoal:     60000,
		History: []history.Record{
			history.Update(at, map[string]int{"Fenix kills": 12}),
		},
	}

	if err := p.Write(want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if diff := cmp.Diff(want.Challenges.Names(), got.Challenges.Names()); diff != "" {
		t.Fatalf("challenge order mismatch (-want +got):\n%s", diff)
	}
	gotFenix, _ := got.Challenges.Get("Fenix kills")
	if diff := cmp.Diff(fenix, gotFenix); diff != "" {
		t.Fatalf("challenge mismatch (-want +got):\n%s", diff)
	}
	if got.TotalXP != 5000 || got.XPGoal != 60000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if diff := cmp.Diff(want.History, got.History); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	leftovers, err := os.ReadDir(filepath.Join(base, tempDir))
	if err == nil && len(leftovers) != 0 {
		t.Fatalf("expected no temp files, found %d", len(leftovers))
	}
}

func TestReadCorruptDocument(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, DocumentKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	_, err = p.Read()
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestReadAppliesDefaults(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, DocumentKey), []byte(`{"total_xp": 10}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	doc, err := p.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.XPGoal != DefaultXPGoal {
		t.Fatalf("expected default goal, got %d", doc.XPGoal)
	}
	if doc.Challenges == nil || doc.Challenges.Len() != 0 {
		t.Fatalf("expected empty challenge set, got %+v", doc.Challenges)
	}
	if doc.TotalXP != 10 {
		t.Fatalf("expected total 10, got %d", doc.TotalXP)
	}
}

func TestPersistenceWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Write(&Document{Challenges: &challenge.Set{}, XPGoal: DefaultXPGoal}); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Type != EventDocumentChanged {
			t.Fatalf("expected change event, got %v", evt.Type)
		}
		if evt.Path != p.Location() {
			t.Fatalf("expected path %q, got %q", p.Location(), evt.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for document change event")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XPTRACK_PATH", dir)
	t.Setenv("XPTRACK_STRICT", "true")
	t.Setenv(configPathEnv, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != dir {
		t.Fatalf("expected path %q, got %q", dir, cfg.BasePath())
	}
	if !cfg.Strict() {
		t.Fatal("expected strict mode from env")
	}
}
