package challenge

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddDerivesCompletions(t *testing.T) {
	c := New(Spec{Name: "Fenix kills", XP: 2500, Required: 5})
	c.Add(12)

	if c.Input != 12 || c.Completions != 2 || c.Remainder != 2 {
		t.Fatalf("unexpected progress: %+v", c)
	}
	if c.Earned() != 5000 {
		t.Fatalf("expected 5000 xp earned, got %d", c.Earned())
	}
	if c.ProgressLabel != "2/5 (completed 2)" {
		t.Fatalf("unexpected label %q", c.ProgressLabel)
	}
}

func TestAddClampsAtZero(t *testing.T) {
	c := New(Spec{Name: "Fenix kills", XP: 2500, Required: 5})
	c.Add(12)
	c.Add(-100)

	if c.Input != 0 {
		t.Fatalf("expected input clamped to 0, got %d", c.Input)
	}
	if c.Completions != 0 || c.Remainder != 0 {
		t.Fatalf("expected derived values reset, got %+v", c)
	}
}

func TestSingleRequiredHasNoRemainder(t *testing.T) {
	c := New(Spec{Name: "OKP-7 sights", XP: 1500, Required: 1})
	c.Add(3)

	if c.Completions != 3 || c.Remainder != 0 {
		t.Fatalf("unexpected progress: %+v", c)
	}
	if c.ProgressLabel != "(completed 3)" {
		t.Fatalf("unexpected label %q", c.ProgressLabel)
	}
}

func TestCompletionPercentCapped(t *testing.T) {
	c := New(Spec{Name: "Kobra sights", XP: 1000, Required: 2})
	c.Add(1)
	if got := c.CompletionPercent(); got != 50 {
		t.Fatalf("expected 50%%, got %v", got)
	}
	c.Add(9)
	if got := c.CompletionPercent(); got != 100 {
		t.Fatalf("expected 100%%, got %v", got)
	}
}

func TestSpecValidate(t *testing.T) {
	tests := map[string]struct {
		spec    Spec
		wantErr bool
	}{
		"valid":         {spec: Spec{Name: "a", XP: 10, Required: 1}},
		"empty name":    {spec: Spec{XP: 10, Required: 1}, wantErr: true},
		"zero required": {spec: Spec{Name: "a", XP: 10, Required: 0}, wantErr: true},
		"negative xp":   {spec: Spec{Name: "a", XP: -1, Required: 2}, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.spec.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSetKeepsOrderThroughJSON(t *testing.T) {
	s := NewSet(
		Spec{Name: "Zeta", XP: 1, Required: 1},
		Spec{Name: "Alpha", XP: 2, Required: 2},
		Spec{Name: "Mid", XP: 3, Required: 3},
	)
	if c, ok := s.Get("Alpha"); ok {
		c.Add(5)
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.HasPrefix(string(b), `{"Zeta":`) {
		t.Fatalf("expected insertion order in %s", b)
	}

	got := &Set{}
	if err := json.Unmarshal(b, got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(s.Names(), got.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	alpha, _ := got.Get("Alpha")
	if alpha.Input != 5 || alpha.Completions != 2 || alpha.Remainder != 1 {
		t.Fatalf("unexpected alpha: %+v", alpha)
	}
}

func TestSetPutReplacesInPlace(t *testing.T) {
	s := NewSet(Spec{Name: "a", XP: 1, Required: 1}, Spec{Name: "b", XP: 1, Required: 1})
	s.Put(New(Spec{Name: "a", XP: 9, Required: 3}))

	if diff := cmp.Diff([]string{"a", "b"}, s.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	a, _ := s.Get("a")
	if a.XP != 9 {
		t.Fatalf("expected replaced challenge, got %+v", a)
	}
}

func TestSetUnmarshalNull(t *testing.T) {
	s := NewSet(Spec{Name: "a", XP: 1, Required: 1})
	if err := json.Unmarshal([]byte("null"), s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty set, got %d", s.Len())
	}
}

func TestSetUnmarshalRejectsArray(t *testing.T) {
	s := &Set{}
	if err := json.Unmarshal([]byte(`[1,2]`), s); err == nil {
		t.Fatal("expected error for array input")
	}
}
