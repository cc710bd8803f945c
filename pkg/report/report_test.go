package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/xptrack/pkg/history"
	"tableflip.dev/xptrack/pkg/tracker"
)

func TestActivityEstimatesPerDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.Local)
	records := []history.Record{
		history.SetGoal(now.Add(-72*time.Hour), 1000),
		history.Update(now.Add(-48*time.Hour), map[string]int{"a": 1}),
		history.Update(now.Add(-47*time.Hour), map[string]int{"a": 1}),
		history.Update(now.Add(-time.Hour), map[string]int{"a": -1}),
		history.Update(now.Add(-30*24*time.Hour), map[string]int{"a": 1}),
	}

	buckets := Activity(records, now, 14*24*time.Hour)
	if len(buckets) != 15 {
		t.Fatalf("expected 15 buckets, got %d", len(buckets))
	}
	if buckets[0].Day != "2024-03-01" || buckets[14].Day != "2024-03-15" {
		t.Fatalf("unexpected range %s..%s", buckets[0].Day, buckets[14].Day)
	}

	got := map[string]int{}
	total := 0
	for _, b := range buckets {
		if b.EstimatedXP != b.Updates*EstimatedXPPerUpdate {
			t.Fatalf("bucket %s: xp %d for %d updates", b.Day, b.EstimatedXP, b.Updates)
		}
		if b.Updates > 0 {
			got[b.Day] = b.EstimatedXP
		}
		total += b.Updates
	}
	want := map[string]int{"2024-03-13": 1000, "2024-03-15": 500}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("activity mismatch (-want +got):\n%s", diff)
	}
	if total != 3 {
		t.Fatalf("expected out-of-window update excluded, counted %d", total)
	}
}

func TestActivityWithoutUpdates(t *testing.T) {
	records := []history.Record{history.SetGoal(time.Now(), 10)}
	if got := Activity(records, time.Now(), 14*24*time.Hour); got != nil {
		t.Fatalf("expected nil activity, got %v", got)
	}
}

func TestNewGaugeBands(t *testing.T) {
	tests := map[string]struct {
		total int
		want  Band
	}{
		"low":     {total: 5000, want: BandLow},
		"mid":     {total: 15000, want: BandMid},
		"high":    {total: 40000, want: BandHigh},
		"reached": {total: 60000, want: BandHigh},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGauge(tracker.Summary{TotalXP: tc.total, XPGoal: 30000})
			if g.Band != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, g.Band)
			}
			if g.Delta != tc.total-30000 {
				t.Fatalf("unexpected delta %d", g.Delta)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	rows := []tracker.ProgressRow{
		{Name: "Fenix kills", CompletionPercent: 40},
		{Name: "Kobra sights", CompletionPercent: 100},
	}
	want := []Bar{{Label: "Fenix kills", Percent: 40}, {Label: "Kobra sights", Percent: 100}}
	if diff := cmp.Diff(want, Completion(rows)); diff != "" {
		t.Fatalf("bars mismatch (-want +got):\n%s", diff)
	}
}
