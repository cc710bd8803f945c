// Package report builds chart-ready views from tracker snapshots: per-challenge
// completion bars, the goal gauge, and an estimate of recent daily activity.
package report

import (
	"time"

	"tableflip.dev/xptrack/pkg/history"
	"tableflip.dev/xptrack/pkg/timeutil"
	"tableflip.dev/xptrack/pkg/tracker"
)

// EstimatedXPPerUpdate is the XP credited to each update event when
// estimating daily activity. History does not record XP per update, so the
// activity series is an approximation and not a ledger.
const EstimatedXPPerUpdate = 500

// Bar is one challenge in the completion chart.
type Bar struct {
	Label   string  `json:"challenge" yaml:"challenge"`
	Percent float64 `json:"completion" yaml:"completion"`
}

// Band classifies gauge progress by thirds of the goal.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandLow:
		return "red"
	case BandMid:
		return "orange"
	default:
		return "green"
	}
}

// Gauge shows the total against the goal.
type Gauge struct {
	Value   int     `json:"value" yaml:"value"`
	Goal    int     `json:"goal" yaml:"goal"`
	Percent float64 `json:"percent" yaml:"percent"`
	// Delta is Value minus Goal; negative until the goal is reached.
	Delta int  `json:"delta" yaml:"delta"`
	Band  Band `json:"-" yaml:"-"`
}

// DayBucket is the estimated activity for one calendar day.
type DayBucket struct {
	Day         string `json:"date" yaml:"date"`
	Updates     int    `json:"updates" yaml:"updates"`
	EstimatedXP int    `json:"xp_earned" yaml:"xp_earned"`
}

// Report bundles everything the report command and dashboard render.
type Report struct {
	Summary    tracker.Summary `json:"summary" yaml:"summary"`
	Gauge      Gauge           `json:"gauge" yaml:"gauge"`
	Completion []Bar           `json:"completion" yaml:"completion"`
	Activity   []DayBucket     `json:"activity" yaml:"activity"`
	Window     string          `json:"window" yaml:"window"`
}

// Completion returns one bar per challenge, in challenge order.
func Completion(rows []tracker.ProgressRow) []Bar {
	bars := make([]Bar, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, Bar{Label: r.Name, Percent: r.CompletionPercent})
	}
	return bars
}

// NewGauge derives the gauge from a summary.
func NewGauge(s tracker.Summary) Gauge {
	g := Gauge{
		Value:   s.TotalXP,
		Goal:    s.XPGoal,
		Percent: s.ProgressPercent,
		Delta:   s.TotalXP - s.XPGoal,
	}
	switch {
	case s.XPGoal <= 0:
		g.Band = BandLow
	case s.TotalXP*3 < s.XPGoal:
		g.Band = BandLow
	case s.TotalXP*3 < 2*s.XPGoal:
		g.Band = BandMid
	default:
		g.Band = BandHigh
	}
	return g
}

// Activity counts update events per day over the window ending at now and
// credits each with EstimatedXPPerUpdate. It returns nil when the history has
// no update events at all.
func Activity(records []history.Record, now time.Time, window time.Duration) []DayBucket {
	updates := history.Filter(records, history.ActionUpdate)
	if len(updates) == 0 {
		return nil
	}
	perDay := make(map[string]int, len(updates))
	for _, u := range updates {
		perDay[u.Timestamp.Day()]++
	}

	days := timeutil.DayStarts(now, window)
	buckets := make([]DayBucket, 0, len(days))
	for _, d := range days {
		key := history.Stamp(d).Day()
		n := perDay[key]
		buckets = append(buckets, DayBucket{
			Day:         key,
			Updates:     n,
			EstimatedXP: n * EstimatedXPPerUpdate,
		})
	}
	return buckets
}

// Build assembles a report from the tracker's read-only queries.
func Build(t *tracker.Tracker, now time.Time, window time.Duration) Report {
	summary := t.Summary()
	return Report{
		Summary:    summary,
		Gauge:      NewGauge(summary),
		Completion: Completion(t.ProgressRows()),
		Activity:   Activity(t.History(), now, window),
		Window:     timeutil.FormatWindow(window),
	}
}
