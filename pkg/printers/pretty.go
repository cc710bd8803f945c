package printers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/xptrack/pkg/history"
	"tableflip.dev/xptrack/pkg/report"
	"tableflip.dev/xptrack/pkg/tracker"
)

const barWidth = 30

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " challenge")
	default:
		_, _ = c.Fprintln(pp.out(), " challenges")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Summary prints the total against the goal.
func (pp *PrettyPrint) Summary(s tracker.Summary) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Fprintf(pp.out(), "%d", s.TotalXP)
	_, _ = fmt.Fprintf(pp.out(), " / %d XP", s.XPGoal)
	_, _ = f.Fprintf(pp.out(), "  (%.1f%%, %d to go)\n", s.ProgressPercent, s.RemainingXP)
	if s.Decoupled {
		y := color.New(color.FgHiYellow, color.Italic)
		_, _ = y.Fprintln(pp.out(), "total set manually; the next update recomputes it from challenges")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// State prints the tracker's summary followed by its progress table.
func (pp *PrettyPrint) State(t *tracker.Tracker) {
	pp.NewLine()
	pp.Summary(t.Summary())
	pp.Rows(t.ProgressRows())
}

// Rows prints the per-challenge progress table.
func (pp *PrettyPrint) Rows(rows []tracker.ProgressRow) {
	pp.TitleWithCount("Challenges", len(rows))
	if len(rows) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Challenge"), bold("Progress"), bold("Done"), bold("XP"), bold("%"))
	for _, r := range rows {
		tbl.AddRow(r.Name, r.ProgressLabel, r.Completions, r.XPEarned, fmt.Sprintf("%.0f", r.CompletionPercent))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Completion prints one horizontal bar per challenge.
func (pp *PrettyPrint) Completion(bars []report.Bar) {
	pp.Title("Challenge Completion Progress")
	if len(bars) == 0 {
		pp.none()
		return
	}
	width := 0
	for _, b := range bars {
		if len(b.Label) > width {
			width = len(b.Label)
		}
	}
	fill := color.New(color.FgCyan)
	for _, b := range bars {
		_, _ = fmt.Fprintf(pp.out(), "%-*s ", width, b.Label)
		_, _ = fill.Fprint(pp.out(), Bar(b.Percent, barWidth))
		_, _ = fmt.Fprintf(pp.out(), " %5.1f%%\n", b.Percent)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Gauge prints progress toward the goal, coloured by band.
func (pp *PrettyPrint) Gauge(g report.Gauge) {
	pp.Title("XP Progress")
	c := color.New(bandColor(g.Band))
	_, _ = c.Fprint(pp.out(), Bar(g.Percent, barWidth))
	_, _ = fmt.Fprintf(pp.out(), " %d / %d", g.Value, g.Goal)
	if g.Delta >= 0 {
		_, _ = color.New(color.FgGreen).Fprintf(pp.out(), " (+%d)\n\n", g.Delta)
		return
	}
	_, _ = color.New(color.Faint).Fprintf(pp.out(), " (%d)\n\n", g.Delta)
}

// Activity prints the estimated XP per day.
func (pp *PrettyPrint) Activity(buckets []report.DayBucket, window string) {
	pp.Title(fmt.Sprintf("Recent XP Activity (Estimated) · last %s", window))
	if len(buckets) == 0 {
		pp.none()
		return
	}
	peak := 0
	for _, b := range buckets {
		if b.EstimatedXP > peak {
			peak = b.EstimatedXP
		}
	}
	l1 := color.New(color.Faint)
	l2 := color.New(color.Bold, color.FgHiWhite)
	for _, b := range buckets {
		pct := 0.0
		if peak > 0 {
			pct = float64(b.EstimatedXP) / float64(peak) * 100
		}
		p := l1
		if b.Updates > 0 {
			p = l2
		}
		_, _ = p.Fprintf(pp.out(), "%s %s %6d\n", b.Day, Bar(pct, barWidth/2), b.EstimatedXP)
	}
	_, _ = l1.Fprintf(pp.out(), "estimated at %d XP per update\n\n", report.EstimatedXPPerUpdate)
}

// History prints the action log, oldest first.
func (pp *PrettyPrint) History(records []history.Record) {
	pp.Title("History")
	if len(records) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Faint)
	for _, r := range records {
		_, _ = y.Fprint(pp.out(), r.Timestamp.String())
		_, _ = fmt.Fprintf(pp.out(), "  %-17s %s\n", r.Action, Describe(r))
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Describe renders the action-specific part of a record.
func Describe(r history.Record) string {
	switch r.Action {
	case history.ActionReset:
		if r.KeepChallenges != nil && *r.KeepChallenges {
			return "progress zeroed, challenges kept"
		}
		return "progress and challenges removed"
	case history.ActionCreateChallenges:
		names := make([]string, 0, len(r.Challenges))
		for _, c := range r.Challenges {
			names = append(names, c.Name)
		}
		seed := 0
		if r.EarnedXP != nil {
			seed = *r.EarnedXP
		}
		return fmt.Sprintf("%s (seed %d XP)", strings.Join(names, ", "), seed)
	case history.ActionUpdate:
		names := make([]string, 0, len(r.Updates))
		for name := range r.Updates {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s %+d", name, r.Updates[name]))
		}
		return strings.Join(parts, ", ")
	case history.ActionSetGoal:
		if r.Goal != nil {
			return fmt.Sprintf("goal %d", *r.Goal)
		}
	case history.ActionSetTotalXP:
		if r.TotalXP != nil {
			return fmt.Sprintf("total %d", *r.TotalXP)
		}
	}
	return ""
}

// Bar renders percent in [0,100] as a fixed-width bar.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := int(percent / 100 * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func bandColor(b report.Band) color.Attribute {
	switch b {
	case report.BandLow:
		return color.FgRed
	case report.BandMid:
		return color.FgYellow
	default:
		return color.FgGreen
	}
}
