package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/report"
)

const barWidth = 24

func (m Model) View() string {
	r := m.Report()
	t := m.theme

	var b strings.Builder
	b.WriteString(t.Title.Render("XP Tracker"))
	b.WriteString("\n\n")
	b.WriteString(m.gaugeView(r))
	b.WriteString("\n\n")
	b.WriteString(m.challengesView(r))
	b.WriteString("\n")
	b.WriteString(m.activityView(r))
	b.WriteString("\n")

	switch {
	case m.mode == modeGoal:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(t.Error.Render("ERR: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(t.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) gaugeView(r report.Report) string {
	t := m.theme
	g := r.Gauge
	line := fmt.Sprintf("%s %d / %d XP  %.1f%%",
		t.Bands[g.Band].Render(printers.Bar(g.Percent, barWidth)),
		g.Value, g.Goal, g.Percent)
	remaining := t.Muted.Render(fmt.Sprintf("%d to go", r.Summary.RemainingXP))
	if r.Summary.RemainingXP == 0 {
		remaining = t.Bands[report.BandHigh].Render(fmt.Sprintf("goal reached (+%d)", g.Delta))
	}
	out := line + "  " + remaining
	if r.Summary.Decoupled {
		out += "\n" + t.Muted.Render("total set manually; the next update recomputes it")
	}
	return out
}

func (m Model) challengesView(r report.Report) string {
	t := m.theme
	rows := m.tracker.ProgressRows()
	if len(rows) == 0 {
		return t.Panel.Render(t.Muted.Render("no challenges"))
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Name))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, t.Heading.Render("Challenges"))
	for i, row := range rows {
		label := fmt.Sprintf("%-*s %s %5.1f%%  %s  %d XP",
			width, row.Name,
			t.Bar.Render(printers.Bar(row.CompletionPercent, barWidth)),
			row.CompletionPercent, row.ProgressLabel, row.XPEarned)
		style := t.Row
		if i == m.selected {
			style = t.Selected
		}
		lines = append(lines, style.Render(label))
	}
	return t.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) activityView(r report.Report) string {
	t := m.theme
	title := t.Heading.Render("Recent XP Activity (Estimated) · last " + r.Window)
	if len(r.Activity) == 0 {
		return title + "\n" + t.Muted.Render("no updates yet") + "\n"
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, d := range r.Activity {
		if d.Updates == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %3d updates  ~%d XP\n", d.Day, d.Updates, d.EstimatedXP))
	}
	return b.String()
}
