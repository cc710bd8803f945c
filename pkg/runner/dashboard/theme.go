package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/xptrack/pkg/report"
)

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Title    lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Bar      lipgloss.Style
	Bands    map[report.Band]lipgloss.Style
}

// DefaultTheme returns the built-in dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		Row:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Reverse(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Bands: map[report.Band]lipgloss.Style{
			report.BandLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			report.BandMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			report.BandHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		},
	}
}
