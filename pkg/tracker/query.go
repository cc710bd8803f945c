package tracker

import (
	"tableflip.dev/xptrack/pkg/challenge"
	"tableflip.dev/xptrack/pkg/history"
)

// Summary is the goal-level view of the tracker.
type Summary struct {
	TotalXP         int     `json:"total_xp" yaml:"total_xp"`
	XPGoal          int     `json:"xp_goal" yaml:"xp_goal"`
	RemainingXP     int     `json:"remaining_xp" yaml:"remaining_xp"`
	ProgressPercent float64 `json:"progress_percent" yaml:"progress_percent"`
	ChallengeCount  int     `json:"challenge_count" yaml:"challenge_count"`
	// Decoupled is true while the total differs from the challenge sum.
	Decoupled bool `json:"decoupled" yaml:"decoupled"`
}

// ProgressRow is the per-challenge view used by tables and charts.
type ProgressRow struct {
	Name              string  `json:"name" yaml:"name"`
	CompletionPercent float64 `json:"completion_percent" yaml:"completion_percent"`
	XPEarned          int     `json:"xp_earned" yaml:"xp_earned"`
	Completions       int     `json:"completions" yaml:"completions"`
	CurrentProgress   int     `json:"current_progress" yaml:"current_progress"`
	Required          int     `json:"required" yaml:"required"`
	ProgressLabel     string  `json:"progress_label" yaml:"progress_label"`
}

// Summary reports the total against the goal.
func (t *Tracker) Summary() Summary {
	s := Summary{
		TotalXP:        t.totalXP,
		XPGoal:         t.xpGoal,
		ChallengeCount: t.challenges.Len(),
		Decoupled:      t.Decoupled(),
	}
	if remaining := t.xpGoal - t.totalXP; remaining > 0 {
		s.RemainingXP = remaining
	}
	if t.xpGoal > 0 {
		s.ProgressPercent = float64(t.totalXP) / float64(t.xpGoal) * 100
		if s.ProgressPercent > 100 {
			s.ProgressPercent = 100
		}
	}
	return s
}

// ProgressRows reports every challenge in insertion order.
func (t *Tracker) ProgressRows() []ProgressRow {
	all := t.challenges.All()
	rows := make([]ProgressRow, 0, len(all))
	for _, c := range all {
		rows = append(rows, ProgressRow{
			Name:              c.Name,
			CompletionPercent: c.CompletionPercent(),
			XPEarned:          c.Earned(),
			Completions:       c.Completions,
			CurrentProgress:   c.Remainder,
			Required:          c.Required,
			ProgressLabel:     c.ProgressLabel,
		})
	}
	return rows
}

func (t *Tracker) TotalXP() int {
	return t.totalXP
}

func (t *Tracker) XPGoal() int {
	return t.xpGoal
}

// DerivedXP is the sum of XP earned by every challenge.
func (t *Tracker) DerivedXP() int {
	total := 0
	for _, c := range t.challenges.All() {
		total += c.Earned()
	}
	return total
}

// Decoupled reports whether the total was seeded or overridden and no longer
// matches DerivedXP.
func (t *Tracker) Decoupled() bool {
	return t.totalXP != t.DerivedXP()
}

// Challenges returns copies of the challenges in insertion order.
func (t *Tracker) Challenges() []challenge.Challenge {
	all := t.challenges.All()
	out := make([]challenge.Challenge, len(all))
	for i, c := range all {
		out[i] = *c
	}
	return out
}

// Challenge returns a copy of the named challenge.
func (t *Tracker) Challenge(name string) (challenge.Challenge, bool) {
	c, ok := t.challenges.Get(name)
	if !ok {
		return challenge.Challenge{}, false
	}
	return *c, true
}

// History returns a copy of the action log, oldest first.
func (t *Tracker) History() []history.Record {
	return append([]history.Record(nil), t.history...)
}
