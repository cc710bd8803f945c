// Package history holds the append-only audit log of tracker actions. Records
// are informational only and never replayed to rebuild state.
package history

import (
	"time"

	"tableflip.dev/xptrack/pkg/challenge"
)

// Action names the kind of tracker mutation a record describes.
type Action string

const (
	ActionClearChallenges  Action = "clear_challenges"
	ActionReset            Action = "reset"
	ActionCreateChallenges Action = "create_challenges"
	ActionUpdate           Action = "update"
	ActionSetGoal          Action = "set_goal"
	// ActionSetTotalXP marks a manual total override, which decouples the
	// total from the challenge sum until the next update.
	ActionSetTotalXP Action = "set_total_xp"
)

// Record is one history entry. Only the fields relevant to Action are set.
type Record struct {
	Action    Action    `json:"action"`
	Timestamp Timestamp `json:"timestamp"`

	KeepChallenges *bool            `json:"keep_challenges,omitempty"`
	Challenges     []challenge.Spec `json:"challenges,omitempty"`
	EarnedXP       *int             `json:"earned_xp,omitempty"`
	Updates        map[string]int   `json:"updates,omitempty"`
	Goal           *int             `json:"goal,omitempty"`
	TotalXP        *int             `json:"total_xp,omitempty"`
}

func ClearChallenges(at time.Time) Record {
	return Record{Action: ActionClearChallenges, Timestamp: Stamp(at)}
}

func Reset(at time.Time, keepChallenges bool) Record {
	return Record{Action: ActionReset, Timestamp: Stamp(at), KeepChallenges: &keepChallenges}
}

func CreateChallenges(at time.Time, specs []challenge.Spec, earnedXP int) Record {
	var cp []challenge.Spec
	if len(specs) > 0 {
		cp = append(cp, specs...)
	}
	return Record{
		Action:     ActionCreateChallenges,
		Timestamp:  Stamp(at),
		Challenges: cp,
		EarnedXP:   &earnedXP,
	}
}

func Update(at time.Time, updates map[string]int) Record {
	var cp map[string]int
	if len(updates) > 0 {
		cp = make(map[string]int, len(updates))
		for k, v := range updates {
			cp[k] = v
		}
	}
	return Record{Action: ActionUpdate, Timestamp: Stamp(at), Updates: cp}
}

func SetGoal(at time.Time, goal int) Record {
	return Record{Action: ActionSetGoal, Timestamp: Stamp(at), Goal: &goal}
}

func SetTotalXP(at time.Time, total int) Record {
	return Record{Action: ActionSetTotalXP, Timestamp: Stamp(at), TotalXP: &total}
}

// Filter returns the records with the given action, oldest first.
func Filter(records []Record, action Action) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Action == action {
			out = append(out, r)
		}
	}
	return out
}

// Last returns the most recent record, if any.
func Last(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	return records[len(records)-1], true
}
