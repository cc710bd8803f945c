// Package progress provides runners that change challenge progress or the
// total directly.
package progress

import (
	"context"
	"errors"

	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/tracker"
)

// Update applies signed deltas to challenges by name.
type Update struct {
	Deltas  map[string]int
	Tracker *tracker.Tracker
}

func (n *Update) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not update, no tracker")
	}
	if err := n.Tracker.UpdateProgress(n.Deltas); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}

// Reset zeroes progress, optionally dropping the challenges too.
type Reset struct {
	KeepChallenges bool
	Tracker        *tracker.Tracker
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not reset, no tracker")
	}
	if err := n.Tracker.ResetProgress(n.KeepChallenges); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}

// Total overrides the total XP, either absolutely or by a delta.
type Total struct {
	Value    int
	Relative bool
	Tracker  *tracker.Tracker
}

func (n *Total) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not set total, no tracker")
	}
	var err error
	if n.Relative {
		err = n.Tracker.AdjustTotalXP(n.Value)
	} else {
		err = n.Tracker.SetTotalXP(n.Value)
	}
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}
