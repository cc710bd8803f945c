// Package get provides read-only runners over the tracker state.
package get

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/tracker"
)

// Summary prints the total against the goal.
type Summary struct {
	// Format is "json", "yaml" or "" for pretty output.
	Format  string
	Tracker *tracker.Tracker
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not get, no tracker")
	}
	if n.Format != "" {
		return printers.Structured(color.Output, n.Format, n.Tracker.Summary())
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(n.Tracker.Summary())
	return nil
}

// Progress prints one row per challenge.
type Progress struct {
	Format  string
	Tracker *tracker.Tracker
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not get, no tracker")
	}
	rows := n.Tracker.ProgressRows()
	if n.Format != "" {
		return printers.Structured(color.Output, n.Format, rows)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Rows(rows)
	return nil
}

// History prints the action log, optionally as a calendar of update days.
type History struct {
	JSON     bool
	Calendar bool
	Now      func() time.Time
	Tracker  *tracker.Tracker
}

func (n *History) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not get, no tracker")
	}
	records := n.Tracker.History()
	if n.JSON {
		return printers.Structured(color.Output, "json", records)
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	if n.Calendar {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		pp.Title("Updates")
		pp.Tracking(now(), records...)
		return nil
	}
	pp.History(records)
	return nil
}
