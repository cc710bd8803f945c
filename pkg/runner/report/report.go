package report

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/report"
	"tableflip.dev/xptrack/pkg/tracker"
)

// Report renders the completion chart, the goal gauge and recent activity.
type Report struct {
	Window  time.Duration
	Format  string
	Now     func() time.Time
	Tracker *tracker.Tracker
}

func (n *Report) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not report, no tracker")
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	r := report.Build(n.Tracker, now(), n.Window)
	if n.Format != "" {
		return printers.Structured(color.Output, n.Format, r)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(r.Summary)
	pp.Completion(r.Completion)
	pp.Gauge(r.Gauge)
	pp.Activity(r.Activity, r.Window)
	return nil
}
