package goal

import (
	"context"
	"errors"

	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/tracker"
)

type Goal struct {
	Goal    int
	Tracker *tracker.Tracker
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not set goal, no tracker")
	}
	if err := n.Tracker.SetXPGoal(n.Goal); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(n.Tracker.Summary())
	return nil
}
