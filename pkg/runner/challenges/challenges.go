// Package challenges provides runners that define or remove the challenge set.
package challenges

import (
	"context"
	"errors"

	"tableflip.dev/xptrack/pkg/challenge"
	"tableflip.dev/xptrack/pkg/printers"
	"tableflip.dev/xptrack/pkg/tracker"
)

// Create replaces the challenge set and prints the new state.
type Create struct {
	Specs   []challenge.Spec
	SeedXP  int
	Tracker *tracker.Tracker
}

func (n *Create) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not create, no tracker")
	}
	if err := n.Tracker.CreateChallengeSet(n.Specs, n.SeedXP); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}

// Defaults installs the built-in challenge set.
type Defaults struct {
	SeedXP  int
	Tracker *tracker.Tracker
}

func (n *Defaults) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not create, no tracker")
	}
	if err := n.Tracker.UseDefaultChallenges(n.SeedXP); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}

// ErrNothingToClear is returned when clearing an empty set without Force.
var ErrNothingToClear = errors.New("no challenges to clear, use --force to record the clear anyway")

// Clear removes every challenge. Progress and history are kept.
type Clear struct {
	Force   bool
	Tracker *tracker.Tracker
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not clear, no tracker")
	}
	if !n.Force && n.Tracker.Summary().ChallengeCount == 0 {
		return ErrNothingToClear
	}
	if err := n.Tracker.ClearChallenges(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.State(n.Tracker)
	return nil
}
