package tracker

import (
	"time"

	"go.uber.org/zap"
)

// UnknownPolicy decides what UpdateProgress does with names that are not in
// the current challenge set.
type UnknownPolicy int

const (
	// IgnoreUnknown skips unknown names silently. This is the default.
	IgnoreUnknown UnknownPolicy = iota
	// RejectUnknown refuses the whole batch before anything is applied.
	RejectUnknown
)

func (p UnknownPolicy) String() string {
	switch p {
	case IgnoreUnknown:
		return "ignore"
	case RejectUnknown:
		return "reject"
	default:
		return "unknown"
	}
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithUnknownPolicy selects how unknown challenge names are handled.
func WithUnknownPolicy(p UnknownPolicy) Option {
	return func(t *Tracker) {
		t.unknown = p
	}
}
