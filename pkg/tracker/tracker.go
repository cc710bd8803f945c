// Package tracker owns challenge progress, the XP total and goal, and the
// action history. Every mutation is persisted before it returns.
package tracker

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/xptrack/pkg/challenge"
	"tableflip.dev/xptrack/pkg/history"
	"tableflip.dev/xptrack/pkg/store"
)

// DefaultXPGoal is the goal of a tracker with no saved state.
const DefaultXPGoal = store.DefaultXPGoal

// DefaultChallenges is the built-in starter set.
func DefaultChallenges() []challenge.Spec {
	return []challenge.Spec{
		{Name: "Fenix kills", XP: 2500, Required: 5},
		{Name: "Kobra sights", XP: 1000, Required: 2},
		{Name: "OKP-7 sights", XP: 1500, Required: 1},
	}
}

// Tracker holds the state for one user session. It is not safe for
// concurrent use; the single owner calls one operation at a time.
//
// The total normally equals the sum of XP earned by all challenges. Seeding
// XP at creation or overriding it with SetTotalXP/AdjustTotalXP decouples the
// two until the next UpdateProgress recomputes the total.
type Tracker struct {
	persistence store.Persistence
	log         *zap.Logger
	now         func() time.Time
	unknown     UnknownPolicy

	challenges *challenge.Set
	totalXP    int
	xpGoal     int
	history    []history.Record
}

// New returns a tracker with default state. It does not read persistence.
func New(p store.Persistence, opts ...Option) *Tracker {
	t := &Tracker{
		persistence: p,
		log:         zap.NewNop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.setDefaults()
	return t
}

// Open returns a tracker hydrated from persistence. The tracker is always
// usable; a non-nil error means saved state could not be loaded and defaults
// are in effect. store.ErrNotFound is returned on first use.
func Open(p store.Persistence, opts ...Option) (*Tracker, error) {
	t := New(p, opts...)
	return t, t.Load()
}

func (t *Tracker) setDefaults() {
	t.challenges = &challenge.Set{}
	t.totalXP = 0
	t.xpGoal = DefaultXPGoal
	t.history = nil
}

// CreateChallengeSet replaces every challenge with the given definitions, all
// at zero progress, and sets the total to seedXP.
func (t *Tracker) CreateChallengeSet(specs []challenge.Spec, seedXP int) error {
	if err := validateSpecs(specs); err != nil {
		return err
	}
	if seedXP < 0 {
		return &ValidationError{Field: "seed xp", Reason: fmt.Sprintf("must not be negative, got %d", seedXP)}
	}

	return t.mutate(func() {
		t.challenges = challenge.NewSet(specs...)
		t.totalXP = seedXP
		t.record(history.CreateChallenges(t.now(), specs, seedXP))
		t.log.Debug("created challenge set", zap.Int("challenges", len(specs)), zap.Int("seed_xp", seedXP))
	})
}

// UseDefaultChallenges installs DefaultChallenges.
func (t *Tracker) UseDefaultChallenges(seedXP int) error {
	return t.CreateChallengeSet(DefaultChallenges(), seedXP)
}

// UpdateProgress adds each delta to the named challenge's input, clamping at
// zero, then recomputes every challenge and the total. Unknown names follow
// the tracker's UnknownPolicy.
func (t *Tracker) UpdateProgress(deltas map[string]int) error {
	if unknown := t.unknownNames(deltas); len(unknown) > 0 {
		if t.unknown == RejectUnknown {
			return &UnknownChallengeError{Names: unknown}
		}
		t.log.Debug("ignoring unknown challenges", zap.Strings("names", unknown))
	}

	return t.mutate(func() {
		for name, delta := range deltas {
			if c, ok := t.challenges.Get(name); ok {
				c.Add(delta)
			}
		}
		t.recompute()
		t.record(history.Update(t.now(), deltas))
		t.log.Debug("updated progress", zap.Int("updates", len(deltas)), zap.Int("total_xp", t.totalXP))
	})
}

// ResetProgress sets the total to zero. With keepChallenges the definitions
// stay and their progress is zeroed; otherwise they are removed.
func (t *Tracker) ResetProgress(keepChallenges bool) error {
	return t.mutate(func() {
		if keepChallenges {
			for _, c := range t.challenges.All() {
				c.Reset()
			}
		} else {
			t.challenges.Clear()
		}
		t.totalXP = 0
		t.record(history.Reset(t.now(), keepChallenges))
		t.log.Debug("reset progress", zap.Bool("keep_challenges", keepChallenges))
	})
}

// ClearChallenges removes every challenge and zeroes the total. It always
// records history, so callers should skip it when there is nothing to clear.
func (t *Tracker) ClearChallenges() error {
	return t.mutate(func() {
		t.challenges.Clear()
		t.totalXP = 0
		t.record(history.ClearChallenges(t.now()))
		t.log.Debug("cleared challenges")
	})
}

// SetXPGoal replaces the goal. Any positive value is accepted.
func (t *Tracker) SetXPGoal(goal int) error {
	if goal < 1 {
		return &ValidationError{Field: "xp goal", Reason: fmt.Sprintf("must be at least 1, got %d", goal)}
	}
	return t.mutate(func() {
		t.xpGoal = goal
		t.record(history.SetGoal(t.now(), goal))
		t.log.Debug("set xp goal", zap.Int("goal", goal))
	})
}

// SetTotalXP overrides the total, decoupling it from the challenge sum.
func (t *Tracker) SetTotalXP(value int) error {
	if value < 0 {
		return &ValidationError{Field: "total xp", Reason: fmt.Sprintf("must not be negative, got %d", value)}
	}
	return t.overrideTotal(value)
}

// AdjustTotalXP adds delta to the total, clamping at zero. Like SetTotalXP it
// decouples the total from the challenge sum.
func (t *Tracker) AdjustTotalXP(delta int) error {
	value := t.totalXP + delta
	if value < 0 {
		value = 0
	}
	return t.overrideTotal(value)
}

func (t *Tracker) overrideTotal(value int) error {
	return t.mutate(func() {
		t.totalXP = value
		t.record(history.SetTotalXP(t.now(), value))
		t.log.Debug("overrode total xp", zap.Int("total_xp", value), zap.Int("derived_xp", t.DerivedXP()))
	})
}

// Save writes the whole state through persistence.
func (t *Tracker) Save() error {
	if t.persistence == nil {
		return errors.New("tracker: no persistence configured")
	}
	return t.persistence.Write(&store.Document{
		Challenges: t.challenges,
		TotalXP:    t.totalXP,
		XPGoal:     t.xpGoal,
		History:    t.history,
	})
}

// Load replaces the state with the saved document. On any failure the
// tracker falls back to defaults and the error is returned for reporting.
func (t *Tracker) Load() error {
	if t.persistence == nil {
		t.setDefaults()
		return errors.New("tracker: no persistence configured")
	}
	doc, err := t.persistence.Read()
	if err == nil {
		err = validateDocument(doc)
	}
	if err != nil {
		t.setDefaults()
		if !errors.Is(err, store.ErrNotFound) {
			t.log.Warn("could not load saved state, using defaults", zap.Error(err))
		}
		return err
	}

	if doc.Challenges == nil {
		doc.Challenges = &challenge.Set{}
	}
	for _, c := range doc.Challenges.All() {
		c.Recompute()
	}
	t.challenges = doc.Challenges
	t.totalXP = doc.TotalXP
	t.xpGoal = doc.XPGoal
	t.history = doc.History
	t.log.Debug("loaded state",
		zap.Int("challenges", t.challenges.Len()),
		zap.Int("total_xp", t.totalXP),
		zap.Int("history", len(t.history)))
	return nil
}

// mutate applies fn and persists the result. If saving fails the previous
// state is restored so no partial mutation is observable.
func (t *Tracker) mutate(fn func()) error {
	prevSet := t.challenges.Clone()
	prevTotal, prevGoal, prevHistory := t.totalXP, t.xpGoal, len(t.history)

	fn()

	if err := t.Save(); err != nil {
		t.challenges = prevSet
		t.totalXP, t.xpGoal = prevTotal, prevGoal
		t.history = t.history[:prevHistory]
		return fmt.Errorf("tracker: save: %w", err)
	}
	return nil
}

func (t *Tracker) record(r history.Record) {
	t.history = append(t.history, r)
}

func (t *Tracker) recompute() {
	for _, c := range t.challenges.All() {
		c.Recompute()
	}
	t.totalXP = t.DerivedXP()
}

func (t *Tracker) unknownNames(deltas map[string]int) []string {
	var unknown []string
	for name := range deltas {
		if _, ok := t.challenges.Get(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func validateSpecs(specs []challenge.Spec) error {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return &ValidationError{Field: "challenge", Reason: err.Error()}
		}
		if seen[s.Name] {
			return &ValidationError{Field: "challenge", Reason: fmt.Sprintf("duplicate name %q", s.Name)}
		}
		seen[s.Name] = true
	}
	return nil
}

func validateDocument(doc *store.Document) error {
	if doc.XPGoal < 1 {
		return &ValidationError{Field: "xp goal", Reason: fmt.Sprintf("saved goal %d is not positive", doc.XPGoal)}
	}
	if doc.TotalXP < 0 {
		return &ValidationError{Field: "total xp", Reason: fmt.Sprintf("saved total %d is negative", doc.TotalXP)}
	}
	for _, c := range doc.Challenges.All() {
		if err := c.Validate(); err != nil {
			return &ValidationError{Field: "challenge", Reason: err.Error()}
		}
		if c.Input < 0 {
			return &ValidationError{Field: "challenge", Reason: fmt.Sprintf("%q has negative input %d", c.Name, c.Input)}
		}
	}
	return nil
}
