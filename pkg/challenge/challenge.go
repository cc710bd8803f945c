// Package challenge defines tracked challenges and their derived progress.
package challenge

import (
	"fmt"
)

// Spec describes a challenge definition as supplied by a user.
type Spec struct {
	Name     string `json:"name" yaml:"name"`
	XP       int    `json:"xp" yaml:"xp"`
	Required int    `json:"required" yaml:"required"`
}

// Challenge is a named repeatable task that awards XP for every completion.
type Challenge struct {
	Name          string `json:"-"`
	XP            int    `json:"xp"`
	Required      int    `json:"required"`
	Input         int    `json:"input"`
	Completions   int    `json:"completions"`
	Remainder     int    `json:"remainder"`
	ProgressLabel string `json:"progress_label"`
}

// New returns a challenge with zero progress.
func New(s Spec) *Challenge {
	c := &Challenge{
		Name:     s.Name,
		XP:       s.XP,
		Required: s.Required,
	}
	c.Recompute()
	return c
}

// Spec returns the definition of c without its progress.
func (c *Challenge) Spec() Spec {
	return Spec{Name: c.Name, XP: c.XP, Required: c.Required}
}

// Add applies a signed delta to the raw input, never going below zero.
// Derived fields are refreshed.
func (c *Challenge) Add(delta int) {
	c.Input += delta
	if c.Input < 0 {
		c.Input = 0
	}
	c.Recompute()
}

// Reset zeroes progress but keeps the definition.
func (c *Challenge) Reset() {
	c.Input = 0
	c.Recompute()
}

// Recompute refreshes completions, remainder and label from Input.
func (c *Challenge) Recompute() {
	if c.Required < 1 {
		// Invalid definitions are rejected before they reach here.
		c.Completions, c.Remainder = 0, 0
		c.ProgressLabel = Label(0, c.Required, 0)
		return
	}
	c.Completions = c.Input / c.Required
	if c.Required > 1 {
		c.Remainder = c.Input % c.Required
	} else {
		c.Remainder = 0
	}
	c.ProgressLabel = Label(c.Remainder, c.Required, c.Completions)
}

// Earned is the XP awarded for the completions so far.
func (c *Challenge) Earned() int {
	return c.XP * c.Completions
}

// CompletionPercent is Input relative to Required, capped at 100.
func (c *Challenge) CompletionPercent() float64 {
	if c.Required < 1 {
		return 0
	}
	p := float64(c.Input) / float64(c.Required) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Validate checks the definition part of c.
func (c *Challenge) Validate() error {
	return c.Spec().Validate()
}

// Validate reports the first problem with s, if any.
func (s Spec) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("challenge name is required")
	case s.Required < 1:
		return fmt.Errorf("challenge %q: required must be at least 1, got %d", s.Name, s.Required)
	case s.XP < 0:
		return fmt.Errorf("challenge %q: xp must not be negative, got %d", s.Name, s.XP)
	}
	return nil
}

// Label renders progress for display, for example "2/5 (completed 2)".
func Label(remainder, required, completions int) string {
	if required > 1 {
		return fmt.Sprintf("%d/%d (completed %d)", remainder, required, completions)
	}
	return fmt.Sprintf("(completed %d)", completions)
}

func (c *Challenge) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.ProgressLabel)
}
