package tracker

import (
	"fmt"
	"strings"
)

// ValidationError reports input that would break a tracker invariant. The
// tracker is left unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tracker: invalid %s: %s", e.Field, e.Reason)
}

// UnknownChallengeError is returned by UpdateProgress under RejectUnknown when
// the batch names challenges that do not exist.
type UnknownChallengeError struct {
	Names []string
}

func (e *UnknownChallengeError) Error() string {
	return fmt.Sprintf("tracker: unknown challenge(s): %s", strings.Join(e.Names, ", "))
}
