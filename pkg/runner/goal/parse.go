package goal

import (
	"fmt"
	"strconv"
	"strings"
)

// The interactive surfaces accept goals in this range. The tracker itself
// only requires a positive goal.
const (
	MinGoal = 1000
	MaxGoal = 1000000
)

// Parse parses a goal within [MinGoal, MaxGoal].
func Parse(v string) (int, error) {
	goal, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("goal %q is not a number", v)
	}
	if goal < MinGoal || goal > MaxGoal {
		return 0, fmt.Errorf("goal must be between %d and %d, got %d", MinGoal, MaxGoal, goal)
	}
	return goal, nil
}
