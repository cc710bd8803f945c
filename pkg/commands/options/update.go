package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ParseDeltas parses "Name=delta" arguments. Repeated names are summed.
func ParseDeltas(args []string) (map[string]int, error) {
	if len(args) == 0 {
		return nil, errors.New(`requires at least one "Name=delta"`)
	}
	deltas := make(map[string]int, len(args))
	for _, a := range args {
		i := strings.LastIndex(a, "=")
		if i <= 0 {
			return nil, fmt.Errorf("update %q: want Name=delta", a)
		}
		d, err := strconv.Atoi(strings.TrimSpace(a[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("update %q: %w", a, err)
		}
		deltas[strings.TrimSpace(a[:i])] += d
	}
	return deltas, nil
}

// ResetOptions
type ResetOptions struct {
	KeepChallenges bool
}

func AddResetArgs(cmd *cobra.Command, o *ResetOptions) {
	cmd.Flags().BoolVar(&o.KeepChallenges, "keep-challenges", true,
		"Zero progress but keep the challenge definitions.")
}
