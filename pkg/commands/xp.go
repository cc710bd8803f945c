package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/runner/progress"
)

func addXP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Override the total XP until the next update.",
		Long: `The total normally follows the challenges. Setting it by hand keeps the value
until the next update recomputes it from the challenges.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addXPTotal(cmd, "set <xp>", "Set the total XP.", `
xptrack xp set 12000
`, false)
	addXPTotal(cmd, "add <delta>", "Adjust the total XP by a signed delta.", `
xptrack xp add 500
xptrack xp add -- -500
`, true)

	topLevel.AddCommand(cmd)
}

func addXPTotal(topLevel *cobra.Command, use, short, example string, relative bool) {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("xp %q is not a number", args[0])
			}
			s, err := open()
			if err != nil {
				return err
			}
			t := progress.Total{
				Value:    v,
				Relative: relative,
				Tracker:  s.tracker,
			}
			return t.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
