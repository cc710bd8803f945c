package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal <xp>",
		Short: fmt.Sprintf("Set the XP goal, between %d and %d.", goal.MinGoal, goal.MaxGoal),
		Example: `
xptrack goal 75000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			g, err := goal.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			r := goal.Goal{
				Goal:    g,
				Tracker: s.tracker,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
