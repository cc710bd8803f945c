package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/commands/options"
	"tableflip.dev/xptrack/pkg/runner/report"
	"tableflip.dev/xptrack/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display challenge completion, the goal gauge and recent activity",
		Long: `Report charts completion per challenge, progress toward the goal, and an
estimate of XP earned per day within the specified time window.

Activity is estimated from the number of updates each day, since history does
not record the XP of each update.`,
		Example: `
xptrack report
xptrack report --last 3d
xptrack report --last 1w2d --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := oo.Validate(); err != nil {
				return err
			}
			duration, _, err := timeutil.ParseWindow(last)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			r := report.Report{
				Window:  duration,
				Format:  oo.Format(),
				Tracker: s.tracker,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w)")
	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
