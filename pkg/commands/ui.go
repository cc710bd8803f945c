package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/runner/dashboard"
	"tableflip.dev/xptrack/pkg/timeutil"
)

func addUI(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive dashboard",
		Example: `
xptrack ui
xptrack ui --last 1w
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, _, err := timeutil.ParseWindow(last)
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			d := dashboard.Dashboard{
				Window:      duration,
				Persistence: s.persistence,
				Tracker:     s.tracker,
				Log:         logger,
			}
			return d.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "activity window to chart (for example 3d, 1w)")
	topLevel.AddCommand(cmd)
}
