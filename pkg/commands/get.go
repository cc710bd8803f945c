package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/commands/options"
	"tableflip.dev/xptrack/pkg/runner/get"
)

func addSummary(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the total XP against the goal.",
		Example: `
xptrack summary
xptrack summary --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := oo.Validate(); err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Summary{
				Format:  oo.Format(),
				Tracker: s.tracker,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProgress(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "progress",
		Aliases: []string{"status", "ls"},
		Short:   "Show progress for every challenge.",
		Example: `
xptrack progress
xptrack progress --yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := oo.Validate(); err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Progress{
				Format:  oo.Format(),
				Tracker: s.tracker,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOutputArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addHistory(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	calendar := false

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show every recorded action, oldest first.",
		Example: `
xptrack history
xptrack history --calendar
xptrack history --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.History{
				JSON:     oo.JSON,
				Calendar: calendar,
				Tracker:  s.tracker,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Show this month with update days highlighted.")
	topLevel.AddCommand(cmd)
}
