package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/commands/options"
	"tableflip.dev/xptrack/pkg/runner/progress"
)

func addUpdate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "update Name=delta...",
		Short: "Add or remove progress on challenges by name.",
		Long: `Update applies a signed delta to each named challenge. Progress never drops
below zero. Names that are not tracked are skipped, or rejected when strict
mode is configured.`,
		Example: `
xptrack update "Fenix kills=3"
xptrack update "Fenix kills=-1" "Kobra sights=2"
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return challengeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			deltas, err := options.ParseDeltas(args)
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			u := progress.Update{
				Deltas:  deltas,
				Tracker: s.tracker,
			}
			return u.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	ro := &options.ResetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero all progress and the total.",
		Example: `
xptrack reset
xptrack reset --keep-challenges=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			r := progress.Reset{
				KeepChallenges: ro.KeepChallenges,
				Tracker:        s.tracker,
			}
			return r.Do(context.Background())
		},
	}

	options.AddResetArgs(cmd, ro)
	topLevel.AddCommand(cmd)
}
