package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/commands/options"
	"tableflip.dev/xptrack/pkg/runner/challenges"
)

func addChallenges(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "challenges",
		Aliases: []string{"challenge", "c"},
		Short:   "Define or remove the tracked challenges.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addChallengesCreate(cmd)
	addChallengesDefaults(cmd)
	addChallengesClear(cmd)

	topLevel.AddCommand(cmd)
}

func addChallengesCreate(topLevel *cobra.Command) {
	co := &options.ChallengeOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Replace the challenge set, starting every challenge at zero.",
		Example: `
xptrack challenges create --challenge "Fenix kills:2500:5" --challenge "Kobra sights:1000:2"
xptrack challenges create --file season.yaml --seed-xp 12000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			specs, err := co.Specs()
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			c := challenges.Create{
				Specs:   specs,
				SeedXP:  co.SeedXP,
				Tracker: s.tracker,
			}
			return c.Do(context.Background())
		},
	}

	options.AddChallengeArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addChallengesDefaults(topLevel *cobra.Command) {
	co := &options.ChallengeOptions{}

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Replace the challenge set with the built-in one.",
		Example: `
xptrack challenges defaults
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			c := challenges.Defaults{
				SeedXP:  co.SeedXP,
				Tracker: s.tracker,
			}
			return c.Do(context.Background())
		},
	}

	options.AddSeedArg(cmd, co)
	topLevel.AddCommand(cmd)
}

func addChallengesClear(topLevel *cobra.Command) {
	fo := &options.ForceOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every challenge. The total and history are kept.",
		Example: `
xptrack challenges clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			c := challenges.Clear{
				Force:   fo.Force,
				Tracker: s.tracker,
			}
			return c.Do(context.Background())
		},
	}

	options.AddForceArg(cmd, fo)
	topLevel.AddCommand(cmd)
}
