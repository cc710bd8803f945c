package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where tracker state is stored.",
		Example: `
xptrack info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open()
			if err != nil {
				return err
			}
			i := info.Info{
				Config:      s.config,
				Persistence: s.persistence,
				Tracker:     s.tracker,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
