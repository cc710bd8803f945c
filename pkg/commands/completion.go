package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(xptrack completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(xptrack completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// challengeCompletions offers "Name=" for tracked challenges matching the prefix.
func challengeCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	t, err := tracker.Open(p)
	if err != nil {
		return nil
	}
	names := make([]string, 0)
	for _, c := range t.Challenges() {
		if strings.HasPrefix(c.Name, toComplete) {
			names = append(names, c.Name+"=")
		}
	}
	return names
}
