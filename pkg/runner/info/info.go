package info

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Tracker     *tracker.Tracker
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output

	if override := store.ConfigPathOverride(); override != "" {
		_, _ = fmt.Fprintln(out, "XPTRACK_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "XPTRACK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(out, "Config file:", file)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.strict:", n.Config.Strict())

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}
	_, _ = fmt.Fprintln(out, "Document:", n.Persistence.Location())

	if n.Tracker != nil {
		s := n.Tracker.Summary()
		_, _ = fmt.Fprintf(out, "Challenges: %d\n", s.ChallengeCount)
		_, _ = fmt.Fprintf(out, "History: %d records\n", len(n.Tracker.History()))
	}
	return nil
}
