package commands

import (
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/xptrack/pkg/commands/options"
	"tableflip.dev/xptrack/pkg/store"
	"tableflip.dev/xptrack/pkg/tracker"
)

var (
	lo     = &options.LogOptions{}
	logger = zap.NewNop()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "xptrack",
		Short: base.Wrap80("Track XP earned from repeatable challenges against a goal."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := lo.Logger()
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addChallenges(topLevel)
	addUpdate(topLevel)
	addReset(topLevel)
	addGoal(topLevel)
	addXP(topLevel)
	addSummary(topLevel)
	addProgress(topLevel)
	addHistory(topLevel)
	addReport(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

type session struct {
	config      store.Config
	persistence store.Persistence
	tracker     *tracker.Tracker
}

// open loads the config, the store and the saved tracker state. A state that
// can not be read leaves the tracker on defaults.
func open() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	policy := tracker.IgnoreUnknown
	if cfg.Strict() {
		policy = tracker.RejectUnknown
	}
	t, err := tracker.Open(p, tracker.WithLogger(logger), tracker.WithUnknownPolicy(policy))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.Debug("continuing with defaults", zap.String("document", p.Location()))
	}
	return &session{config: cfg, persistence: p, tracker: t}, nil
}
