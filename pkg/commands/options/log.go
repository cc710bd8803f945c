package options

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// LogOptions
type LogOptions struct {
	Verbose bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log tracker activity at debug level.")
}

// Logger builds the production logger, at debug level when verbose.
func (o *LogOptions) Logger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if o.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
