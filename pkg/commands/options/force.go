package options

import (
	"github.com/spf13/cobra"
)

// ForceOptions
type ForceOptions struct {
	Force bool
}

func AddForceArg(cmd *cobra.Command, o *ForceOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		`Run even when there is nothing to change.`)
}
