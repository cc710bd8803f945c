package options

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	YAML bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func AddOutputArgs(cmd *cobra.Command, po *OutputOptions) {
	AddOutputArg(cmd, po)
	cmd.Flags().BoolVar(&po.YAML, "yaml", false,
		"Output as YAML.")
}

func (o *OutputOptions) Validate() error {
	if o.JSON && o.YAML {
		return errors.New("--json and --yaml are mutually exclusive")
	}
	return nil
}

// Format returns "json", "yaml" or "" for pretty output.
func (o *OutputOptions) Format() string {
	switch {
	case o.JSON:
		return "json"
	case o.YAML:
		return "yaml"
	default:
		return ""
	}
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
