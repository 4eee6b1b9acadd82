package formats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
)

// Cmd represents the formats command.
var Cmd = NewCommand()

// NewCommand returns a new formats command instance.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List all output formats",
		Long: `List all output formats accepted by --format.

Examples:
  srcdep formats`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range formatters.OutputFormats() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", f, f.Description()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
