package why

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// Cmd represents the why command.
var Cmd = NewCommand()

// NewCommand returns a new why command instance.
func NewCommand() *cobra.Command {
	opts := &graph.Options{}

	cmd := &cobra.Command{
		Use:   "why <entity> <entity>...",
		Short: "Show the dependency paths between entities",
		Long: `Build the dependency graph and keep only the edges that lie on a path
between two of the given entities, in either direction. Entities are named as
they appear in the graph output, after filters and --prefix are applied.

Examples:
  srcdep why src/app.ts src/util/log.ts
  srcdep why -l java --depth 3 com/acme/web com/acme/db -f dot`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd, nil)
			if err != nil {
				return err
			}
			if _, err := graph.NewFormatter(cfg.OutputFormat); err != nil {
				return err
			}

			analysis, err := graph.Analyze(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			keep := depgraph.FindPathEdges(analysis.Data.FlatDependencies, args)
			if len(keep) == 0 {
				return fmt.Errorf("no dependency path between %s", strings.Join(args, ", "))
			}
			analysis.Data = analysis.Data.Subgraph(keep)

			_, output, err := graph.Render(analysis, cfg)
			if err != nil {
				return err
			}
			return graph.WriteOutput(cmd, cfg, output)
		},
	}

	opts.BindAnalysisFlags(cmd)
	opts.BindRenderFlags(cmd)

	return cmd
}
