package graph

import (
	"github.com/spf13/cobra"
)

// Cmd represents the graph command
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "graph [target]",
		Short: "Render the dependency graph of a source tree",
		Long: `Scan a directory (or a single file) with the language plugins, run the
filter pipeline and render the resulting dependency graph.

Settings are read from defaults, then --config, then SRCDEP_* environment
variables (a .env file is loaded first), then flags.

Examples:
  srcdep graph                                  # plain text for the current directory
  srcdep graph ./web -l typescript -f dot       # Graphviz DOT
  srcdep graph -f vis -o graph.html             # self-contained HTML page
  srcdep graph -l java --depth 3 -x             # Java packages, three levels deep
  srcdep graph --filter -test --root ^src/main  # drop tests, keep what main reaches
  srcdep graph -f mermaid -u                    # mermaid.live URL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd, args)
			if err != nil {
				return err
			}
			if _, err := NewFormatter(cfg.OutputFormat); err != nil {
				return err
			}

			analysis, err := Analyze(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			formatter, output, err := Render(analysis, cfg)
			if err != nil {
				return err
			}
			return emitOutput(cmd, opts, cfg, formatter, output)
		},
	}

	opts.BindAnalysisFlags(cmd)
	opts.BindOutputFlags(cmd)

	return cmd
}
