package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// ErrCyclesFound is returned when the dependency graph has at least one cycle.
var ErrCyclesFound = errors.New("dependency cycles found")

// Cmd represents the check command.
var Cmd = NewCommand()

// NewCommand returns a new check command instance.
func NewCommand() *cobra.Command {
	opts := &graph.Options{}

	cmd := &cobra.Command{
		Use:   "check [target]",
		Short: "Report dependency cycles",
		Long: `Scan a source tree like graph does and report dependency cycles.

The default detector walks the graph greedily and reports a set of cycles
whose removal leaves the graph acyclic. With --strict-cycles every strongly
connected component is reported instead.

Exits with status 2 when cycles are found.

Examples:
  srcdep check
  srcdep check ./src -l python --strict-cycles`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Resolve(cmd, args)
			if err != nil {
				return err
			}

			analysis, err := graph.Analyze(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cycles, err := detect(analysis.Data.FlatDependencies, cfg.StrictCycles)
			if err != nil {
				return err
			}
			return report(cmd, cycles, cfg.StrictCycles)
		},
	}

	opts.BindAnalysisFlags(cmd)
	opts.BindCycleFlags(cmd)

	return cmd
}

func detect(edges []depgraph.Edge, strict bool) ([][]string, error) {
	if strict {
		return depgraph.FindCycleGroups(edges)
	}
	return depgraph.FindCycles(edges), nil
}

func report(cmd *cobra.Command, cycles [][]string, strict bool) error {
	out := cmd.OutOrStdout()
	if len(cycles) == 0 {
		fmt.Fprintln(out, "No cycles found.")
		return nil
	}

	for i, cycle := range cycles {
		if strict {
			fmt.Fprintf(out, "component %d: %s\n", i+1, strings.Join(cycle, ", "))
		} else {
			fmt.Fprintf(out, "cycle %d: %s\n", i+1, strings.Join(cycle, " -> "))
		}
	}
	return fmt.Errorf("%w: %d", ErrCyclesFound, len(cycles))
}
