package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/check"
	"github.com/LegacyCodeHQ/srcdep/cmd/formats"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph"
	"github.com/LegacyCodeHQ/srcdep/cmd/languages"
	"github.com/LegacyCodeHQ/srcdep/cmd/watch"
	"github.com/LegacyCodeHQ/srcdep/cmd/why"
	"github.com/LegacyCodeHQ/srcdep/internal/logging"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srcdep",
		Short: "Extract and visualize source dependency graphs",
		Long: `srcdep scans a source tree with per-language plugins, resolves the
references between files, and renders the resulting dependency graph as text,
Graphviz DOT, DGML, Mermaid, JSON or an interactive HTML page.

Use 'srcdep --help' to see all available commands, or 'srcdep <command> --help'
for detailed information about a specific command.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Configure(cmd.ErrOrStderr(), debug)
		},
	}

	cmd.AddCommand(graph.Cmd)
	cmd.AddCommand(check.Cmd)
	cmd.AddCommand(watch.Cmd)
	cmd.AddCommand(why.Cmd)
	cmd.AddCommand(languages.Cmd)
	cmd.AddCommand(formats.Cmd)

	cmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")

	return cmd
}

// Execute runs the root command and exits with the matching status code.
// This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if errors.Is(err, check.ErrCyclesFound) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to a process status: 2 when cycles were
// found, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, check.ErrCyclesFound):
		return 2
	default:
		return 1
	}
}
