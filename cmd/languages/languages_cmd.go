package languages

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/depgraph/registry"
)

// Cmd represents the languages command.
var Cmd = NewCommand()

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List all language plugins and their file extensions",
		Long: `List all language plugins, the file extensions they handle, their
maturity and a short description.

Plugins marked "explicit" only run when selected with --language.

Examples:
  srcdep languages`,
		RunE: runLanguages,
	}

	return cmd
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	auto := make(map[string]bool)
	modules, err := registry.ModulesFor(registry.Auto)
	if err != nil {
		return err
	}
	for _, m := range modules {
		auto[m.Name()] = true
	}

	for _, language := range registry.SupportedLanguages() {
		line := fmt.Sprintf("%s %s (%s)", language.Maturity.Symbol(), language.Name, strings.Join(language.Extensions, ", "))
		if !auto[language.Name] {
			line += " [explicit]"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %s\n", line, language.Description); err != nil {
			return err
		}
	}

	return nil
}
