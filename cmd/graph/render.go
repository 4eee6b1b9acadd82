package graph

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/LegacyCodeHQ/srcdep/internal/config"
)

// Render formats the analysis with the configured output format.
func Render(analysis *Analysis, cfg *config.Config) (formatters.Formatter, string, error) {
	formatter, err := NewFormatter(cfg.OutputFormat)
	if err != nil {
		return nil, "", err
	}

	format, _ := formatters.ParseOutputFormat(cfg.OutputFormat)
	var opts formatters.RenderOptions
	if format == formatters.OutputFormatDOT || format == formatters.OutputFormatMermaid {
		opts.Label = analysis.Label()
	}
	if format == formatters.OutputFormatMermaid {
		opts.Cycles = depgraph.FindCycles(analysis.Data.FlatDependencies)
	}

	output, err := formatter.Format(analysis.Data, opts)
	if err != nil {
		return nil, "", fmt.Errorf("failed to format graph: %w", err)
	}
	return formatter, output, nil
}

// WriteOutput writes output to the configured file, or to stdout.
func WriteOutput(cmd *cobra.Command, cfg *config.Config, output string) error {
	if cfg.OutputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", cfg.OutputFile, err)
	}
	slog.Debug("wrote output", "path", cfg.OutputFile, "format", cfg.OutputFormat)
	return nil
}

func emitOutput(cmd *cobra.Command, opts *Options, cfg *config.Config, formatter formatters.Formatter, output string) error {
	if opts.GenerateURL {
		if urlStr, ok := formatter.GenerateURL(output); ok {
			fmt.Fprintln(cmd.OutOrStdout(), urlStr)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: URL generation is not supported for %s format\n\n", cfg.OutputFormat)
			if err := WriteOutput(cmd, cfg, output); err != nil {
				return err
			}
		}
	} else if err := WriteOutput(cmd, cfg, output); err != nil {
		return err
	}

	if opts.CopyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "✅ Content copied to your clipboard.")
	}
	return nil
}
