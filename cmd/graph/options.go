package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/internal/config"
	"github.com/LegacyCodeHQ/srcdep/internal/logging"
)

// Options holds the raw flag values of a command. Resolve layers them over
// the config file and environment.
type Options struct {
	ConfigFile      string
	GenerateURL     bool
	CopyToClipboard bool

	flags       config.Config
	langOptions []string
}

type binding struct {
	name  string
	apply func(cfg *config.Config, flags *config.Config)
}

// bindings copy a flag value into the config only when the flag was set on
// the command line.
var bindings = []binding{
	{"language", func(c, f *config.Config) { c.Language = f.Language }},
	{"target", func(c, f *config.Config) { c.Target = f.Target }},
	{"format", func(c, f *config.Config) { c.OutputFormat = f.OutputFormat }},
	{"output", func(c, f *config.Config) { c.OutputFile = f.OutputFile }},
	{"input-filter", func(c, f *config.Config) { c.InputFilters = f.InputFilters }},
	{"filter", func(c, f *config.Config) { c.ResultFilters = f.ResultFilters }},
	{"root", func(c, f *config.Config) { c.RootFilters = f.RootFilters }},
	{"map", func(c, f *config.Config) { c.InputPathMapping = f.InputPathMapping }},
	{"prefix", func(c, f *config.Config) { c.Prefix = f.Prefix }},
	{"depth", func(c, f *config.Config) { c.Depth = f.Depth }},
	{"exclude-external", func(c, f *config.Config) { c.ExcludeExternal = f.ExcludeExternal }},
	{"exclude-well-known-folders", func(c, f *config.Config) {
		c.ExcludeWellKnownAuxiliaryFolders = f.ExcludeWellKnownAuxiliaryFolders
	}},
	{"force-path", func(c, f *config.Config) { c.ForceShowingPathDependency = f.ForceShowingPathDependency }},
	{"strict", func(c, f *config.Config) { c.StrictMatching = f.StrictMatching }},
	{"strict-cycles", func(c, f *config.Config) { c.StrictCycles = f.StrictCycles }},
	{"cache", func(c, f *config.Config) { c.CacheFile = f.CacheFile }},
	{"progress-step", func(c, f *config.Config) { c.ProgressStep = f.ProgressStep }},
}

// BindAnalysisFlags registers the flags that shape the scan and the filter
// pipeline.
func (o *Options) BindAnalysisFlags(cmd *cobra.Command) {
	defaults := config.Default()
	flags := cmd.Flags()

	flags.StringVar(&o.ConfigFile, "config", "", "Config file (YAML or JSON)")
	flags.StringVarP(&o.flags.Language, "language", "l", defaults.Language, "Language plugin to use, or auto to dispatch by extension")
	flags.StringVarP(&o.flags.Target, "target", "t", defaults.Target, "Directory or file to scan")
	flags.StringArrayVar(&o.flags.InputFilters, "input-filter", nil, "Filter scanned paths (repeatable, prefix - to exclude)")
	flags.StringArrayVar(&o.flags.ResultFilters, "filter", nil, "Filter graph entities (repeatable, prefix - to exclude)")
	flags.StringArrayVar(&o.flags.RootFilters, "root", nil, "Keep only entities reachable from matching roots (repeatable)")
	flags.StringArrayVar(&o.flags.InputPathMapping, "map", nil, "Remap unresolved references, from=to (repeatable)")
	flags.StringVar(&o.flags.Prefix, "prefix", "", "Strip this prefix from entity names")
	flags.StringVar(&o.flags.Depth, "depth", "", "Truncate names to depth (internal[,external])")
	flags.BoolVarP(&o.flags.ExcludeExternal, "exclude-external", "x", false, "Drop dependencies that resolve to no scanned file")
	flags.BoolVar(&o.flags.ExcludeWellKnownAuxiliaryFolders, "exclude-well-known-folders", defaults.ExcludeWellKnownAuxiliaryFolders, "Skip .git and node_modules")
	flags.BoolVar(&o.flags.ForceShowingPathDependency, "force-path", false, "Show path dependencies even when module dependencies exist")
	flags.BoolVar(&o.flags.StrictMatching, "strict", false, "Resolve references only to exact file names")
	flags.StringVar(&o.flags.CacheFile, "cache", "", "Read the scan result from this file if present, write it otherwise")
	flags.IntVar(&o.flags.ProgressStep, "progress-step", defaults.ProgressStep, "Progress reporting granularity in percent")
	flags.StringArrayVar(&o.langOptions, "lang-opt", nil, "Language plugin option key=value (repeatable)")
}

// BindCycleFlags registers the cycle detection flags.
func (o *Options) BindCycleFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.flags.StrictCycles, "strict-cycles", false, "Report strongly connected components instead of greedy cycles")
}

// BindRenderFlags registers the output format and destination flags.
func (o *Options) BindRenderFlags(cmd *cobra.Command) {
	defaults := config.Default()
	flags := cmd.Flags()

	flags.StringVarP(&o.flags.OutputFormat, "format", "f", defaults.OutputFormat, fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	flags.StringVarP(&o.flags.OutputFile, "output", "o", "", "Write output to this file instead of stdout")
}

// BindOutputFlags registers the render flags plus URL and clipboard output.
func (o *Options) BindOutputFlags(cmd *cobra.Command) {
	o.BindRenderFlags(cmd)

	flags := cmd.Flags()
	flags.BoolVarP(&o.GenerateURL, "url", "u", false, "Generate visualization URL (supported formats: dot, mermaid)")
	flags.BoolVarP(&o.CopyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")
}

// Resolve builds the effective config: defaults, then the config file, then
// SRCDEP_* variables (including a .env file), then flags set on the command
// line. A positional argument overrides the target.
func (o *Options) Resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()

	if o.ConfigFile != "" {
		if err := config.LoadFile(cfg, o.ConfigFile); err != nil {
			return nil, err
		}
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, nil); err != nil {
		return nil, err
	}

	for _, b := range bindings {
		if cmd.Flags().Changed(b.name) {
			b.apply(cfg, &o.flags)
		}
	}
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		cfg.Debug = f.Value.String() == "true"
	}
	if len(args) > 0 {
		cfg.Target = args[0]
	}

	langOptions, err := parseLanguageOptions(o.langOptions)
	if err != nil {
		return nil, err
	}
	for k, v := range langOptions {
		cfg.LanguageOptions[k] = v
	}

	if cfg.Debug {
		logging.Configure(cmd.ErrOrStderr(), true)
	}
	return cfg, nil
}

func parseLanguageOptions(pairs []string) (map[string]any, error) {
	options := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid language option %q, expected key=value", pair)
		}
		if b, err := strconv.ParseBool(value); err == nil {
			options[key] = b
		} else {
			options[key] = value
		}
	}
	return options, nil
}
