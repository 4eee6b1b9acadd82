package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SRCDEP_"

// ListSeparator splits list-valued environment variables. Filters are regular
// expressions, so a comma is not safe here.
const ListSeparator = ";"

// Config holds every setting of a graph run. Field names follow the config
// file keys.
type Config struct {
	ExcludeWellKnownAuxiliaryFolders bool           `yaml:"excludeWellKnownAuxiliaryFolders" json:"excludeWellKnownAuxiliaryFolders"`
	InputFilters                     []string       `yaml:"inputFilters" json:"inputFilters"`
	ExcludeExternal                  bool           `yaml:"excludeExternal" json:"excludeExternal"`
	ResultFilters                    []string       `yaml:"resultFilters" json:"resultFilters"`
	RootFilters                      []string       `yaml:"rootFilters" json:"rootFilters"`
	InputPathMapping                 []string       `yaml:"inputPathMapping" json:"inputPathMapping"`
	Prefix                           string         `yaml:"prefix" json:"prefix"`
	Language                         string         `yaml:"language" json:"language"`
	Target                           string         `yaml:"target" json:"target"`
	OutputFormat                     string         `yaml:"outputFormat" json:"outputFormat"`
	OutputFile                       string         `yaml:"outputFile" json:"outputFile"`
	ForceShowingPathDependency       bool           `yaml:"forceShowingPathDependency" json:"forceShowingPathDependency"`
	Depth                            string         `yaml:"depth" json:"depth"`
	StrictMatching                   bool           `yaml:"strictMatching" json:"strictMatching"`
	StrictCycles                     bool           `yaml:"strictCycles" json:"strictCycles"`
	CacheFile                        string         `yaml:"cacheFile" json:"cacheFile"`
	ProgressStep                     int            `yaml:"progressStep" json:"progressStep"`
	Debug                            bool           `yaml:"debug" json:"debug"`
	LanguageOptions                  map[string]any `yaml:"languageOptions" json:"languageOptions"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		ExcludeWellKnownAuxiliaryFolders: true,
		Language:                         "auto",
		Target:                           ".",
		OutputFormat:                     "plain",
		ProgressStep:                     10,
		LanguageOptions:                  map[string]any{},
	}
}

// LoadFile overlays the YAML or JSON document at path onto cfg. Keys absent
// from the document keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.LanguageOptions == nil {
		cfg.LanguageOptions = map[string]any{}
	}
	slog.Debug("loaded config file", "path", path)
	return nil
}

// LoadDotEnv loads the given .env files (".env" when none are given) into the
// process environment. Variables that are already set win, and a missing file
// is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnv overlays SRCDEP_* variables found through lookup onto cfg.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	strs := map[string]*string{
		"LANGUAGE":      &cfg.Language,
		"TARGET":        &cfg.Target,
		"OUTPUT_FORMAT": &cfg.OutputFormat,
		"OUTPUT_FILE":   &cfg.OutputFile,
		"DEPTH":         &cfg.Depth,
		"CACHE_FILE":    &cfg.CacheFile,
		"PREFIX":        &cfg.Prefix,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	lists := map[string]*[]string{
		"INPUT_FILTERS":      &cfg.InputFilters,
		"RESULT_FILTERS":     &cfg.ResultFilters,
		"ROOT_FILTERS":       &cfg.RootFilters,
		"INPUT_PATH_MAPPING": &cfg.InputPathMapping,
	}
	for name, dst := range lists {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = splitList(v)
		}
	}

	bools := map[string]*bool{
		"EXCLUDE_WELL_KNOWN_AUXILIARY_FOLDERS": &cfg.ExcludeWellKnownAuxiliaryFolders,
		"EXCLUDE_EXTERNAL":                     &cfg.ExcludeExternal,
		"FORCE_SHOWING_PATH_DEPENDENCY":        &cfg.ForceShowingPathDependency,
		"STRICT_MATCHING":                      &cfg.StrictMatching,
		"STRICT_CYCLES":                        &cfg.StrictCycles,
		"DEBUG":                                &cfg.Debug,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid value for %s%s: %q", EnvPrefix, name, v)
		}
		*dst = b
	}

	if v, ok := lookup(EnvPrefix + "PROGRESS_STEP"); ok {
		step, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid value for %sPROGRESS_STEP: %q", EnvPrefix, v)
		}
		cfg.ProgressStep = step
	}
	return nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ListSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
