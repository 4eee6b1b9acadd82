package graph

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/LegacyCodeHQ/srcdep/depgraph/registry"
	"github.com/LegacyCodeHQ/srcdep/internal/config"
)

// Analysis is the outcome of one scan and pipeline run.
type Analysis struct {
	Target Target
	// Files is nil when the scan result came from the cache file.
	Files []string
	Data  *depgraph.DependencyData
}

// Analyze scans the configured target, or loads the cache file, and runs the
// filter pipeline. Control messages go to progress.
func Analyze(cfg *config.Config, progress io.Writer) (*Analysis, error) {
	modules, err := registry.ModulesFor(cfg.Language)
	if err != nil {
		return nil, err
	}

	target, err := ResolveTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	pipeline, err := pipelineOptions(cfg)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{Target: target}
	info, cached, err := loadCache(cfg)
	if err != nil {
		return nil, err
	}

	if !cached {
		inputFilter, err := depgraph.ParseTextFilter(cfg.InputFilters)
		if err != nil {
			return nil, fmt.Errorf("invalid input filter: %w", err)
		}
		mappings, err := depgraph.ParsePathMappings(cfg.InputPathMapping)
		if err != nil {
			return nil, err
		}

		files, err := CollectFiles(target, modules, cfg.ExcludeWellKnownAuxiliaryFolders, inputFilter)
		if err != nil {
			return nil, err
		}
		analysis.Files = files
		fmt.Fprintf(progress, "processing %d files...\n", len(files))

		info, err = depgraph.BuildDependencyInfo(modules, depgraph.ScanOptions{
			RootDir:         target.Root,
			Files:           files,
			StrictMatch:     cfg.StrictMatching,
			NameResolver:    depgraph.NameResolver(mappings),
			LanguageOptions: cfg.LanguageOptions,
			Progress: func(current, total int) {
				fmt.Fprintf(progress, "processing progress: %d / %d\n", current, total)
			},
			ProgressStep: cfg.ProgressStep,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build dependency info: %w", err)
		}

		if cfg.CacheFile != "" {
			if err := depgraph.SaveDependencyInfo(cfg.CacheFile, info); err != nil {
				return nil, err
			}
			slog.Debug("wrote cache file", "path", cfg.CacheFile)
		}
	}

	data, err := depgraph.BuildDependencyData(info, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency data: %w", err)
	}
	analysis.Data = data
	return analysis, nil
}

func loadCache(cfg *config.Config) (*depgraph.DependencyInfo, bool, error) {
	if cfg.CacheFile == "" {
		return nil, false, nil
	}
	info, ok, err := depgraph.LoadDependencyInfo(cfg.CacheFile)
	if err != nil {
		return nil, false, err
	}
	if ok {
		slog.Debug("loaded scan result from cache", "path", cfg.CacheFile)
	}
	return info, ok, nil
}

func pipelineOptions(cfg *config.Config) (depgraph.PipelineOptions, error) {
	resultFilter, err := depgraph.ParseTextFilter(cfg.ResultFilters)
	if err != nil {
		return depgraph.PipelineOptions{}, fmt.Errorf("invalid result filter: %w", err)
	}
	rootFilter, err := depgraph.ParseTextFilter(cfg.RootFilters)
	if err != nil {
		return depgraph.PipelineOptions{}, fmt.Errorf("invalid root filter: %w", err)
	}
	depth, err := depgraph.ParseDepth(cfg.Depth)
	if err != nil {
		return depgraph.PipelineOptions{}, err
	}
	if !depth.IsZero() {
		slog.Debug("truncating entity names", "depth", depth.String())
	}

	return depgraph.PipelineOptions{
		Normalize: depgraph.NormalizeOptions{
			ExcludeExternal: cfg.ExcludeExternal,
			ResultFilter:    resultFilter,
			RootFilter:      rootFilter,
			Prefix:          cfg.Prefix,
			Depth:           depth,
		},
		ForcePathView: cfg.ForceShowingPathDependency,
	}, nil
}

// Label names the graph after the target directory and the scanned file count.
func (a *Analysis) Label() string {
	label := filepath.Base(a.Target.Root)
	switch n := len(a.Files); {
	case a.Files == nil:
		return label
	case n == 1:
		return fmt.Sprintf("%s • %d file", label, n)
	default:
		return fmt.Sprintf("%s • %d files", label, n)
	}
}
