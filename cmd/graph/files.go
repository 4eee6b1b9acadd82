package graph

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

var wellKnownAuxiliaryFolders = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// CollectFiles lists the root relative files under target that one of
// modules can parse and that pass filter, in walk order.
func CollectFiles(target Target, modules []langsupport.Module, excludeAuxiliary bool, filter depgraph.TextFilter) ([]string, error) {
	if target.File != "" {
		return []string{target.File}, nil
	}

	var files []string
	err := filepath.WalkDir(target.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != target.Root && excludeAuxiliary && wellKnownAuxiliaryFolders[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := target.Relative(path)
		if err != nil {
			return err
		}
		if !HandledByAny(modules, rel) || !filter.Match(rel) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", target.Root, err)
	}
	return files, nil
}

// HandledByAny reports whether one of modules claims file.
func HandledByAny(modules []langsupport.Module, file string) bool {
	for _, m := range modules {
		if langsupport.MatchesFile(m, file) {
			return true
		}
	}
	return false
}
