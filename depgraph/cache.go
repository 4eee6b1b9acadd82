package depgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadDependencyInfo reads a cache file written by SaveDependencyInfo. A
// missing file reports false without an error.
func LoadDependencyInfo(path string) (*DependencyInfo, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache file %s: %w", path, err)
	}

	info := NewDependencyInfo("/")
	if err := json.Unmarshal(data, info); err != nil {
		return nil, false, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	if info.PathToModule == nil {
		info.PathToModule = make(map[string]string)
	}
	if info.ModuleToPath == nil {
		info.ModuleToPath = make(map[string]string)
	}
	if info.PathDependencies == nil {
		info.PathDependencies = NewDependencyMap()
	}
	if info.ModuleDependencies == nil {
		info.ModuleDependencies = NewDependencyMap()
	}
	if info.ModuleSeparator == "" {
		info.ModuleSeparator = "/"
	}
	return info, true, nil
}

// SaveDependencyInfo writes info as indented JSON.
func SaveDependencyInfo(path string, info *DependencyInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dependency info: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", path, err)
	}
	return nil
}
