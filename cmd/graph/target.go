package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Target is the resolved scan target: the root directory every file name is
// relative to, plus the single file when the target named one.
type Target struct {
	Root string
	File string
}

// ResolveTarget turns a user supplied target path into an absolute root.
func ResolveTarget(target string) (Target, error) {
	if target == "" {
		target = "."
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return Target{}, fmt.Errorf("failed to resolve target %q: %w", target, err)
	}
	absPath = resolveSymlinks(filepath.Clean(absPath))

	info, err := os.Stat(absPath)
	if err != nil {
		return Target{}, fmt.Errorf("failed to access target %q: %w", target, err)
	}
	if info.IsDir() {
		return Target{Root: absPath}, nil
	}

	rel := filepath.Base(absPath)
	return Target{Root: filepath.Dir(absPath), File: rel}, nil
}

// Relative converts an absolute path to the slash separated, root relative
// form used in the dependency graph.
func (t Target) Relative(path string) (string, error) {
	within, rel, err := relativeTo(t.Root, path)
	if err != nil {
		return "", err
	}
	if !within {
		return "", fmt.Errorf("path must be within %q: %q", t.Root, path)
	}
	return filepath.ToSlash(rel), nil
}

// Contains reports whether path lies inside the root.
func (t Target) Contains(path string) bool {
	within, _, err := relativeTo(t.Root, path)
	return err == nil && within
}

func relativeTo(baseDir, targetPath string) (bool, string, error) {
	baseDir = resolveSymlinks(filepath.Clean(baseDir))
	targetPath = resolveSymlinks(filepath.Clean(targetPath))

	rel, err := filepath.Rel(baseDir, targetPath)
	if err != nil {
		return false, "", fmt.Errorf("failed to evaluate path %q: %w", targetPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return false, "", nil
	}
	return true, rel, nil
}

func resolveSymlinks(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
