package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph"
	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".gradle":      true,
	".idea":        true,
	".vscode":      true,
}

// changeFilter decides which file system events trigger a rebuild.
type changeFilter struct {
	target  graph.Target
	modules []langsupport.Module
	// ignored holds absolute paths the watch itself writes.
	ignored map[string]bool
}

func newChangeFilter(target graph.Target, modules []langsupport.Module, ignored ...string) *changeFilter {
	f := &changeFilter{target: target, modules: modules, ignored: make(map[string]bool)}
	for _, path := range ignored {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			f.ignored[abs] = true
		}
	}
	return f
}

func (f *changeFilter) isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if abs, err := filepath.Abs(event.Name); err == nil && f.ignored[abs] {
		return false
	}

	rel, err := f.target.Relative(event.Name)
	if err != nil {
		return false
	}
	if f.target.File != "" {
		return rel == f.target.File
	}
	return graph.HandledByAny(f.modules, rel)
}

// watchAndRebuild calls rebuild once changes under root settle, until ctx is
// done.
func watchAndRebuild(ctx context.Context, root string, relevant func(fsnotify.Event) bool, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, root); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("file changed", "path", event.Name, "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rebuild)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return addWatchDirsWithAdder(root, watcher.Add)
}

// addWatchDirsWithAdder registers every directory under root. Directories that
// vanish during the walk are skipped.
func addWatchDirsWithAdder(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirs(watcher, path)
	}
}
