package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/K4R-IAI/UROSActionLib/internal/actionpath"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
)

func targetIndex(targets []actionpath.Target) map[string]actionpath.Target {
	index := make(map[string]actionpath.Target, len(targets))
	for _, t := range targets {
		if abs, err := filepath.Abs(t.Source); err == nil {
			index[abs] = t
		}
	}
	return index
}

// watch regenerates an action whenever its definition is written or
// re-created, until ctx is cancelled. Directories are watched rather than
// files so that editors saving through rename are noticed. A new .action
// file in a watched directory triggers target re-resolution.
func (a *App) watch(ctx context.Context, targets []actionpath.Target) error {
	logger := ctxlog.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	index := targetIndex(targets)
	watched := make(map[string]struct{})
	addDirs := func() error {
		for source := range index {
			dir := filepath.Dir(source)
			if _, ok := watched[dir]; ok {
				continue
			}
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch directory %s: %w", dir, err)
			}
			watched[dir] = struct{}{}
		}
		return nil
	}
	if err := addDirs(); err != nil {
		return err
	}
	logger.Info("Watching action definitions for changes.", "directories", len(watched))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Ext(event.Name) != actionpath.Extension {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			t, known := index[name]
			if !known {
				logger.Debug("New action definition seen, re-resolving targets.", "file", name)
				fresh, err := a.targets(ctx)
				if err != nil {
					logger.Error("Failed to re-resolve targets.", "error", err)
					continue
				}
				index = targetIndex(fresh)
				if err := addDirs(); err != nil {
					logger.Error("Failed to watch new directories.", "error", err)
				}
				if t, known = index[name]; !known {
					continue
				}
			}

			logger.Debug("Action definition changed.", "event", event.Op.String(), "file", name)
			if err := a.generate(ctx, []actionpath.Target{t}); err != nil {
				logger.Error("Regeneration failed.", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("File watcher error.", "error", err)
		}
	}
}
