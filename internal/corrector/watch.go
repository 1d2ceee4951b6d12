package corrector

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 250 * time.Millisecond

// Watch reloads the model whenever the file at path is written, created or
// renamed into place. The parent directory is watched so editors that
// replace the file atomically are picked up. Watching stops with ctx.
func (sc *SpellCorrector) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return err
	}

	go sc.watchLoop(ctx, watcher, target)

	sc.logger.Info("watching dictionary for changes", "path", target)
	return nil
}

func (sc *SpellCorrector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string) {
	defer func() {
		if err := watcher.Close(); err != nil {
			sc.logger.Error("failed to close watcher", "err", err)
		}
	}()

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isDictionaryChange(event, target) {
				continue
			}
			sc.logger.Debug("dictionary change detected", "file", filepath.Base(event.Name), "op", event.Op.String())

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				if err := sc.Reload(ctx); err != nil {
					sc.logger.Error("dictionary reload failed", "err", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			sc.logger.Error("watcher error", "err", err)
		}
	}
}

func isDictionaryChange(event fsnotify.Event, target string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == target
}
