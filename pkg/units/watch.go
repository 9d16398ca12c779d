package units

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/uframe-io/uframe/pkg/log"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the definitions file at path whenever it changes on disk.
// It loads the file once up front, then blocks until ctx is done. A reload
// that fails to parse keeps the previous definitions and logs the error.
//
// The parent directory is watched rather than the file itself, because
// editors typically replace the file and would otherwise drop the watch.
func (r *Registry) Watch(ctx context.Context, path string, logger log.Logger) error {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)

	reload := func() {
		if err := r.LoadDefinitionsFile(path); err != nil {
			logger.Error("reload unit definitions", log.String("path", path), log.Err(err))
			return
		}
		logger.Info("unit definitions loaded", log.String("path", path))
	}
	reload()

	var mu sync.Mutex
	var debounce *time.Timer
	defer func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, reload)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("definitions watcher", log.Err(err))
		}
	}
}
