package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/daybound/internal/cliconfig"
	"github.com/bft-labs/daybound/pkg/log"
)

// reloadLoop watches the config file's directory and applies a debounced
// zone-list reload when the file is written or recreated.
func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()

	dir := filepath.Dir(w.configPath)
	base := filepath.Base(w.configPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("config reload disabled: failed to create watcher", log.Err(err))
		return
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		w.logger.Error("config reload disabled: failed to watch directory",
			log.String("dir", dir), log.Err(err))
		return
	}

	w.logger.Debug("watching config file", log.String("path", w.configPath))

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload()

		case <-w.reloadCh:
			w.applyReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", log.Err(err))
		}
	}
}

// debounceReload arms a timer that hands the reload back to the loop
// goroutine, so Stop's WaitGroup covers the reload itself and a timer
// firing after shutdown only drops a token.
func (w *Watcher) debounceReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() { ping(w.reloadCh) })
}

// applyReload re-reads the config file and swaps the zone set. A broken
// file or unknown zone keeps the previous set.
func (w *Watcher) applyReload() {
	fc, err := cliconfig.LoadFileConfig(w.configPath)
	if err != nil {
		w.logger.Error("config reload failed", log.String("path", w.configPath), log.Err(err))
		return
	}
	if len(fc.Zones) == 0 {
		w.logger.Warn("config reload skipped: no zones in file", log.String("path", w.configPath))
		return
	}
	if err := w.SetZones(fc.Zones); err != nil {
		w.logger.Error("config reload rejected", log.Err(err))
		return
	}
	w.logger.Info("zones reloaded", log.Int("zones", len(fc.Zones)))
}
