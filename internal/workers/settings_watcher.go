// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/welloca/railsui/internal/app"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/internal/store"
	"github.com/welloca/railsui/models"
)

const DefaultReloadDebounce = 250 * time.Millisecond

// SettingsWatcher reloads the settings file into the application context
// whenever it changes on disk. A file that fails to load is reported and
// the previous settings stay active.
type SettingsWatcher struct {
	store    store.SettingsStore
	appCtx   *app.Context
	debounce time.Duration

	mu       sync.Mutex
	onReload func(*models.Settings)

	logger *logger.Logger
}

func NewSettingsWatcher(settingsStore store.SettingsStore, appCtx *app.Context, debounce time.Duration, logger *logger.Logger) *SettingsWatcher {
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	return &SettingsWatcher{
		store:    settingsStore,
		appCtx:   appCtx,
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
	}
}

// OnReload registers fn to be called with every successfully reloaded record.
func (w *SettingsWatcher) OnReload(fn func(*models.Settings)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Reload loads the settings file and makes it the active record.
func (w *SettingsWatcher) Reload(ctx context.Context) error {
	settings, err := w.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload settings: %w", err)
	}

	w.appCtx.Swap(settings)

	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn(settings)
	}

	w.logger.Info().Str(logger.FieldPath, w.store.Path()).Msg("settings reloaded")
	return nil
}

// reloadIfRunning is the debounced reload. A timer that already fired when
// Run returned must not touch the context any more.
func (w *SettingsWatcher) reloadIfRunning(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := w.Reload(ctx); err != nil {
		w.logger.Error().Err(err).Msg("settings reload failed, keeping previous settings")
	}
}

// Run watches the directory of the settings file, so that atomic replaces
// (write to a temp file, rename over the target) are seen as well.
func (w *SettingsWatcher) Run(ctx context.Context) error {
	path := filepath.Clean(w.store.Path())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch settings directory: %w", err)
	}

	w.logger.Info().Str(logger.FieldPath, path).Msg("watching settings file")

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("settings watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug().Str("op", event.Op.String()).Msg("settings file changed")

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				w.reloadIfRunning(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("settings watcher error")
		}
	}
}
