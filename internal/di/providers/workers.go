package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/usherapp/usher-server/internal/config"
	"github.com/usherapp/usher-server/internal/logger"
	"github.com/usherapp/usher-server/internal/service"
	"github.com/usherapp/usher-server/internal/watcher"
)

// GuestListWatcherHandle wraps the CSV watcher with shutdown capability. The
// watcher is nil when watching is disabled or no file path is configured.
type GuestListWatcherHandle struct {
	Watcher *watcher.FileWatcher
	cancel  context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *GuestListWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	h.Watcher.Stop()
	return nil
}

// ProvideGuestListWatcher provides the CSV file watcher wired to trigger
// reloads when the guest list changes on disk.
func ProvideGuestListWatcher(i do.Injector) (*GuestListWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	reload := do.MustInvoke[*service.ReloadService](i)

	if !cfg.GuestList.Watch || cfg.GuestList.Path == "" {
		log.Info("guest list watching disabled")
		return &GuestListWatcherHandle{}, nil
	}

	w, err := watcher.New(cfg.GuestList.Path, 0, log.Logger)
	if err != nil {
		// Non-fatal: manual reload still works without the watcher.
		log.Warn("guest list watcher unavailable", "path", cfg.GuestList.Path, "error", err)
		return &GuestListWatcherHandle{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	go reload.Watch(ctx, w)

	log.Info("watching guest list for changes", "path", cfg.GuestList.Path)

	return &GuestListWatcherHandle{Watcher: w, cancel: cancel}, nil
}
