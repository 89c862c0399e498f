package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/errors"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/match"
	"github.com/usherapp/usher-server/internal/watcher"
)

// ReloadResult summarizes one completed reload.
type ReloadResult struct {
	Source   ingest.Source
	Guests   int
	Tables   int
	LoadedAt time.Time
}

// ReloadService owns the load-build-swap cycle: initial load at startup,
// manual reloads from the admin endpoint, and watcher-triggered reloads when
// the CSV changes on disk. Each reload rebuilds the directory from scratch.
type ReloadService struct {
	loader  *ingest.Loader
	builder *directory.Builder
	holder  *Holder
	logger  *slog.Logger
}

// NewReloadService creates the reload service.
func NewReloadService(loader *ingest.Loader, builder *directory.Builder, holder *Holder, logger *slog.Logger) *ReloadService {
	return &ReloadService{
		loader:  loader,
		builder: builder,
		holder:  holder,
		logger:  logger,
	}
}

// Reload loads the guest list, builds a fresh snapshot, and swaps it in.
// Readers keep the previous snapshot until the swap.
func (s *ReloadService) Reload(ctx context.Context) (*ReloadResult, error) {
	rows, source, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIngestRejected, "load guest list")
	}

	dir := s.builder.Build(rows)
	snap := &Snapshot{
		Directory: dir,
		Matcher:   match.New(dir),
		Source:    source,
		LoadedAt:  time.Now(),
	}
	s.holder.Swap(snap)

	result := &ReloadResult{
		Source:   source,
		Guests:   len(dir.Guests()),
		Tables:   len(dir.Tables()),
		LoadedAt: snap.LoadedAt,
	}
	s.logger.Info("guest directory reloaded",
		"source", source,
		"guests", result.Guests,
		"tables", result.Tables,
	)
	return result, nil
}

// Watch consumes settle events from the file watcher and reloads on each one.
// It returns when the context is canceled or the watcher is stopped. A failed
// reload keeps the previous snapshot in place.
func (s *ReloadService) Watch(ctx context.Context, w *watcher.FileWatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.Events():
			if !ok {
				return
			}
			s.logger.Info("guest list changed on disk, reloading", "path", path)
			if _, err := s.Reload(ctx); err != nil {
				s.logger.Error("reload after file change failed, keeping previous directory",
					"path", path,
					"error", err,
				)
			}
		}
	}
}
