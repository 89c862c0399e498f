package service

import (
	"sync/atomic"
	"time"

	"github.com/usherapp/usher-server/internal/directory"
	"github.com/usherapp/usher-server/internal/ingest"
	"github.com/usherapp/usher-server/internal/match"
)

// Snapshot is one fully built generation of guest data. Reads always see a
// complete generation; reloads build a new one and swap it in whole.
type Snapshot struct {
	Directory *directory.Directory
	Matcher   *match.Matcher
	Source    ingest.Source
	LoadedAt  time.Time
}

// Holder publishes the current snapshot to readers. Swaps are atomic; readers
// never block reloads and never see a partially built directory.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// NewHolder creates an empty holder. Get returns nil until the first Swap.
func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the current snapshot, or nil before the first load completes.
func (h *Holder) Get() *Snapshot {
	return h.current.Load()
}

// Swap publishes a new snapshot.
func (h *Holder) Swap(s *Snapshot) {
	h.current.Store(s)
}
