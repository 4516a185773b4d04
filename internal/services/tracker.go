package services

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"jornada/internal/core"
	"jornada/internal/store"
)

// SyncPublisher announces that a new snapshot revision exists.
type SyncPublisher interface {
	PublishSnapshotSync(ctx context.Context, revision int64) error
}

// TrackerService orchestrates work-day mutations across the in-memory store
// and the async backup channel. Publishing is best effort: a failed publish
// never fails the request, the periodic reconciliation catches it up.
type TrackerService struct {
	store     *store.Store
	publisher SyncPublisher
	revision  atomic.Int64
}

func NewTrackerService(st *store.Store, publisher SyncPublisher) *TrackerService {
	return &TrackerService{store: st, publisher: publisher}
}

// CreateEntries builds records from the form parameters and upserts them by
// date, one creation path for both single and batch mode.
func (s *TrackerService) CreateEntries(ctx context.Context, p core.EntryParams, now time.Time) ([]core.WorkDay, error) {
	entries, err := core.BuildEntries(p, now)
	if err != nil {
		return nil, err
	}

	s.store.ReplaceForDates(ctx, entries)
	s.publishRevision(ctx)
	return entries, nil
}

// ToggleStatus flips a record between pending and paid. Unknown ids are a
// silent no-op.
func (s *TrackerService) ToggleStatus(ctx context.Context, id string) bool {
	found := s.store.ToggleStatus(ctx, id)
	if found {
		s.publishRevision(ctx)
	}
	return found
}

// Delete removes a record by id. Unknown ids are a silent no-op.
func (s *TrackerService) Delete(ctx context.Context, id string) bool {
	found := s.store.Delete(ctx, id)
	if found {
		s.publishRevision(ctx)
	}
	return found
}

// Days returns the current snapshot, newest first.
func (s *TrackerService) Days() []core.WorkDay {
	return s.store.All()
}

// DefaultRateCents returns the rate hint for the entry form.
func (s *TrackerService) DefaultRateCents() int64 {
	return s.store.DefaultRateCents()
}

func (s *TrackerService) publishRevision(ctx context.Context) {
	if s.publisher == nil {
		return
	}

	rev := s.revision.Add(1)
	if err := s.publisher.PublishSnapshotSync(ctx, rev); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"revision", rev, "error", err)
	}
}
