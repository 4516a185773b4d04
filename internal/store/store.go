// Package store keeps the live work-day collection in memory and mirrors
// every mutation to a snapshot repository. The collection is the source of
// truth while the process runs; the repository only hydrates it at startup
// and receives whole-collection snapshots after each change.
package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"jornada/internal/core"
)

// DefaultRateCents is the initial form pre-fill hint before any entry has
// been registered: €100 per day.
const DefaultRateCents int64 = 10000

// Repository is the persistence port. Load returns an empty collection
// (nil, nil) when no snapshot exists yet; that is not an error.
type Repository interface {
	Load(ctx context.Context) ([]core.WorkDay, error)
	Save(ctx context.Context, days []core.WorkDay) error
}

// Store holds the ordered collection, date descending after every mutation.
type Store struct {
	mu          sync.Mutex
	days        []core.WorkDay
	defaultRate int64
	repo        Repository
}

func New(repo Repository) *Store {
	return &Store{
		repo:        repo,
		defaultRate: DefaultRateCents,
	}
}

// Hydrate replaces the in-memory collection with the repository snapshot.
// A load failure leaves the store empty and is returned for the caller to
// log; it must not prevent the application from starting.
func (s *Store) Hydrate(ctx context.Context) error {
	days, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = days
	sortByDateDesc(s.days)
	return nil
}

// ReplaceForDates removes any existing record whose date appears in newDays,
// appends newDays, and re-sorts. It is the single creation entry point:
// inserting and re-registering the same date are the same operation. The
// default-rate hint follows the first inserted record.
func (s *Store) ReplaceForDates(ctx context.Context, newDays []core.WorkDay) {
	if len(newDays) == 0 {
		return
	}
	s.mu.Lock()
	taken := make(map[string]struct{}, len(newDays))
	for _, d := range newDays {
		taken[d.Date] = struct{}{}
	}
	kept := s.days[:0]
	for _, d := range s.days {
		if _, clash := taken[d.Date]; !clash {
			kept = append(kept, d)
		}
	}
	s.days = append(kept, newDays...)
	sortByDateDesc(s.days)
	s.defaultRate = newDays[0].RateCents
	snapshot := s.copyDays()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// ToggleStatus flips the payment state of the record with id. A missing id
// is a silent no-op: the id always comes from a currently displayed row, so
// absence just means the row was already deleted.
func (s *Store) ToggleStatus(ctx context.Context, id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.days {
		if s.days[i].ID == id {
			s.days[i].Status = s.days[i].Status.Toggled()
			found = true
			break
		}
	}
	var snapshot []core.WorkDay
	if found {
		snapshot = s.copyDays()
	}
	s.mu.Unlock()

	if found {
		s.persist(ctx, snapshot)
	}
	return found
}

// Delete removes the record with id; no-op when absent.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	found := false
	for i := range s.days {
		if s.days[i].ID == id {
			s.days = append(s.days[:i], s.days[i+1:]...)
			found = true
			break
		}
	}
	var snapshot []core.WorkDay
	if found {
		snapshot = s.copyDays()
	}
	s.mu.Unlock()

	if found {
		s.persist(ctx, snapshot)
	}
	return found
}

// All returns a copy of the collection, most recent date first.
func (s *Store) All() []core.WorkDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyDays()
}

// DefaultRateCents returns the current form pre-fill hint.
func (s *Store) DefaultRateCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultRate
}

// persist snapshots the whole collection. Storage failure is logged and
// swallowed: the in-memory state already changed and must stay usable.
func (s *Store) persist(ctx context.Context, snapshot []core.WorkDay) {
	if err := s.repo.Save(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Snapshot save failed",
			"error", err,
			"records", len(snapshot))
	}
}

func (s *Store) copyDays() []core.WorkDay {
	out := make([]core.WorkDay, len(s.days))
	copy(out, s.days)
	return out
}

func sortByDateDesc(days []core.WorkDay) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
}
