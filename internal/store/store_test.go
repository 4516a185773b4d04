package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"jornada/internal/core"
)

// fakeRepo records saves and can fail on demand.
type fakeRepo struct {
	seed    []core.WorkDay
	loadErr error
	saveErr error
	saves   [][]core.WorkDay
}

func (f *fakeRepo) Load(context.Context) ([]core.WorkDay, error) {
	return f.seed, f.loadErr
}

func (f *fakeRepo) Save(_ context.Context, days []core.WorkDay) error {
	cp := make([]core.WorkDay, len(days))
	copy(cp, days)
	f.saves = append(f.saves, cp)
	return f.saveErr
}

func wd(id, date string, st core.Status, cents int64) core.WorkDay {
	return core.WorkDay{
		ID:        id,
		Date:      date,
		Location:  core.LocationOffice,
		Status:    st,
		RateCents: cents,
		CreatedAt: time.Now(),
	}
}

func TestHydrateSortsDescending(t *testing.T) {
	repo := &fakeRepo{seed: []core.WorkDay{
		wd("a", "2024-01-01", core.StatusPending, 100),
		wd("b", "2024-03-01", core.StatusPending, 100),
		wd("c", "2024-02-01", core.StatusPending, 100),
	}}
	s := New(repo)
	if err := s.Hydrate(context.Background()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	got := s.All()
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, d := range got {
		if d.Date != want[i] {
			t.Fatalf("position %d date = %s, want %s", i, d.Date, want[i])
		}
	}
}

func TestHydrateEmptyRepo(t *testing.T) {
	s := New(&fakeRepo{})
	if err := s.Hydrate(context.Background()); err != nil {
		t.Fatalf("empty snapshot is not an error: %v", err)
	}
	if len(s.All()) != 0 {
		t.Fatalf("expected empty collection")
	}
}

func TestHydrateLoadError(t *testing.T) {
	s := New(&fakeRepo{loadErr: errors.New("disk gone")})
	if err := s.Hydrate(context.Background()); err == nil {
		t.Fatalf("expected load error surfaced to caller")
	}
	// The store stays usable regardless.
	s.ReplaceForDates(context.Background(), []core.WorkDay{wd("a", "2024-01-01", core.StatusPending, 100)})
	if len(s.All()) != 1 {
		t.Fatalf("store should work after failed hydrate")
	}
}

func TestReplaceForDatesInsert(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)
	s.ReplaceForDates(context.Background(), []core.WorkDay{wd("a", "2024-03-01", core.StatusPending, 10000)})

	got := s.All()
	if len(got) != 1 || got[0].Date != "2024-03-01" {
		t.Fatalf("expected exactly one record for the date, got %+v", got)
	}
	if len(repo.saves) != 1 {
		t.Fatalf("every mutation must snapshot, got %d saves", len(repo.saves))
	}
}

func TestReplaceForDatesUpsert(t *testing.T) {
	s := New(&fakeRepo{})
	ctx := context.Background()
	s.ReplaceForDates(ctx, []core.WorkDay{wd("old", "2024-03-01", core.StatusPending, 10000)})
	s.ReplaceForDates(ctx, []core.WorkDay{wd("new", "2024-03-01", core.StatusPaid, 15000)})

	got := s.All()
	if len(got) != 1 {
		t.Fatalf("re-inserting a date must replace, got %d records", len(got))
	}
	if got[0].ID != "new" || got[0].RateCents != 15000 || got[0].Status != core.StatusPaid {
		t.Fatalf("replacement should carry the newest attributes: %+v", got[0])
	}
}

func TestReplaceForDatesBatchOverwritesOnlyMatchingDates(t *testing.T) {
	s := New(&fakeRepo{})
	ctx := context.Background()
	s.ReplaceForDates(ctx, []core.WorkDay{
		wd("keep", "2024-02-15", core.StatusPaid, 9000),
		wd("gone", "2024-03-02", core.StatusPending, 9000),
	})
	s.ReplaceForDates(ctx, []core.WorkDay{
		wd("n1", "2024-03-01", core.StatusPending, 12000),
		wd("n2", "2024-03-02", core.StatusPending, 12000),
		wd("n3", "2024-03-03", core.StatusPending, 12000),
	})

	got := s.All()
	if len(got) != 4 {
		t.Fatalf("expected 4 records, got %d", len(got))
	}
	byDate := map[string]core.WorkDay{}
	for _, d := range got {
		byDate[d.Date] = d
	}
	if byDate["2024-02-15"].ID != "keep" {
		t.Fatalf("unrelated date must survive the batch")
	}
	if byDate["2024-03-02"].ID != "n2" {
		t.Fatalf("clashing date must be overwritten by the batch")
	}
	// Display order stays date descending.
	for i := 1; i < len(got); i++ {
		if got[i-1].Date < got[i].Date {
			t.Fatalf("collection not sorted descending at %d", i)
		}
	}
}

func TestDefaultRateHint(t *testing.T) {
	s := New(&fakeRepo{})
	if s.DefaultRateCents() != DefaultRateCents {
		t.Fatalf("initial hint = %d, want %d", s.DefaultRateCents(), DefaultRateCents)
	}
	s.ReplaceForDates(context.Background(), []core.WorkDay{
		wd("a", "2024-03-01", core.StatusPending, 13500),
		wd("b", "2024-03-02", core.StatusPending, 13500),
	})
	if s.DefaultRateCents() != 13500 {
		t.Fatalf("hint should follow the first inserted record, got %d", s.DefaultRateCents())
	}
}

func TestToggleStatus(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)
	ctx := context.Background()
	s.ReplaceForDates(ctx, []core.WorkDay{wd("a", "2024-03-01", core.StatusPending, 100)})

	if !s.ToggleStatus(ctx, "a") {
		t.Fatalf("toggle of known id should report found")
	}
	if got := s.All()[0].Status; got != core.StatusPaid {
		t.Fatalf("status = %q, want %q", got, core.StatusPaid)
	}
	// Toggle is its own inverse.
	s.ToggleStatus(ctx, "a")
	if got := s.All()[0].Status; got != core.StatusPending {
		t.Fatalf("double toggle should restore %q, got %q", core.StatusPending, got)
	}
	if len(repo.saves) != 3 {
		t.Fatalf("expected 3 snapshots (insert + 2 toggles), got %d", len(repo.saves))
	}
}

func TestToggleStatusUnknownID(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)
	ctx := context.Background()
	s.ReplaceForDates(ctx, []core.WorkDay{wd("a", "2024-03-01", core.StatusPending, 100)})
	saves := len(repo.saves)

	if s.ToggleStatus(ctx, "nope") {
		t.Fatalf("unknown id should be a no-op")
	}
	if got := s.All()[0].Status; got != core.StatusPending {
		t.Fatalf("no-op toggle must not change anything")
	}
	if len(repo.saves) != saves {
		t.Fatalf("no-op must not snapshot")
	}
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	s := New(repo)
	ctx := context.Background()
	s.ReplaceForDates(ctx, []core.WorkDay{
		wd("a", "2024-03-01", core.StatusPending, 100),
		wd("b", "2024-03-02", core.StatusPending, 100),
	})

	if !s.Delete(ctx, "a") {
		t.Fatalf("delete of known id should report found")
	}
	got := s.All()
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("delete must remove that record and no other: %+v", got)
	}
	saves := len(repo.saves)
	if s.Delete(ctx, "a") {
		t.Fatalf("deleting a missing id should be a no-op")
	}
	if len(s.All()) != 1 || len(repo.saves) != saves {
		t.Fatalf("no-op delete must change nothing")
	}
}

func TestPersistFailureDoesNotBlockMutation(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("storage unavailable")}
	s := New(repo)
	s.ReplaceForDates(context.Background(), []core.WorkDay{wd("a", "2024-03-01", core.StatusPending, 100)})
	if len(s.All()) != 1 {
		t.Fatalf("mutation must succeed in memory even when the snapshot write fails")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := New(&fakeRepo{})
	s.ReplaceForDates(context.Background(), []core.WorkDay{wd("a", "2024-03-01", core.StatusPending, 100)})
	got := s.All()
	got[0].Status = core.StatusPaid
	if s.All()[0].Status != core.StatusPending {
		t.Fatalf("All must hand out a copy, not the backing slice")
	}
}
