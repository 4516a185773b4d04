package core

import "testing"

var filterFixture = []WorkDay{
	day("2024-03-20", LocationHome, StatusPending, 10000),
	day("2024-03-15", LocationOffice, StatusPaid, 20000),
	day("2024-02-28", LocationOther, StatusPending, 5000),
	day("2024-02-01", LocationHome, StatusPaid, 5000),
}

func TestFilterByStatusAll(t *testing.T) {
	got := FilterByStatus(filterFixture, FilterAll)
	if len(got) != len(filterFixture) {
		t.Fatalf("Todos should keep everything, got %d of %d", len(got), len(filterFixture))
	}
	for i := range got {
		if got[i].ID != filterFixture[i].ID {
			t.Fatalf("Todos must preserve order, mismatch at %d", i)
		}
	}
}

func TestFilterByStatus(t *testing.T) {
	pending := FilterByStatus(filterFixture, StatusFilter(StatusPending))
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	paid := FilterByStatus(filterFixture, StatusFilter(StatusPaid))
	if len(paid) != 2 {
		t.Fatalf("expected 2 paid, got %d", len(paid))
	}
	for _, d := range paid {
		if d.Status != StatusPaid {
			t.Fatalf("paid filter leaked %q", d.Status)
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	march := FilterByMonth(filterFixture, "2024-03")
	if len(march) != 2 {
		t.Fatalf("expected 2 march records, got %d", len(march))
	}
	if got := FilterByMonth(nil, "2024-03"); len(got) != 0 {
		t.Fatalf("empty collection should filter to empty, got %d", len(got))
	}
	if got := FilterByMonth(filterFixture, "2025-01"); len(got) != 0 {
		t.Fatalf("no records expected for 2025-01, got %d", len(got))
	}
}

func TestFilterByRange(t *testing.T) {
	got := FilterByRange(filterFixture, "2024-02-01", "2024-03-15")
	if len(got) != 3 {
		t.Fatalf("expected 3 records in range, got %d", len(got))
	}
	// Bounds are inclusive on both ends.
	exact := FilterByRange(filterFixture, "2024-03-15", "2024-03-15")
	if len(exact) != 1 || exact[0].Date != "2024-03-15" {
		t.Fatalf("single-day range should match exactly one record")
	}
}

func TestFilterByRangeInverted(t *testing.T) {
	got := FilterByRange(filterFixture, "2024-03-31", "2024-03-01")
	if len(got) != 0 {
		t.Fatalf("start after end should yield empty, got %d", len(got))
	}
}
