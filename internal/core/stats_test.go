package core

import (
	"testing"
	"time"
)

func day(date string, loc Location, st Status, cents int64) WorkDay {
	return WorkDay{
		ID:        "id-" + date + "-" + string(st),
		Date:      date,
		Location:  loc,
		Status:    st,
		RateCents: cents,
		CreatedAt: time.Now(),
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.TotalPendingCents != 0 || s.TotalPaidCents != 0 || s.TotalDays != 0 || s.HomeDays != 0 {
		t.Fatalf("empty collection should aggregate to zeroes, got %+v", s)
	}
}

func TestComputeStats(t *testing.T) {
	days := []WorkDay{
		day("2024-03-01", LocationHome, StatusPending, 10000),
		day("2024-03-15", LocationOffice, StatusPaid, 20000),
		day("2024-03-16", LocationHome, StatusPaid, 5000),
		day("2024-04-02", LocationOther, StatusPending, 7500),
	}
	s := ComputeStats(days)
	if s.TotalPendingCents != 17500 {
		t.Fatalf("pending = %d, want 17500", s.TotalPendingCents)
	}
	if s.TotalPaidCents != 25000 {
		t.Fatalf("paid = %d, want 25000", s.TotalPaidCents)
	}
	if s.TotalDays != 4 {
		t.Fatalf("days = %d, want 4", s.TotalDays)
	}
	if s.HomeDays != 2 {
		t.Fatalf("home days = %d, want 2", s.HomeDays)
	}

	// Status partitions the collection: pending + paid always equals the
	// sum of all rates.
	var sum int64
	for _, d := range days {
		sum += d.RateCents
	}
	if s.TotalPendingCents+s.TotalPaidCents != sum {
		t.Fatalf("pending+paid = %d, want %d", s.TotalPendingCents+s.TotalPaidCents, sum)
	}
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)
	days := []WorkDay{
		day("2024-06-03", LocationHome, StatusPending, 10000),
		day("2024-06-10", LocationOffice, StatusPaid, 10000),
		day("2024-01-15", LocationHome, StatusPaid, 5000),
		day("2023-12-31", LocationHome, StatusPaid, 99999), // outside window
	}

	series := MonthlySeries(days, now)
	if len(series) != 6 {
		t.Fatalf("expected 6 points, got %d", len(series))
	}
	if series[0].Month != "2024-01" || series[5].Month != "2024-06" {
		t.Fatalf("window bounds wrong: %s .. %s", series[0].Month, series[5].Month)
	}
	if series[0].IncomeCents != 5000 {
		t.Fatalf("january income = %d, want 5000", series[0].IncomeCents)
	}
	if series[5].IncomeCents != 20000 {
		t.Fatalf("june income = %d, want 20000", series[5].IncomeCents)
	}
	for _, p := range series[1:5] {
		if p.IncomeCents != 0 {
			t.Fatalf("month %s should be 0, got %d", p.Month, p.IncomeCents)
		}
	}
	if series[0].Label != "ene" || series[5].Label != "jun" {
		t.Fatalf("labels wrong: %q %q", series[0].Label, series[5].Label)
	}
}

func TestMonthlySeriesYearBoundary(t *testing.T) {
	// A January 31st "now" exercises the month-arithmetic anchor: stepping
	// back from the 31st naively would skip short months.
	now := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	series := MonthlySeries(nil, now)
	want := []string{"2023-08", "2023-09", "2023-10", "2023-11", "2023-12", "2024-01"}
	for i, p := range series {
		if p.Month != want[i] {
			t.Fatalf("point %d month = %s, want %s", i, p.Month, want[i])
		}
		if p.IncomeCents != 0 {
			t.Fatalf("empty collection should yield zero points")
		}
	}
}
