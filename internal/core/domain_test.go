package core

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{" 2024-06-15 ", true}, // surrounding whitespace tolerated
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"01/02/2024", false},
		{"", false},
	}
	for i, tc := range cases {
		_, err := ParseDay(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d (%q) expected ok, got %v", i, tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d (%q) expected error", i, tc.in)
		}
	}
}

func TestStatusToggled(t *testing.T) {
	if StatusPending.Toggled() != StatusPaid {
		t.Fatalf("pending should toggle to paid")
	}
	if StatusPaid.Toggled() != StatusPending {
		t.Fatalf("paid should toggle to pending")
	}
	// Toggle is its own inverse.
	for _, s := range []Status{StatusPending, StatusPaid} {
		if s.Toggled().Toggled() != s {
			t.Fatalf("double toggle of %q should restore it", s)
		}
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2024-03-15"); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %q", got)
	}
	if got := MonthOf("bad"); got != "" {
		t.Fatalf("expected empty month for short input, got %q", got)
	}
}

func TestWorkDayValidate(t *testing.T) {
	good := WorkDay{
		ID:        "abc",
		Date:      "2024-03-01",
		Location:  LocationHome,
		Status:    StatusPending,
		RateCents: 10000,
		CreatedAt: time.Now(),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []WorkDay{
		{ID: "", Date: "2024-03-01", Location: LocationHome, Status: StatusPending},
		{ID: "x", Date: "2024-03-99", Location: LocationHome, Status: StatusPending},
		{ID: "x", Date: "2024-03-01", Location: "Oficina", Status: StatusPending},
		{ID: "x", Date: "2024-03-01", Location: LocationHome, Status: "Cobrado"},
		{ID: "x", Date: "2024-03-01", Location: LocationHome, Status: StatusPaid, RateCents: -1},
	}
	for i, w := range bads {
		if err := w.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestEnumLiterals(t *testing.T) {
	// The persisted snapshot format depends on these exact tokens; changing
	// them silently breaks every existing data file.
	if LocationHome != "Casa" || LocationOffice != "Empresa" || LocationOther != "Otro" {
		t.Fatalf("location literals drifted: %q %q %q", LocationHome, LocationOffice, LocationOther)
	}
	if StatusPending != "Pendiente" || StatusPaid != "Pagado" {
		t.Fatalf("status literals drifted: %q %q", StatusPending, StatusPaid)
	}
}
