package google

import (
	"testing"
	"time"

	"jornada/internal/core"
)

func TestRowFor(t *testing.T) {
	d := core.WorkDay{
		ID:        "abc",
		Date:      "2024-03-15",
		Location:  core.LocationOffice,
		Status:    core.StatusPaid,
		RateCents: 12550,
		Notes:     "turno de tarde",
		CreatedAt: time.Now(),
	}

	row := rowFor(d)
	if len(row) != len(headerRow) {
		t.Fatalf("row width = %d, want %d", len(row), len(headerRow))
	}
	if row[0] != "2024-03-15" {
		t.Errorf("date cell = %v", row[0])
	}
	if row[1] != "Empresa" {
		t.Errorf("location cell = %v, want Empresa", row[1])
	}
	if row[2] != "Pagado" {
		t.Errorf("status cell = %v, want Pagado", row[2])
	}
	if row[3] != 125.50 {
		t.Errorf("rate cell = %v, want 125.50", row[3])
	}
	if row[4] != "turno de tarde" {
		t.Errorf("notes cell = %v", row[4])
	}
}
