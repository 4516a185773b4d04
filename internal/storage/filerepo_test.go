package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jornada/internal/core"
)

func sampleDays() []core.WorkDay {
	return []core.WorkDay{{
		ID:        "f1",
		Date:      "2024-03-01",
		Location:  core.LocationOther,
		Status:    core.StatusPending,
		RateCents: 9000,
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}}
}

func TestFileRepositoryMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "jornada.json"))
	days, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("missing snapshot should not error: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("missing snapshot should load empty, got %d", len(days))
	}
}

func TestFileRepositorySaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jornada.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	if err := repo.Save(ctx, sampleDays()); err != nil {
		t.Fatalf("save: %v", err)
	}
	days, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(days) != 1 || days[0].ID != "f1" || days[0].RateCents != 9000 {
		t.Fatalf("loaded snapshot wrong: %+v", days)
	}

	// No stray temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file should be gone after save")
	}
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jornada.json")
	if err := os.WriteFile(path, []byte("{{{{"), 0600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo := NewFileRepository(path)

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatalf("corrupt snapshot should surface an error")
	}
	// The broken file is preserved under .corrupt for inspection.
	if _, err := os.Stat(path + ".corrupt"); err != nil {
		t.Fatalf("corrupt backup missing: %v", err)
	}
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	days, err := repo.Load(ctx)
	if err != nil || len(days) != 0 {
		t.Fatalf("fresh repo should load empty, got %v / %v", days, err)
	}
	if err := repo.Save(ctx, sampleDays()); err != nil {
		t.Fatalf("save: %v", err)
	}
	days, err = repo.Load(ctx)
	if err != nil || len(days) != 1 {
		t.Fatalf("expected 1 record after save, got %v / %v", days, err)
	}
}
