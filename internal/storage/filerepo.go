package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"jornada/internal/core"
)

// FileRepository keeps the snapshot in a single JSON file. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated snapshot behind.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load implements store.Repository.
func (r *FileRepository) Load(ctx context.Context) ([]core.WorkDay, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file %s: %w", r.path, err)
	}

	days, err := DecodeSnapshot(data)
	if err != nil {
		// Keep the broken file around for inspection instead of letting the
		// next save silently destroy it.
		backup := r.path + ".corrupt"
		_ = os.Rename(r.path, backup)
		return nil, fmt.Errorf("corrupt snapshot in %s (backed up to %s): %w", r.path, backup, err)
	}

	slog.InfoContext(ctx, "Snapshot loaded from file",
		"path", r.path,
		"records", len(days))
	return days, nil
}

// Save implements store.Repository with an atomic write.
func (r *FileRepository) Save(ctx context.Context, days []core.WorkDay) error {
	data, err := EncodeSnapshot(days)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp snapshot: %w", err)
	}

	slog.DebugContext(ctx, "Snapshot saved to file",
		"path", r.path,
		"records", len(days))
	return nil
}
