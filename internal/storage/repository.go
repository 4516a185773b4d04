package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"jornada/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores the collection snapshot as a single blob row
// keyed by SnapshotKey. The schema is managed through embedded migrations.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load implements store.Repository. A missing snapshot row means the app
// has never saved anything: an empty collection, not an error.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.WorkDay, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = ?`, SnapshotKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	days, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Snapshot loaded from SQLite",
		"key", SnapshotKey,
		"records", len(days))
	return days, nil
}

// Save implements store.Repository, overwriting the previous snapshot.
func (r *SQLiteRepository) Save(ctx context.Context, days []core.WorkDay) error {
	data, err := EncodeSnapshot(days)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		SnapshotKey, data)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	slog.DebugContext(ctx, "Snapshot saved to SQLite",
		"key", SnapshotKey,
		"records", len(days),
		"bytes", len(data))
	return nil
}
