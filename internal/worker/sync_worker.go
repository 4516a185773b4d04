package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jornada/internal/amqp"
	"jornada/internal/sheets"
	"jornada/internal/store"
)

// SyncWorker mirrors the persisted work-day snapshot to a backup writer.
// Messages only announce that a new revision exists; the worker always
// reads the current snapshot from the repository, so a burst of edits
// collapses into a single rewrite.
type SyncWorker struct {
	repo   store.Repository
	backup sheets.BackupWriter

	mu           sync.Mutex
	lastRevision int64
}

func NewSyncWorker(repo store.Repository, backup sheets.BackupWriter) *SyncWorker {
	return &SyncWorker{repo: repo, backup: backup, lastRevision: -1}
}

// HandleSyncMessage processes a single snapshot sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.SnapshotSyncMessage) error {
	w.mu.Lock()
	if msg.Revision <= w.lastRevision {
		w.mu.Unlock()
		slog.InfoContext(ctx, "Skipping already synced revision",
			"revision", msg.Revision,
			"last_synced", w.lastRevision)
		return nil
	}
	w.mu.Unlock()

	slog.InfoContext(ctx, "Processing sync message", "revision", msg.Revision)

	if err := w.syncOnce(ctx); err != nil {
		return err
	}

	w.mu.Lock()
	if msg.Revision > w.lastRevision {
		w.lastRevision = msg.Revision
	}
	w.mu.Unlock()
	return nil
}

// RunReconciliation rewrites the backup on a fixed interval until ctx ends.
// This is a backstop for lost messages.
func (w *SyncWorker) RunReconciliation(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.syncOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic reconciliation failed", "error", err)
			}
		}
	}
}

func (w *SyncWorker) syncOnce(ctx context.Context) error {
	days, err := w.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if err := w.backup.ReplaceAll(ctx, days); err != nil {
		return fmt.Errorf("replace backup: %w", err)
	}

	slog.InfoContext(ctx, "Backup synchronized", "days", len(days))
	return nil
}
