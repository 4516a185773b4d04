package sheets

import (
	"context"

	"jornada/internal/core"
)

// Ports for outbound adapters.
type (
	// BackupWriter mirrors a full work-day snapshot to an external store.
	BackupWriter interface {
		// ReplaceAll overwrites the backup with the given records.
		ReplaceAll(ctx context.Context, days []core.WorkDay) error
	}
)
