// Package storage provides the snapshot repositories behind the record
// store: SQLite, a plain JSON file, and an in-memory variant for tests.
// All of them speak the same wire format, the one the application has
// always persisted: a JSON array of records with euro-number rates,
// millisecond timestamps and the literal Spanish enum tokens.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"jornada/internal/core"
)

// SnapshotKey is the fixed key the whole collection lives under. Kept
// verbatim from the first release so old data keeps loading.
const SnapshotKey = "madrid_jobs_data_v1"

// persistedWorkDay is the on-disk record shape. Field names, the euro
// float rate and the millisecond createdAt all match the legacy format;
// do not change them without a migration story.
type persistedWorkDay struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Location  string  `json:"location"`
	Status    string  `json:"status"`
	Rate      float64 `json:"rate"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}

// EncodeSnapshot serializes the collection to the persisted format.
func EncodeSnapshot(days []core.WorkDay) ([]byte, error) {
	out := make([]persistedWorkDay, 0, len(days))
	for _, d := range days {
		out = append(out, persistedWorkDay{
			ID:        d.ID,
			Date:      d.Date,
			Location:  string(d.Location),
			Status:    string(d.Status),
			Rate:      core.Euros(d.RateCents),
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt.UnixMilli(),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted blob back into the domain collection.
// An empty blob decodes to an empty collection.
func DecodeSnapshot(data []byte) ([]core.WorkDay, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []persistedWorkDay
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	days := make([]core.WorkDay, 0, len(raw))
	for _, p := range raw {
		days = append(days, core.WorkDay{
			ID:        p.ID,
			Date:      p.Date,
			Location:  core.Location(p.Location),
			Status:    core.Status(p.Status),
			RateCents: core.CentsFromEuros(p.Rate),
			Notes:     p.Notes,
			CreatedAt: time.UnixMilli(p.CreatedAt).UTC(),
		})
	}
	return days, nil
}
