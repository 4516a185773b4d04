package core

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModeSingle EntryMode = "single"
	ModeBatch  EntryMode = "batch"
)

type (
	// EntryMode selects between registering one day and expanding a range.
	EntryMode string

	// EntryParams carries everything needed to build new work-day records.
	// In single mode only Date is read; in batch mode Date..EndDate is the
	// inclusive interval to expand.
	EntryParams struct {
		Mode      EntryMode
		Date      string
		EndDate   string
		Location  Location
		Status    Status
		RateCents int64
		Notes     string
	}
)

// BuildEntries expands params into one WorkDay per calendar day. Every
// produced record shares location, status, rate and notes; each gets a fresh
// uuid and now as its creation instant. Batch mode fails with
// ErrInvalidRange when either bound does not parse or start is after end —
// no partial output is ever produced.
//
// The result is meant to be fed straight into the store's ReplaceForDates:
// re-registering a span deliberately overwrites prior entries for those
// exact dates.
func BuildEntries(p EntryParams, now time.Time) ([]WorkDay, error) {
	if p.Mode != ModeBatch {
		if _, err := ParseDay(p.Date); err != nil {
			return nil, ErrInvalidDate
		}
		return []WorkDay{newWorkDay(p, p.Date, now)}, nil
	}

	start, err := ParseDay(p.Date)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := ParseDay(p.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var out []WorkDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, newWorkDay(p, FormatDay(d), now))
	}
	return out, nil
}

func newWorkDay(p EntryParams, date string, now time.Time) WorkDay {
	return WorkDay{
		ID:        uuid.NewString(),
		Date:      date,
		Location:  p.Location,
		Status:    p.Status,
		RateCents: p.RateCents,
		Notes:     p.Notes,
		CreatedAt: now,
	}
}
