package core

import (
	"errors"
	"strings"
	"time"
)

const (
	LocationHome   Location = "Casa"
	LocationOffice Location = "Empresa"
	LocationOther  Location = "Otro"
)

const (
	StatusPending Status = "Pendiente"
	StatusPaid    Status = "Pagado"
)

// DateLayout is the calendar-day format used everywhere: ISO day strings,
// no time-of-day component.
const DateLayout = "2006-01-02"

type (
	// Location is where the work was performed. The constant values are the
	// literal labels shown to the user AND the tokens written to persisted
	// snapshots; legacy data depends on them staying exactly as they are.
	Location string

	// Status is the payment state of a work day, same literal-token contract
	// as Location.
	Status string

	// WorkDay is one unit of billable work.
	WorkDay struct {
		ID        string
		Date      string // ISO YYYY-MM-DD
		Location  Location
		Status    Status
		RateCents int64
		Notes     string
		CreatedAt time.Time
	}
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("invalid date range")
	ErrNotFound     = errors.New("work day not found")
)

func (l Location) IsValid() bool {
	switch l {
	case LocationHome, LocationOffice, LocationOther:
		return true
	default:
		return false
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

// Toggled returns the opposite payment state.
func (s Status) Toggled() Status {
	if s == StatusPaid {
		return StatusPending
	}
	return StatusPaid
}

// ParseDay parses an ISO day string into a UTC midnight instant.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDay renders an instant back to the ISO day string.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthOf returns the YYYY-MM prefix of an ISO day string, or "" when the
// string is too short to carry one.
func MonthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func (w WorkDay) Validate() error {
	if strings.TrimSpace(w.ID) == "" {
		return errors.New("empty id")
	}
	if _, err := ParseDay(w.Date); err != nil {
		return err
	}
	if !w.Location.IsValid() {
		return errors.New("invalid location")
	}
	if !w.Status.IsValid() {
		return errors.New("invalid status")
	}
	if w.RateCents < 0 {
		return errors.New("negative rate")
	}
	return nil
}
