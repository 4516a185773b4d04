package core

import (
	"sort"
	"time"
)

const (
	PeriodMonth PeriodMode = "month"
	PeriodRange PeriodMode = "range"
)

type (
	// PeriodMode selects how a receipt period is specified. Month and range
	// are mutually exclusive; the caller picks one.
	PeriodMode string

	// Period identifies the span a receipt covers.
	Period struct {
		Mode  PeriodMode
		Month string // YYYY-MM, month mode
		Start string // ISO day, range mode
		End   string // ISO day, range mode
	}

	// ReceiptLine is one printed row of the receipt.
	ReceiptLine struct {
		Date      string // ISO day
		DayMonth  string // dd/MM, the printed form
		Location  string // short location tag: Casa / Ofic / Otro
		StatusTag string // OK for paid, PDT for pending
		RateCents int64
	}

	// Receipt is the export payload: the filtered, date-ascending record
	// list plus its computed totals and period descriptor. Rendering it to
	// an image is the export layer's job; this stays plain data.
	Receipt struct {
		Title        string
		PeriodLabel  string
		Filename     string
		GeneratedAt  time.Time
		TotalDays    int
		Lines        []ReceiptLine
		PendingCents int64
		PaidCents    int64
		TotalCents   int64
	}
)

// Label renders the period for display: the month itself, or "start / end".
func (p Period) Label() string {
	if p.Mode == PeriodRange {
		return p.Start + " / " + p.End
	}
	return p.Month
}

// Filename is the download name for the exported artifact; the period
// descriptor is embedded so consecutive exports do not clobber each other.
func (p Period) Filename() string {
	if p.Mode == PeriodRange {
		return "Recibo_" + p.Start + "_a_" + p.End + ".png"
	}
	return "Recibo_" + p.Month + ".png"
}

// Select returns the records falling inside the period, order preserved.
func (p Period) Select(days []WorkDay) []WorkDay {
	if p.Mode == PeriodRange {
		return FilterByRange(days, p.Start, p.End)
	}
	return FilterByMonth(days, p.Month)
}

// BuildReceipt assembles the receipt for the period over the full
// collection. Lines are sorted date ascending regardless of the store's
// display order. An empty selection yields a receipt with zero totals.
func BuildReceipt(days []WorkDay, p Period, now time.Time) Receipt {
	selected := p.Select(days)
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date < selected[j].Date
	})

	r := Receipt{
		Title:       "Madrid Jobs",
		PeriodLabel: p.Label(),
		Filename:    p.Filename(),
		GeneratedAt: now,
		TotalDays:   len(selected),
		Lines:       make([]ReceiptLine, 0, len(selected)),
	}
	for _, d := range selected {
		r.Lines = append(r.Lines, ReceiptLine{
			Date:      d.Date,
			DayMonth:  receiptDayMonth(d.Date),
			Location:  receiptLocation(d.Location),
			StatusTag: receiptStatus(d.Status),
			RateCents: d.RateCents,
		})
		if d.Status == StatusPaid {
			r.PaidCents += d.RateCents
		} else {
			r.PendingCents += d.RateCents
		}
		r.TotalCents += d.RateCents
	}
	return r
}

func receiptDayMonth(date string) string {
	t, err := ParseDay(date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}

func receiptLocation(l Location) string {
	switch l {
	case LocationHome:
		return "Casa"
	case LocationOffice:
		return "Ofic"
	default:
		return "Otro"
	}
}

func receiptStatus(s Status) string {
	if s == StatusPaid {
		return "OK"
	}
	return "PDT"
}
