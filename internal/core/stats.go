package core

import "time"

// Stats is the point-in-time aggregate over the whole collection. It is
// recomputed from scratch on every read; at a few thousand records that is
// cheaper than keeping running sums correct.
type Stats struct {
	TotalPendingCents int64
	TotalPaidCents    int64
	TotalDays         int
	HomeDays          int
}

// MonthPoint is one entry of the trailing income series.
type MonthPoint struct {
	Month       string // YYYY-MM
	Label       string // short Spanish month name
	IncomeCents int64
}

// trendMonths is the width of the income series: the current calendar month
// plus the five before it.
const trendMonths = 6

var spanishMonthShort = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// ComputeStats aggregates totals by status and location over days.
func ComputeStats(days []WorkDay) Stats {
	var s Stats
	for _, d := range days {
		switch d.Status {
		case StatusPaid:
			s.TotalPaidCents += d.RateCents
		default:
			s.TotalPendingCents += d.RateCents
		}
		if d.Location == LocationHome {
			s.HomeDays++
		}
	}
	s.TotalDays = len(days)
	return s
}

// MonthlySeries computes income totals for the trailing six calendar months
// including the month of now, oldest first. Months without records yield 0;
// records outside the window are simply not represented.
func MonthlySeries(days []WorkDay, now time.Time) []MonthPoint {
	sums := make(map[string]int64, len(days))
	for _, d := range days {
		sums[MonthOf(d.Date)] += d.RateCents
	}

	// Anchor on the first of the month so AddDate cannot skip short months.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	series := make([]MonthPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		key := m.Format("2006-01")
		series = append(series, MonthPoint{
			Month:       key,
			Label:       spanishMonthShort[int(m.Month())-1],
			IncomeCents: sums[key],
		})
	}
	return series
}
