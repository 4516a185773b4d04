package core

// FilterAll is the identity status filter, shown as "Todos" in the UI.
const FilterAll StatusFilter = "Todos"

// StatusFilter selects records by payment state. Besides FilterAll the
// valid values are the Status literals themselves.
type StatusFilter string

func (f StatusFilter) IsValid() bool {
	return f == FilterAll || Status(f).IsValid()
}

// Matches reports whether a record passes the filter.
func (f StatusFilter) Matches(d WorkDay) bool {
	return f == FilterAll || d.Status == Status(f)
}

// FilterByStatus returns the records passing f, input order preserved.
func FilterByStatus(days []WorkDay, f StatusFilter) []WorkDay {
	out := make([]WorkDay, 0, len(days))
	for _, d := range days {
		if f.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// FilterByMonth returns the records whose date falls in the YYYY-MM month,
// input order preserved.
func FilterByMonth(days []WorkDay, month string) []WorkDay {
	out := make([]WorkDay, 0, len(days))
	for _, d := range days {
		if MonthOf(d.Date) == month {
			out = append(out, d)
		}
	}
	return out
}

// FilterByRange returns the records with start <= date <= end, both bounds
// inclusive ISO day strings. A start after end yields an empty result, not
// an error. ISO day strings order lexicographically, so plain string
// comparison is the date comparison.
func FilterByRange(days []WorkDay, start, end string) []WorkDay {
	out := make([]WorkDay, 0, len(days))
	if start > end {
		return out
	}
	for _, d := range days {
		if d.Date >= start && d.Date <= end {
			out = append(out, d)
		}
	}
	return out
}
