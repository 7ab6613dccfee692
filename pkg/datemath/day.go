package datemath

import "time"

// StartOfDay returns midnight at the start of t's day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, with a
// read in b's location.
func SameDay(a, b time.Time) bool {
	return DaysBetween(b, a) == 0
}

// DaysBetween returns the number of calendar days from `from` to `to`,
// both read in from's location. Negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	loc := from.Location()
	fy, fm, fd := from.Date()
	ty, tm, td := to.In(loc).Date()
	// UTC midnights keep the difference free of DST offsets.
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays returns the start of the day n calendar days after t.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
