// Package progress computes month totals and goal pacing from logged
// reports. Every function is a pure function of its arguments: callers load
// data, pass it in, and render the result.
package progress

import "time"

// MonthRange returns the first and last instant of the calendar month
// containing ref, in ref's location. The result depends only on ref's year
// and month.
func MonthRange(ref time.Time) (start, end time.Time) {
	start = StartOfMonth(ref)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// InRange reports whether date lies in [start, end], inclusive at both ends.
func InRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// StartOfMonth returns midnight of day 1 of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// ShiftMonth moves a month cursor by delta months. The cursor is normalized
// to day 1 first, so moving from Jan 31 by +1 lands in February rather than
// overflowing into March.
func ShiftMonth(t time.Time, delta int) time.Time {
	return StartOfMonth(t).AddDate(0, delta, 0)
}

// SameMonth reports whether a and b fall in the same year and month.
func SameMonth(a, b time.Time) bool {
	ya, ma, _ := a.Date()
	yb, mb, _ := b.Date()
	return ya == yb && ma == mb
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	_, end := MonthRange(t)
	return end.Day()
}
