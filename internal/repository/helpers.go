package repository

import (
	"fmt"
	"time"
)

// reportDateLayout is fixed-width and always written in UTC, so string
// order in SQLite matches chronological order.
const reportDateLayout = "2006-01-02T15:04:05.000Z07:00"

func formatReportDate(t time.Time) string {
	return t.UTC().Format(reportDateLayout)
}

// parseReportDate reads a stored report date back into local time.
func parseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		// Rows written by hand or by older builds may use plain RFC3339.
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing report date %q: %w", s, err)
		}
	}
	return t.In(time.Local), nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
