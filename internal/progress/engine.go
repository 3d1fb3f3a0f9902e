package progress

import (
	"fmt"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

// ZeroDuration is the rendering used whenever there is nothing to pace.
const ZeroDuration = "00:00"

// Totals aggregates the reports of one month.
type Totals struct {
	TotalMinutes    int
	TotalStudyCount int
}

// AggregateMonth sums duration and study count over the reports dated in
// [start, end]. Negative values are counted as zero.
func AggregateMonth(reports []*domain.Report, start, end time.Time) Totals {
	var t Totals
	for _, r := range reports {
		if r == nil || !InRange(r.Date, start, end) {
			continue
		}
		t.TotalMinutes += domain.CoerceNonNegative(r.Duration)
		t.TotalStudyCount += domain.CoerceNonNegative(r.StudyHours)
	}
	return t
}

// FormatDuration renders minutes as HH:MM. Hours are zero-padded to two
// digits and may grow beyond them. Negative input renders as 00:00.
func FormatDuration(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// FormatGoalHours renders a goal as whole hours, HH:00.
func FormatGoalHours(goalMinutes int) string {
	if goalMinutes < 0 {
		goalMinutes = 0
	}
	return fmt.Sprintf("%02d:00", goalMinutes/60)
}

// RemainingWorkingDays counts the days from `from` (inclusive) through the
// last day of its month whose weekday is in workDays.
func RemainingWorkingDays(from time.Time, workDays domain.WorkDaySet) int {
	if workDays.IsEmpty() {
		return 0
	}
	first := from.Day()
	last := DaysInMonth(from)
	wd := int(from.Weekday())

	n := 0
	for day := first; day <= last; day++ {
		if workDays.Has((wd + day - first) % 7) {
			n++
		}
	}
	return n
}

// PacingAnchor is the day pacing starts from: today when ref is in the
// current month, otherwise day 1 of ref's month.
func PacingAnchor(ref, today time.Time) time.Time {
	if SameMonth(ref, today) {
		return today
	}
	return StartOfMonth(ref)
}

// DailyGoal returns the per-working-day target, as HH:MM, needed to reach
// goalMinutes by the end of ref's month. The division rounds up so the
// target never underestimates what is left.
func DailyGoal(goalMinutes, loggedMinutes int, ref, today time.Time, workDays domain.WorkDaySet) string {
	minutes, ok := dailyGoalMinutes(goalMinutes, loggedMinutes, ref, today, workDays)
	if !ok {
		return ZeroDuration
	}
	return FormatDuration(minutes)
}

func dailyGoalMinutes(goalMinutes, loggedMinutes int, ref, today time.Time, workDays domain.WorkDaySet) (int, bool) {
	if goalMinutes <= 0 || loggedMinutes >= goalMinutes {
		return 0, false
	}
	remaining := goalMinutes - loggedMinutes
	n := RemainingWorkingDays(PacingAnchor(ref, today), workDays)
	if n == 0 {
		return 0, false
	}
	return (remaining + n - 1) / n, true
}

// RemainingHours returns what is left of the goal as HH:MM, clamped at
// zero. Without a goal the result is 00:00.
func RemainingHours(goalMinutes, loggedMinutes int) string {
	if goalMinutes <= 0 {
		return ZeroDuration
	}
	return FormatDuration(max(0, goalMinutes-loggedMinutes))
}
