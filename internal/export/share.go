// Package export renders a month's progress for sharing outside the app:
// a plain-text message and an xlsx workbook.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
)

// Title names the report for period's month, e.g. "Activity Report - June/2025".
func Title(period time.Time) string {
	return fmt.Sprintf("Activity Report - %s/%d", period.Month(), period.Year())
}

// ShareText builds the message shared for one month. The goal lines only
// appear when a goal is set.
func ShareText(period time.Time, info domain.PersonalInfo, s progress.Summary) string {
	var b strings.Builder
	b.WriteString(Title(period))
	b.WriteString("\n\n")

	if name := strings.TrimSpace(info.Name); name != "" {
		b.WriteString(name)
		b.WriteString("\n\n")
	}

	b.WriteString("Month summary:\n")
	fmt.Fprintf(&b, "Total hours: %s\n", s.TotalHours)
	fmt.Fprintf(&b, "Studies: %d\n", s.TotalStudyCount)

	if s.GoalMinutes > 0 {
		fmt.Fprintf(&b, "Monthly goal: %s\n", s.GoalHours)
		fmt.Fprintf(&b, "Remaining: %s", s.RemainingHours)
	}
	return strings.TrimRight(b.String(), "\n")
}
