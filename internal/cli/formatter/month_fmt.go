package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
)

const monthProgressBarWidth = 20

// FormatMonthSummary renders the month overview box shown by status and
// the dashboard.
func FormatMonthSummary(info domain.PersonalInfo, s progress.Summary) string {
	var b strings.Builder

	if first := info.FirstName(); first != "" {
		b.WriteString(fmt.Sprintf("Hello, %s\n\n", Bold(first)))
	}

	rows := [][2]string{
		{"Total hours", Bold(s.TotalHours)},
		{"Studies", Bold(fmt.Sprint(s.TotalStudyCount))},
	}
	if s.GoalMinutes > 0 {
		rows = append(rows,
			[2]string{"Monthly goal", s.GoalHours},
			[2]string{"Remaining", s.RemainingHours},
			[2]string{"Daily goal", s.DailyGoal},
			[2]string{"Working days left", fmt.Sprint(s.WorkingDaysLeft)},
		)
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-18s %s\n", Dim(r[0]), r[1]))
	}

	b.WriteString("\n")
	if s.GoalMinutes > 0 {
		b.WriteString(RenderProgress(s.ProgressPct, monthProgressBarWidth) + "  ")
	}
	b.WriteString(PaceIndicator(s))

	return RenderBox(MonthTitle(s.Start), b.String())
}

// FormatReports renders reports as a table, in the order given.
func FormatReports(reports []*domain.Report, now time.Time) string {
	if len(reports) == 0 {
		return Dim("No reports.") + "\n"
	}
	headers := []string{"ID", "DATE", "HOURS", "STUDIES", "NOTES"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanDay(r.Date, now),
			progress.FormatDuration(r.Duration),
			fmt.Sprint(r.StudyHours),
			Truncate(r.Observations, 40),
		})
	}
	return RenderTable(headers, rows)
}

// FormatReport renders one report in detail.
func FormatReport(r *domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %s\n", Dim("ID"), r.ID)
	fmt.Fprintf(&b, "%-14s %s\n", Dim("Date"), r.Date.Format("Mon Jan 2, 2006"))
	fmt.Fprintf(&b, "%-14s %s (%s)\n", Dim("Duration"), progress.FormatDuration(r.Duration), FormatMinutes(r.Duration))
	fmt.Fprintf(&b, "%-14s %d\n", Dim("Studies"), r.StudyHours)
	if r.Observations != "" {
		fmt.Fprintf(&b, "%-14s %s\n", Dim("Observations"), r.Observations)
	}
	return b.String()
}

func FormatGoal(g domain.MonthlyGoal) string {
	if !g.HasGoal() {
		return "Monthly goal: " + Dim("not set") + "\n"
	}
	return fmt.Sprintf("Monthly goal: %s (%s)\n", Bold(progress.FormatDuration(g.MonthlyMinutes)), FormatMinutes(g.MonthlyMinutes))
}

func FormatProfile(p domain.PersonalInfo) string {
	name, email := p.Name, p.Email
	if name == "" {
		name = Dim("--")
	}
	if email == "" {
		email = Dim("--")
	}
	return fmt.Sprintf("Name:  %s\nEmail: %s\n", name, email)
}

// FormatWorkDays lists all seven weekdays with the selected ones marked.
func FormatWorkDays(days domain.WorkDaySet) string {
	var b strings.Builder
	for d := time.Sunday; d <= time.Saturday; d++ {
		mark := Dim("○")
		if days.Contains(d) {
			mark = StyleGreen.Render("●")
		}
		fmt.Fprintf(&b, "%s %s\n", mark, d)
	}
	if days.IsEmpty() {
		b.WriteString("\n" + StyleYellow.Render("No working days selected; the daily goal stays at 00:00.") + "\n")
	}
	return b.String()
}
