package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/stretchr/testify/assert"
)

func juneSummary(goal int, reports ...*domain.Report) progress.Summary {
	return progress.Evaluate(progress.Input{
		Reports:   reports,
		Goal:      domain.MonthlyGoal{MonthlyMinutes: goal},
		WorkDays:  domain.AllWeekdays(),
		Reference: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Today:     time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC),
	})
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"empty", 0, 4, "0%"},
		{"half", 0.5, 4, "50%"},
		{"full", 1, 4, "100%"},
		{"over clamps", 1.5, 4, "100%"},
		{"negative clamps", -1, 4, "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.True(t, strings.HasSuffix(got, tt.want), got)
			assert.Contains(t, got, "[")
		})
	}
	assert.Contains(t, RenderProgress(0, 4), strings.Repeat(emptyBlock, 4))
	assert.Contains(t, RenderProgress(1, 4), strings.Repeat(filledBlock, 4))
}

func TestRenderTable_Aligns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"wide cell", "x"}, {"y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[0], "LONGER"), strings.Index(lines[2], "x"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestHumanDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDay(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDay(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Mon Jun 2", HumanDay(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Dec 31, 2024", HumanDay(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), now))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(-3))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestFormatMonthSummary_WithGoal(t *testing.T) {
	s := juneSummary(600, &domain.Report{Date: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), Duration: 120, StudyHours: 1})
	out := FormatMonthSummary(domain.PersonalInfo{Name: "Ana Maria"}, s)

	assert.Contains(t, out, "JUNE 2025")
	assert.Contains(t, out, "Hello, Ana")
	assert.Contains(t, out, "02:00")
	assert.Contains(t, out, "10:00")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "01:09")
	assert.Contains(t, out, "IN PROGRESS")
}

func TestFormatMonthSummary_NoGoal(t *testing.T) {
	out := FormatMonthSummary(domain.PersonalInfo{}, juneSummary(0))
	assert.Contains(t, out, "NO GOAL")
	assert.NotContains(t, out, "Daily goal")
	assert.NotContains(t, out, "Hello")
}

func TestPaceIndicator(t *testing.T) {
	met := juneSummary(60, &domain.Report{Date: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC), Duration: 90})
	assert.Contains(t, PaceIndicator(met), "GOAL MET")

	noDays := juneSummary(60)
	noDays.WorkingDaysLeft = 0
	assert.Contains(t, PaceIndicator(noDays), "NO WORKING DAYS LEFT")
}

func TestFormatReports(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	out := FormatReports([]*domain.Report{
		{ID: "0123456789abcdef", Date: now, Duration: 95, StudyHours: 2, Observations: "door to door"},
	}, now)
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "01:35")
	assert.Contains(t, out, "door to door")

	assert.Contains(t, FormatReports(nil, now), "No reports.")
}

func TestFormatGoalAndProfile(t *testing.T) {
	assert.Contains(t, FormatGoal(domain.MonthlyGoal{}), "not set")
	assert.Contains(t, FormatGoal(domain.MonthlyGoal{MonthlyMinutes: 3030}), "50:30")
	assert.Contains(t, FormatProfile(domain.PersonalInfo{Name: "Ana"}), "Ana")
}

func TestFormatWorkDays(t *testing.T) {
	out := FormatWorkDays(domain.NewWorkDaySet(1, 5))
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Sunday")
	assert.NotContains(t, out, "No working days")
	assert.Contains(t, FormatWorkDays(0), "No working days")
}
