package progress

import (
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

type Input struct {
	Reports   []*domain.Report
	Goal      domain.MonthlyGoal
	WorkDays  domain.WorkDaySet
	Reference time.Time
	Today     time.Time
}

// Summary is everything the month view shows for one reference month.
type Summary struct {
	Start time.Time
	End   time.Time
	Totals

	GoalMinutes      int
	DailyGoalMinutes int
	RemainingMinutes int
	WorkingDaysLeft  int

	TotalHours     string
	GoalHours      string
	DailyGoal      string
	RemainingHours string

	// ProgressPct is logged/goal clamped to [0,1]; zero without a goal.
	ProgressPct float64
	GoalMet     bool
}

// Evaluate runs the whole engine for in.Reference's month.
func Evaluate(in Input) Summary {
	start, end := MonthRange(in.Reference)
	totals := AggregateMonth(in.Reports, start, end)
	goal := domain.CoerceNonNegative(in.Goal.MonthlyMinutes)

	s := Summary{
		Start:           start,
		End:             end,
		Totals:          totals,
		GoalMinutes:     goal,
		WorkingDaysLeft: RemainingWorkingDays(PacingAnchor(in.Reference, in.Today), in.WorkDays),
		TotalHours:      FormatDuration(totals.TotalMinutes),
		GoalHours:       FormatGoalHours(goal),
		DailyGoal:       DailyGoal(goal, totals.TotalMinutes, in.Reference, in.Today, in.WorkDays),
		RemainingHours:  RemainingHours(goal, totals.TotalMinutes),
	}
	if daily, ok := dailyGoalMinutes(goal, totals.TotalMinutes, in.Reference, in.Today, in.WorkDays); ok {
		s.DailyGoalMinutes = daily
	}
	if goal > 0 {
		s.RemainingMinutes = max(0, goal-totals.TotalMinutes)
		s.GoalMet = totals.TotalMinutes >= goal
		s.ProgressPct = min(1, float64(totals.TotalMinutes)/float64(goal))
	}
	return s
}
