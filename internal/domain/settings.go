package domain

import "strings"

// SingletonID is the fixed row id of the goal and personal-info records.
const SingletonID = "default"

// MonthlyGoal is the target for a calendar month. The value is stored in
// minutes; zero means no goal has been set.
type MonthlyGoal struct {
	MonthlyMinutes int
}

// HasGoal reports whether a goal is configured.
func (g MonthlyGoal) HasGoal() bool {
	return g.MonthlyMinutes > 0
}

// GoalFromHoursMinutes combines an hours/minutes pair into a goal.
func GoalFromHoursMinutes(hours, minutes int) MonthlyGoal {
	return MonthlyGoal{MonthlyMinutes: CoerceNonNegative(hours)*60 + CoerceNonNegative(minutes)}
}

type PersonalInfo struct {
	Name  string
	Email string
}

// Normalized returns a copy with surrounding whitespace removed.
func (p PersonalInfo) Normalized() PersonalInfo {
	return PersonalInfo{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
	}
}

// FirstName returns the first word of Name, or "" when Name is blank.
func (p PersonalInfo) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
