package domain

import (
	"strings"
	"time"
)

// Report is a single logged work session. StudyHours is a count of study
// sessions held that day, not a duration.
type Report struct {
	ID           string
	Date         time.Time
	Duration     int
	StudyHours   int
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReportInput carries user-supplied report fields before coercion.
type ReportInput struct {
	Date         time.Time
	Duration     int
	StudyHours   int
	Observations string
}

// NewReport builds a Report from input, applying the same coercion rules
// everywhere reports enter the system: negative counts become 0,
// observations are trimmed and a zero date falls back to now.
func NewReport(in ReportInput, now time.Time) *Report {
	date := in.Date
	if date.IsZero() {
		date = now
	}
	return &Report{
		Date:         date,
		Duration:     CoerceNonNegative(in.Duration),
		StudyHours:   CoerceNonNegative(in.StudyHours),
		Observations: strings.TrimSpace(in.Observations),
	}
}

// Apply overwrites the editable fields of r with the coerced input.
func (r *Report) Apply(in ReportInput, now time.Time) {
	next := NewReport(in, now)
	r.Date = next.Date
	r.Duration = next.Duration
	r.StudyHours = next.StudyHours
	r.Observations = next.Observations
	r.UpdatedAt = now
}
