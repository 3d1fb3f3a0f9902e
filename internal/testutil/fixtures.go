package testutil

import (
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

// ReportOption customizes a test report.
type ReportOption func(*domain.Report)

func WithStudies(n int) ReportOption {
	return func(r *domain.Report) {
		r.StudyHours = n
	}
}

func WithObservations(s string) ReportOption {
	return func(r *domain.Report) {
		r.Observations = s
	}
}

// Day returns midnight UTC of the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewTestReport builds an unsaved report; the repository assigns its ID.
func NewTestReport(date time.Time, minutes int, opts ...ReportOption) *domain.Report {
	r := &domain.Report{
		Date:     date,
		Duration: minutes,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
