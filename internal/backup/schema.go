// Package backup defines the JSON backup envelope and converts it to and
// from domain values. It does no I/O; see service.BackupService.
package backup

import (
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

const (
	// CurrentVersion is written into every new envelope.
	CurrentVersion = "2.0.0"
	// LegacyVersion envelopes carry the old key/value store layout.
	LegacyVersion = "1.0.0"

	// TimeLayout matches the ISO-8601 form with milliseconds used for the
	// envelope timestamp and report dates.
	TimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Keys of the key/value layout found in legacy (1.0.0) backups.
const (
	LegacyReportsKey      = "@RelatorioApp:reports"
	LegacyGoalsKey        = "@RelatorioApp:goals"
	LegacyPersonalInfoKey = "@RelatorioApp:personalInfo"
	LegacyWorkDaysKey     = "@RelatorioApp:workDays"
)

// Envelope is the top-level backup document.
type Envelope struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Data      Data   `json:"data"`
}

type Data struct {
	Reports      []ReportRecord     `json:"reports"`
	Goals        GoalsRecord        `json:"goals"`
	PersonalInfo PersonalInfoRecord `json:"personalInfo"`
	WorkDays     []int              `json:"workDays"`
}

// ReportRecord is a report as written to a backup. ID is informational and
// ignored on restore.
type ReportRecord struct {
	ID           string `json:"id,omitempty"`
	Date         string `json:"date"`
	Duration     int    `json:"duration"`
	StudyHours   int    `json:"studyHours"`
	Observations string `json:"observations"`
}

// GoalsRecord keeps the historical field name; the value is minutes.
type GoalsRecord struct {
	MonthlyHours int `json:"monthlyHours"`
}

type PersonalInfoRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Snapshot is the full application state captured by a backup.
type Snapshot struct {
	Reports      []*domain.Report
	Goal         domain.MonthlyGoal
	PersonalInfo domain.PersonalInfo
	WorkDays     domain.WorkDaySet
}

// NewEnvelope converts a snapshot into a current-version envelope stamped
// with at.
func NewEnvelope(s Snapshot, at time.Time) Envelope {
	reports := make([]ReportRecord, 0, len(s.Reports))
	for _, r := range s.Reports {
		reports = append(reports, ReportRecord{
			ID:           r.ID,
			Date:         r.Date.UTC().Format(TimeLayout),
			Duration:     r.Duration,
			StudyHours:   r.StudyHours,
			Observations: r.Observations,
		})
	}
	return Envelope{
		Version:   CurrentVersion,
		Timestamp: at.UTC().Format(TimeLayout),
		Data: Data{
			Reports:      reports,
			Goals:        GoalsRecord{MonthlyHours: s.Goal.MonthlyMinutes},
			PersonalInfo: PersonalInfoRecord{Name: s.PersonalInfo.Name, Email: s.PersonalInfo.Email},
			WorkDays:     s.WorkDays.Days(),
		},
	}
}
