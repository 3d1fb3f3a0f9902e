package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
)

var (
	// ErrRestoreFailed wraps storage failures during a backup restore. The
	// database is left as it was before the restore started.
	ErrRestoreFailed = errors.New("restore failed")
	// ErrBackupFailed wraps failures while reading state for a backup.
	ErrBackupFailed = errors.New("backup failed")
)

type ReportService interface {
	Create(ctx context.Context, in domain.ReportInput) (*domain.Report, error)
	Get(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]*domain.Report, error)
	// ListMonth returns the reports dated inside ref's month, newest first.
	ListMonth(ctx context.Context, ref time.Time) ([]*domain.Report, error)
	Update(ctx context.Context, id string, in domain.ReportInput) (*domain.Report, error)
	Delete(ctx context.Context, id string) error
	// Clear wipes every stored record, not only reports, and reseeds the
	// defaults.
	Clear(ctx context.Context) error
}

type SettingsService interface {
	Goal(ctx context.Context) (domain.MonthlyGoal, error)
	SetGoal(ctx context.Context, g domain.MonthlyGoal) error
	SetGoalHM(ctx context.Context, hours, minutes int) (domain.MonthlyGoal, error)
	PersonalInfo(ctx context.Context) (domain.PersonalInfo, error)
	SetPersonalInfo(ctx context.Context, p domain.PersonalInfo) (domain.PersonalInfo, error)
	WorkDays(ctx context.Context) (domain.WorkDaySet, error)
	SetWorkDays(ctx context.Context, days domain.WorkDaySet) error
}

type ProgressService interface {
	// MonthSummary evaluates ref's month using today as the pacing clock.
	MonthSummary(ctx context.Context, ref, today time.Time) (*progress.Summary, error)
}

// RestoreResult counts what a restore wrote.
type RestoreResult struct {
	Version          string
	Reports          int
	GoalRestored     bool
	ProfileRestored  bool
	WorkDaysRestored bool
}

type BackupService interface {
	Create(ctx context.Context) ([]byte, error)
	Validate(raw []byte) bool
	Restore(ctx context.Context, raw []byte) (*RestoreResult, error)
}
