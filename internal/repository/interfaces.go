package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
)

// ErrNotFound is returned when a record addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type ReportRepo interface {
	// Create assigns a fresh ID and timestamps to r before inserting it.
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	// List returns every report, newest date first.
	List(ctx context.Context) ([]*domain.Report, error)
	// ListBetween returns reports dated in [start, end], newest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Report, error)
	Update(ctx context.Context, r *domain.Report) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type GoalRepo interface {
	Get(ctx context.Context) (domain.MonthlyGoal, error)
	Set(ctx context.Context, g domain.MonthlyGoal) error
}

type PersonalInfoRepo interface {
	Get(ctx context.Context) (domain.PersonalInfo, error)
	Set(ctx context.Context, p domain.PersonalInfo) error
}

type WorkDayRepo interface {
	Get(ctx context.Context) (domain.WorkDaySet, error)
	// Set replaces the whole selection.
	Set(ctx context.Context, days domain.WorkDaySet) error
}
