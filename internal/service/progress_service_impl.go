package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/alexanderramin/hourlog/internal/repository"
)

type progressService struct {
	store    *repository.Store
	observer UseCaseObserver
}

func NewProgressService(store *repository.Store, observers ...UseCaseObserver) ProgressService {
	return &progressService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) MonthSummary(ctx context.Context, ref, today time.Time) (summary *progress.Summary, err error) {
	t := track(s.observer, "month-summary")
	defer func() { t.done(ctx, err) }()

	start, end := progress.MonthRange(ref)
	t.set("month", start.Format("2006-01"))

	reports, err := s.store.Reports.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading reports: %w", err)
	}
	goal, err := s.store.Goals.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goal: %w", err)
	}
	workDays, err := s.store.WorkDays.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading work days: %w", err)
	}

	out := progress.Evaluate(progress.Input{
		Reports:   reports,
		Goal:      goal,
		WorkDays:  workDays,
		Reference: ref,
		Today:     today,
	})
	t.set("report_count", len(reports))
	return &out, nil
}
