package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/alexanderramin/hourlog/internal/repository"
)

type reportService struct {
	reports  repository.ReportRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewReportService(reports repository.ReportRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ReportService {
	return &reportService{
		reports:  reports,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *reportService) Create(ctx context.Context, in domain.ReportInput) (r *domain.Report, err error) {
	t := track(s.observer, "create-report")
	defer func() { t.done(ctx, err) }()

	r = domain.NewReport(in, s.now())
	if err = s.reports.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}
	t.set("report_id", r.ID)
	return r, nil
}

func (s *reportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *reportService) List(ctx context.Context) (reports []*domain.Report, err error) {
	t := track(s.observer, "list-reports")
	defer func() { t.done(ctx, err) }()

	return s.reports.List(ctx)
}

func (s *reportService) ListMonth(ctx context.Context, ref time.Time) (reports []*domain.Report, err error) {
	t := track(s.observer, "list-month-reports")
	defer func() { t.done(ctx, err) }()

	start, end := progress.MonthRange(ref)
	t.set("month", start.Format("2006-01"))
	return s.reports.ListBetween(ctx, start, end)
}

func (s *reportService) Update(ctx context.Context, id string, in domain.ReportInput) (r *domain.Report, err error) {
	t := track(s.observer, "update-report")
	t.set("report_id", id)
	defer func() { t.done(ctx, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txReports := repository.NewSQLiteReportRepo(tx)
		existing, err := txReports.GetByID(ctx, id)
		if err != nil {
			return err
		}
		existing.Apply(in, s.now())
		if err := txReports.Update(ctx, existing); err != nil {
			return err
		}
		r = existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("updating report %s: %w", id, err)
	}
	return r, nil
}

func (s *reportService) Delete(ctx context.Context, id string) (err error) {
	t := track(s.observer, "delete-report")
	t.set("report_id", id)
	defer func() { t.done(ctx, err) }()

	if err = s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting report %s: %w", id, err)
	}
	return nil
}

func (s *reportService) Clear(ctx context.Context) (err error) {
	t := track(s.observer, "clear-all")
	defer func() { t.done(ctx, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewStore(tx).ClearAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	return nil
}
