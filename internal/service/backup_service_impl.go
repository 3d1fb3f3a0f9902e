package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/hourlog/internal/backup"
	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/repository"
)

type backupService struct {
	store    *repository.Store
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewBackupService(store *repository.Store, uow db.UnitOfWork, observers ...UseCaseObserver) BackupService {
	return &backupService{
		store:    store,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Create serializes every stored record into a current-version envelope.
func (s *backupService) Create(ctx context.Context) (raw []byte, err error) {
	t := track(s.observer, "create-backup")
	defer func() { t.done(ctx, err) }()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}
	t.set("report_count", len(snap.Reports))

	raw, err = json.MarshalIndent(backup.NewEnvelope(snap, s.now()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encoding: %w", ErrBackupFailed, err)
	}
	return raw, nil
}

func (s *backupService) snapshot(ctx context.Context) (backup.Snapshot, error) {
	var snap backup.Snapshot
	var err error
	if snap.Reports, err = s.store.Reports.List(ctx); err != nil {
		return snap, fmt.Errorf("reading reports: %w", err)
	}
	if snap.Goal, err = s.store.Goals.Get(ctx); err != nil {
		return snap, fmt.Errorf("reading goal: %w", err)
	}
	if snap.PersonalInfo, err = s.store.PersonalInfo.Get(ctx); err != nil {
		return snap, fmt.Errorf("reading personal info: %w", err)
	}
	if snap.WorkDays, err = s.store.WorkDays.Get(ctx); err != nil {
		return snap, fmt.Errorf("reading work days: %w", err)
	}
	return snap, nil
}

func (s *backupService) Validate(raw []byte) bool {
	return backup.Validate(raw)
}

// Restore replaces all stored data with the backup content. The whole
// restore is one transaction: on any failure nothing changes.
func (s *backupService) Restore(ctx context.Context, raw []byte) (res *RestoreResult, err error) {
	t := track(s.observer, "restore-backup")
	defer func() { t.done(ctx, err) }()

	parsed, err := backup.Parse(raw, s.now())
	if err != nil {
		return nil, err
	}
	t.set("version", parsed.Version)

	res = &RestoreResult{Version: parsed.Version}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := repository.NewStore(tx)
		if err := store.ClearAll(ctx); err != nil {
			return err
		}
		if err := replay(ctx, store, parsed.Payload, res); err != nil {
			return err
		}
		if parsed.Legacy != nil {
			return replay(ctx, store, *parsed.Legacy, res)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}
	t.set("report_count", res.Reports)
	return res, nil
}

// replay writes one payload in order: personal info, goal, work days,
// then reports with fresh ids.
func replay(ctx context.Context, store *repository.Store, p backup.Payload, res *RestoreResult) error {
	now := time.Now()
	if p.PersonalInfo != nil {
		if err := store.PersonalInfo.Set(ctx, p.PersonalInfo.Normalized()); err != nil {
			return fmt.Errorf("restoring personal info: %w", err)
		}
		res.ProfileRestored = true
	}
	if p.Goal != nil {
		if err := store.Goals.Set(ctx, *p.Goal); err != nil {
			return fmt.Errorf("restoring goal: %w", err)
		}
		res.GoalRestored = true
	}
	if p.WorkDays != nil {
		if err := store.WorkDays.Set(ctx, *p.WorkDays); err != nil {
			return fmt.Errorf("restoring work days: %w", err)
		}
		res.WorkDaysRestored = true
	}
	for i, in := range p.Reports {
		r := domain.NewReport(in, now)
		if err := store.Reports.Create(ctx, r); err != nil {
			return fmt.Errorf("restoring report %d: %w", i, err)
		}
		res.Reports++
	}
	return nil
}
