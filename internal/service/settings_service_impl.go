package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/repository"
)

type settingsService struct {
	goals    repository.GoalRepo
	info     repository.PersonalInfoRepo
	workDays repository.WorkDayRepo
	observer UseCaseObserver
}

func NewSettingsService(
	goals repository.GoalRepo,
	info repository.PersonalInfoRepo,
	workDays repository.WorkDayRepo,
	observers ...UseCaseObserver,
) SettingsService {
	return &settingsService{
		goals:    goals,
		info:     info,
		workDays: workDays,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Goal(ctx context.Context) (g domain.MonthlyGoal, err error) {
	t := track(s.observer, "get-goal")
	defer func() { t.done(ctx, err) }()

	return s.goals.Get(ctx)
}

func (s *settingsService) SetGoal(ctx context.Context, g domain.MonthlyGoal) (err error) {
	t := track(s.observer, "set-goal")
	defer func() { t.done(ctx, err) }()

	g.MonthlyMinutes = domain.CoerceNonNegative(g.MonthlyMinutes)
	t.set("monthly_minutes", g.MonthlyMinutes)
	if err = s.goals.Set(ctx, g); err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}
	return nil
}

// SetGoalHM stores hours*60+minutes as the monthly goal.
func (s *settingsService) SetGoalHM(ctx context.Context, hours, minutes int) (domain.MonthlyGoal, error) {
	g := domain.GoalFromHoursMinutes(hours, minutes)
	if err := s.SetGoal(ctx, g); err != nil {
		return domain.MonthlyGoal{}, err
	}
	return g, nil
}

func (s *settingsService) PersonalInfo(ctx context.Context) (p domain.PersonalInfo, err error) {
	t := track(s.observer, "get-personal-info")
	defer func() { t.done(ctx, err) }()

	return s.info.Get(ctx)
}

func (s *settingsService) SetPersonalInfo(ctx context.Context, p domain.PersonalInfo) (saved domain.PersonalInfo, err error) {
	t := track(s.observer, "set-personal-info")
	defer func() { t.done(ctx, err) }()

	saved = p.Normalized()
	if err = s.info.Set(ctx, saved); err != nil {
		return domain.PersonalInfo{}, fmt.Errorf("saving personal info: %w", err)
	}
	return saved, nil
}

func (s *settingsService) WorkDays(ctx context.Context) (days domain.WorkDaySet, err error) {
	t := track(s.observer, "get-work-days")
	defer func() { t.done(ctx, err) }()

	return s.workDays.Get(ctx)
}

func (s *settingsService) SetWorkDays(ctx context.Context, days domain.WorkDaySet) (err error) {
	t := track(s.observer, "set-work-days")
	t.set("days", days.String())
	defer func() { t.done(ctx, err) }()

	if err = s.workDays.Set(ctx, days); err != nil {
		return fmt.Errorf("saving work days: %w", err)
	}
	return nil
}
