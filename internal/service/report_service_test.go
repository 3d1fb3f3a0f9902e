package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/repository"
	"github.com/alexanderramin/hourlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportServiceForTest(t *testing.T) (ReportService, *repository.Store) {
	t.Helper()
	store, database := testutil.NewTestStore(t)
	return NewReportService(store.Reports, testutil.NewTestUoW(database)), store
}

func TestReportService_CreateCoercesInput(t *testing.T) {
	svc, _ := newReportServiceForTest(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, domain.ReportInput{
		Date:         time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
		Duration:     -30,
		StudyHours:   2,
		Observations: "  field service  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, 0, r.Duration)
	assert.Equal(t, 2, r.StudyHours)
	assert.Equal(t, "field service", r.Observations)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "field service", got.Observations)
}

func TestReportService_CreateZeroDateUsesNow(t *testing.T) {
	svc, _ := newReportServiceForTest(t)
	fixed := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc.(*reportService).now = func() time.Time { return fixed }

	r, err := svc.Create(context.Background(), domain.ReportInput{Duration: 45})
	require.NoError(t, err)
	assert.True(t, fixed.Equal(r.Date))
}

func TestReportService_ListMonth(t *testing.T) {
	svc, store := newReportServiceForTest(t)
	ctx := context.Background()

	for _, d := range []time.Time{
		time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, store.Reports.Create(ctx, testutil.NewTestReport(d, 60)))
	}

	june, err := svc.ListMonth(ctx, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.Equal(t, 20, june[0].Date.UTC().Day(), "newest first")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReportService_Update(t *testing.T) {
	svc, _ := newReportServiceForTest(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, domain.ReportInput{Date: testutil.Day(2025, 6, 3), Duration: 60})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, r.ID, domain.ReportInput{
		Date:         testutil.Day(2025, 6, 4),
		Duration:     75,
		StudyHours:   -1,
		Observations: " edited ",
	})
	require.NoError(t, err)
	assert.Equal(t, r.ID, updated.ID)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, got.Duration)
	assert.Equal(t, 0, got.StudyHours)
	assert.Equal(t, "edited", got.Observations)
	assert.True(t, testutil.Day(2025, 6, 4).Equal(got.Date))
}

func TestReportService_UpdateMissing(t *testing.T) {
	svc, _ := newReportServiceForTest(t)

	_, err := svc.Update(context.Background(), "nope", domain.ReportInput{Duration: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReportService_Delete(t *testing.T) {
	svc, _ := newReportServiceForTest(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, domain.ReportInput{Date: testutil.Day(2025, 6, 3), Duration: 60})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, r.ID))

	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReportService_ClearWipesEverything(t *testing.T) {
	svc, store := newReportServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.ReportInput{Date: testutil.Day(2025, 6, 3), Duration: 60})
	require.NoError(t, err)
	require.NoError(t, store.Goals.Set(ctx, domain.MonthlyGoal{MonthlyMinutes: 600}))
	require.NoError(t, store.PersonalInfo.Set(ctx, domain.PersonalInfo{Name: "Ana"}))
	require.NoError(t, store.WorkDays.Set(ctx, domain.NewWorkDaySet(1, 2)))

	require.NoError(t, svc.Clear(ctx))

	reports, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)

	goal, err := store.Goals.Get(ctx)
	require.NoError(t, err)
	assert.False(t, goal.HasGoal())

	info, err := store.PersonalInfo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PersonalInfo{}, info)

	days, err := store.WorkDays.Get(ctx)
	require.NoError(t, err)
	assert.True(t, days.IsEmpty())
}
