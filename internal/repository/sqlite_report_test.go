package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hourlog/internal/progress"
	"github.com/alexanderramin/hourlog/internal/repository"
	"github.com/alexanderramin/hourlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepo_CreateAssignsIDs(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	a := testutil.NewTestReport(testutil.Day(2025, time.June, 3), 60)
	b := testutil.NewTestReport(testutil.Day(2025, time.June, 3), 60)
	require.NoError(t, store.Reports.Create(ctx, a))
	require.NoError(t, store.Reports.Create(ctx, b))

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestReportRepo_CreateAndGetByID(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	date := time.Date(2025, time.June, 3, 14, 30, 0, 0, time.UTC)
	rep := testutil.NewTestReport(date, 95, testutil.WithStudies(2), testutil.WithObservations("visited two families"))
	require.NoError(t, store.Reports.Create(ctx, rep))

	got, err := store.Reports.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
	assert.True(t, date.Equal(got.Date), "date round trip: want %v got %v", date, got.Date)
	assert.Equal(t, 95, got.Duration)
	assert.Equal(t, 2, got.StudyHours)
	assert.Equal(t, "visited two families", got.Observations)
}

func TestReportRepo_GetByID_NotFound(t *testing.T) {
	store, _ := testutil.NewTestStore(t)

	_, err := store.Reports.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReportRepo_ListNewestFirst(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	old := testutil.NewTestReport(testutil.Day(2025, time.May, 1), 10)
	mid := testutil.NewTestReport(testutil.Day(2025, time.June, 1), 20)
	recent := testutil.NewTestReport(testutil.Day(2025, time.June, 20), 30)
	require.NoError(t, store.Reports.Create(ctx, mid))
	require.NoError(t, store.Reports.Create(ctx, recent))
	require.NoError(t, store.Reports.Create(ctx, old))

	list, err := store.Reports.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, mid.ID, list[1].ID)
	assert.Equal(t, old.ID, list[2].ID)
}

func TestReportRepo_ListBetween_Inclusive(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	start, end := progress.MonthRange(testutil.Day(2025, time.June, 15))
	first := testutil.NewTestReport(start, 10)
	last := testutil.NewTestReport(end, 20)
	before := testutil.NewTestReport(start.Add(-time.Millisecond), 30)
	after := testutil.NewTestReport(end.Add(time.Millisecond), 40)
	require.NoError(t, store.Reports.Create(ctx, first))
	require.NoError(t, store.Reports.Create(ctx, last))
	require.NoError(t, store.Reports.Create(ctx, before))
	require.NoError(t, store.Reports.Create(ctx, after))

	list, err := store.Reports.ListBetween(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestReportRepo_Update(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	rep := testutil.NewTestReport(testutil.Day(2025, time.June, 3), 60)
	require.NoError(t, store.Reports.Create(ctx, rep))

	rep.Duration = 75
	rep.Observations = "edited"
	rep.UpdatedAt = time.Time{}
	require.NoError(t, store.Reports.Update(ctx, rep))

	got, err := store.Reports.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, got.Duration)
	assert.Equal(t, "edited", got.Observations)
}

func TestReportRepo_Update_NotFound(t *testing.T) {
	store, _ := testutil.NewTestStore(t)

	rep := testutil.NewTestReport(testutil.Day(2025, time.June, 3), 60)
	rep.ID = "ghost"
	err := store.Reports.Update(context.Background(), rep)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReportRepo_DeleteAndDeleteAll(t *testing.T) {
	store, _ := testutil.NewTestStore(t)
	ctx := context.Background()

	a := testutil.NewTestReport(testutil.Day(2025, time.June, 3), 60)
	b := testutil.NewTestReport(testutil.Day(2025, time.June, 4), 60)
	require.NoError(t, store.Reports.Create(ctx, a))
	require.NoError(t, store.Reports.Create(ctx, b))

	require.NoError(t, store.Reports.Delete(ctx, a.ID))
	_, err := store.Reports.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Reports.DeleteAll(ctx))
	list, err := store.Reports.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
