package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/alexanderramin/hourlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "set-goal", Success: true})
	assert.Empty(t, buf.String(), "successes are debug level")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "restore-backup", Err: errors.New("disk full")})
	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "use_case=restore-backup")
	assert.Contains(t, out, `error="disk full"`)
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestServices_ReportUseCases(t *testing.T) {
	store, database := testutil.NewTestStore(t)
	rec := &recordingObserver{}
	svc := NewReportService(store.Reports, testutil.NewTestUoW(database), rec)
	ctx := context.Background()

	r, err := svc.Create(ctx, domain.ReportInput{Date: testutil.Day(2025, 6, 3), Duration: 30})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "missing", domain.ReportInput{})
	require.Error(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "create-report", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, r.ID, rec.events[0].Fields["report_id"])
	assert.Equal(t, "update-report", rec.events[1].Name)
	assert.False(t, rec.events[1].Success)
	assert.Error(t, rec.events[1].Err)
}
