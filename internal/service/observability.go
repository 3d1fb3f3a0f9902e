package service

import (
	"context"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver reports failed use cases at error level and
// successful ones at debug level.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// tracker times one use case. Call done from a defer with the named error
// result.
type tracker struct {
	obs       UseCaseObserver
	name      string
	startedAt time.Time
	fields    map[string]any
}

func track(obs UseCaseObserver, name string) *tracker {
	return &tracker{obs: obs, name: name, startedAt: time.Now(), fields: map[string]any{}}
}

func (t *tracker) set(key string, v any) {
	t.fields[key] = v
}

func (t *tracker) done(ctx context.Context, err error) {
	t.obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      t.name,
		StartedAt: t.startedAt,
		Duration:  time.Since(t.startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    t.fields,
	})
}
