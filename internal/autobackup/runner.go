// Package autobackup writes periodic backup files and prunes old ones.
package autobackup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
)

const (
	filePrefix  = "hourlog-backup-"
	fileSuffix  = ".json"
	stampLayout = "20060102T150405.000Z"
)

// Creator produces a serialized backup. service.BackupService satisfies it.
type Creator interface {
	Create(ctx context.Context) ([]byte, error)
}

type Options struct {
	Dir      string
	Interval time.Duration
	// Keep is how many backup files survive pruning; zero keeps all.
	Keep   int
	Logger *slog.Logger
}

// Runner writes a backup file every Interval while started.
type Runner struct {
	backups   Creator
	opts      Options
	scheduler *gocron.Scheduler
	now       func() time.Time
}

func NewRunner(backups Creator, opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Interval <= 0 {
		opts.Interval = 24 * time.Hour
	}
	return &Runner{
		backups:   backups,
		opts:      opts,
		scheduler: gocron.NewScheduler(time.UTC),
		now:       time.Now,
	}
}

// Start schedules a backup now and then every Interval. It does not block.
func (r *Runner) Start(ctx context.Context) error {
	_, err := r.scheduler.Every(r.opts.Interval).SingletonMode().Do(func() {
		if _, err := r.RunOnce(ctx); err != nil {
			r.opts.Logger.Error("auto backup failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling backup: %w", err)
	}
	r.scheduler.StartAsync()
	return nil
}

func (r *Runner) Stop() {
	r.scheduler.Stop()
}

// RunOnce writes one backup file and prunes old ones. It returns the path
// written.
func (r *Runner) RunOnce(ctx context.Context) (string, error) {
	raw, err := r.backups.Create(ctx)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	path := filepath.Join(r.opts.Dir, FileName(r.now()))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("writing backup: %w", err)
	}
	r.opts.Logger.Info("backup written", "path", path, "bytes", len(raw))

	removed, err := Prune(r.opts.Dir, r.opts.Keep)
	if err != nil {
		return path, err
	}
	if len(removed) > 0 {
		r.opts.Logger.Debug("old backups pruned", "count", len(removed))
	}
	return path, nil
}

// FileName is the backup file name for a backup taken at t.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(stampLayout) + fileSuffix
}

// List returns backup files in dir, oldest first.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing backups: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
	}
	return paths, nil
}

// Prune deletes all but the newest keep backups in dir and returns the
// removed paths. keep <= 0 disables pruning.
func Prune(dir string, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) <= keep {
		return nil, nil
	}
	stale := paths[:len(paths)-keep]
	for _, p := range stale {
		if err := os.Remove(p); err != nil {
			return nil, fmt.Errorf("removing %s: %w", filepath.Base(p), err)
		}
	}
	return stale, nil
}
