package autobackup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCreator) Create(context.Context) ([]byte, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(`{"version":"2.0.0"}`), nil
}

func newTestRunner(t *testing.T, c Creator, keep int) (*Runner, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "backups")
	r := NewRunner(c, Options{Dir: dir, Interval: time.Hour, Keep: keep})
	clock := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return r, dir
}

func TestRunOnce_WritesFile(t *testing.T) {
	r, dir := newTestRunner(t, &fakeCreator{}, 0)

	path, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hourlog-backup-20250601T080100.000Z.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"2.0.0"}`, string(raw))
}

func TestRunOnce_KeepsNewest(t *testing.T) {
	r, dir := newTestRunner(t, &fakeCreator{}, 2)
	ctx := context.Background()

	var written []string
	for range 4 {
		p, err := r.RunOnce(ctx)
		require.NoError(t, err)
		written = append(written, p)
	}

	left, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, written[2:], left)
}

func TestRunOnce_CreateErrorWritesNothing(t *testing.T) {
	r, dir := newTestRunner(t, &fakeCreator{err: errors.New("db locked")}, 2)

	_, err := r.RunOnce(context.Background())
	require.Error(t, err)

	left, err := List(dir)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestPrune_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", FileName(time.Unix(0, 0)), FileName(time.Unix(60, 0))} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	removed, err := Prune(dir, 1)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, FileName(time.Unix(0, 0)), filepath.Base(removed[0]))

	_, err = os.Stat(filepath.Join(dir, "notes.txt"))
	assert.NoError(t, err)
}

func TestStart_RunsImmediately(t *testing.T) {
	c := &fakeCreator{}
	r, dir := newTestRunner(t, c, 0)
	r.now = time.Now

	require.NoError(t, r.Start(context.Background()))
	t.Cleanup(r.Stop)

	require.Eventually(t, func() bool {
		files, _ := List(dir)
		return len(files) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), c.calls.Load())
}
