package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{JobTimeout: time.Second, RetryAttempts: 2, RetryDelay: time.Millisecond}
}

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(testConfig(), zap.NewNop())
	noop := func(context.Context) error { return nil }

	require.NoError(t, s.Register(Task{Name: "reorder", Interval: time.Hour, Run: noop}))
	assert.ErrorIs(t, s.Register(Task{Name: "reorder", Interval: time.Hour, Run: noop}), ErrDuplicateTask)
	assert.ErrorIs(t, s.Register(Task{Name: "bad", Run: noop}), ErrInvalidTask)
	assert.ErrorIs(t, s.Register(Task{Name: "nil", Interval: time.Hour}), ErrInvalidTask)

	s.Start(context.Background())
	defer func() { _ = s.Stop(context.Background()) }()
	assert.ErrorIs(t, s.Register(Task{Name: "late", Interval: time.Hour, Run: noop}), ErrSchedulerRunning)
}

func TestScheduler_RunNowRetries(t *testing.T) {
	s := NewScheduler(testConfig(), zap.NewNop())
	var calls int32
	require.NoError(t, s.Register(Task{Name: "flaky", Interval: time.Hour, Run: func(context.Context) error {
		if atomic.AddInt32(&calls, 1) < 3 {
			return errors.New("db busy")
		}
		return nil
	}}))

	job, err := s.RunNow(context.Background(), "flaky")
	require.NoError(t, err)
	assert.Equal(t, JobStatusSuccess, job.Status)
	assert.Equal(t, 3, job.Attempts)
	assert.NotNil(t, job.CompletedAt)

	last, ok := s.LastRun("flaky")
	require.True(t, ok)
	assert.Equal(t, job.ID, last.ID)

	_, err = s.RunNow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestScheduler_RunNowGivesUp(t *testing.T) {
	s := NewScheduler(testConfig(), zap.NewNop())
	require.NoError(t, s.Register(Task{Name: "broken", Interval: time.Hour, Run: func(context.Context) error {
		panic("boom")
	}}))

	job, err := s.RunNow(context.Background(), "broken")
	require.NoError(t, err)
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, 3, job.Attempts)
	assert.Contains(t, job.Error, "boom")
}

func TestScheduler_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.JobTimeout, cfg.RetryAttempts = 10*time.Millisecond, 0
	s := NewScheduler(cfg, zap.NewNop())
	require.NoError(t, s.Register(Task{Name: "slow", Interval: time.Hour, Run: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}))

	job, err := s.RunNow(context.Background(), "slow")
	require.NoError(t, err)
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, context.DeadlineExceeded.Error(), job.Error)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(testConfig(), zap.NewNop())
	ran := make(chan struct{}, 10)
	require.NoError(t, s.Register(Task{Name: "tick", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}}))

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.NoError(t, s.Stop(ctx), "second stop is a no-op")

	_, ok := s.LastRun("tick")
	assert.True(t, ok)
}
