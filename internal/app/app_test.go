package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"toc-generator/internal/adapter/logging"
)

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Run(context.Context) error {
	j.runs.Add(1)
	return j.err
}

func TestRunOnceReturnsJobError(t *testing.T) {
	job := &countingJob{err: errors.New("boom")}

	err := New(job, logging.New(nil), "").Run(context.Background())

	assert.EqualError(t, err, "boom")
	assert.EqualValues(t, 1, job.runs.Load())
}

func TestRunScheduledStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := &countingJob{err: errors.New("initial failure is logged")}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New(job, logging.New(nil), "@every 1h").Run(ctx)
	}()

	require.Eventually(t, func() bool { return job.runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancellation")
	}
	assert.EqualValues(t, 1, job.runs.Load())
}

func TestRunScheduledTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := &countingJob{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(job, logging.New(nil), "@every 1s").Run(ctx)
	}()

	require.Eventually(t, func() bool { return job.runs.Load() >= 2 }, 3*time.Second, 20*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestRunInvalidSchedule(t *testing.T) {
	job := &countingJob{}

	err := New(job, logging.New(nil), "not a cron").Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron")
	assert.Zero(t, job.runs.Load())
}
