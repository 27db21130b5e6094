package daemon

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/dailyreport/internal/updater"
)

type countingRunner struct {
	calls chan struct{}
	err   error
}

func (r *countingRunner) Run(ctx context.Context) (*updater.Result, error) {
	r.calls <- struct{}{}
	if r.err != nil {
		return nil, r.err
	}
	return &updater.Result{Status: updater.StatusNotWritten}, nil
}

func TestScheduler_NextRunAtConfiguredTime(t *testing.T) {
	loc := time.UTC
	s, err := NewScheduler(&countingRunner{calls: make(chan struct{}, 1)}, loc)
	require.NoError(t, err)
	require.NoError(t, s.ScheduleDaily(18, 30))

	s.Start(context.Background())
	defer func() { require.NoError(t, s.Stop()) }()

	next, err := s.NextRun()
	require.NoError(t, err)
	next = next.In(loc)
	assert.Equal(t, 18, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.True(t, next.After(time.Now()))
	assert.True(t, next.Before(time.Now().Add(25*time.Hour)))
}

func TestScheduler_RunNowInvokesRunnerAndCallback(t *testing.T) {
	runner := &countingRunner{calls: make(chan struct{}, 1), err: stderrors.New("boom")}
	s, err := NewScheduler(runner, nil)
	require.NoError(t, err)
	require.NoError(t, s.ScheduleDaily(3, 0))

	results := make(chan error, 1)
	s.OnResult(func(_ *updater.Result, err error) { results <- err })

	s.Start(context.Background())
	defer func() { require.NoError(t, s.Stop()) }()
	require.NoError(t, s.RunNow())

	select {
	case <-runner.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("runner was not invoked")
	}
	select {
	case err := <-results:
		assert.EqualError(t, err, "boom")
	case <-time.After(5 * time.Second):
		t.Fatal("result callback was not invoked")
	}
}

func TestScheduler_WithoutJob(t *testing.T) {
	s, err := NewScheduler(&countingRunner{calls: make(chan struct{}, 1)}, nil)
	require.NoError(t, err)

	_, err = s.NextRun()
	assert.Error(t, err)
	assert.Error(t, s.RunNow())
}
