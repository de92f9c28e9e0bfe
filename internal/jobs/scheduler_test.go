package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsRefresh(t *testing.T) {
	var calls atomic.Int32
	s, err := NewScheduler(20*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("redis down")
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Minute} {
		s, err := NewScheduler(interval, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.Nil(t, s)
	}
}

func TestNilSchedulerStop(t *testing.T) {
	var s *Scheduler
	assert.NoError(t, s.Stop())
}
