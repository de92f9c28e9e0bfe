// Package jobs runs background maintenance tasks.
package jobs

import (
	"context"
	"errors"
	"time"

	"shop-admin-api/pkg/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// ErrInvalidInterval is returned for a zero or negative refresh interval
var ErrInvalidInterval = errors.New("jobs: refresh interval must be positive")

// Scheduler periodically recomputes the cached revenue chart
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler registers refresh to run now and then every interval
func NewScheduler(interval time.Duration, refresh func(ctx context.Context) error) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()
			if err := refresh(ctx); err != nil {
				logger.L().Warn("chart refresh failed", zap.Error(err))
			}
		}),
		gocron.WithName("chart-cache-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return &Scheduler{scheduler: s}, nil
}

func (s *Scheduler) Start() {
	logger.L().Info("starting background job scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down. It is a no-op on a nil Scheduler.
func (s *Scheduler) Stop() error {
	if s == nil {
		return nil
	}
	logger.L().Info("stopping background job scheduler")
	return s.scheduler.Shutdown()
}
