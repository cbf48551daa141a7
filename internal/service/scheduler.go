package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context)

// Scheduler runs jobs on cron schedules until its context is cancelled.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// NewScheduler creates a scheduler evaluating specs in the given location.
func NewScheduler(loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		logger: logger,
	}
}

// Add registers a job. Standard five-field specs and descriptors such as
// "@every 10m" are accepted.
func (s *Scheduler) Add(ctx context.Context, name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.logger.Info("cron triggered", zap.String("job", name))
		job(ctx)
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", name, err)
	}

	s.logger.Info("cron job registered",
		zap.String("job", name),
		zap.String("spec", spec),
	)
	return nil
}

// Run starts the scheduler and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("cron scheduler started")

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("cron scheduler stopped")
}

// BroadcastJob adapts the broadcast service to a scheduled job.
func BroadcastJob(s *BroadcastService, logger *zap.Logger) Job {
	return func(ctx context.Context) {
		if _, err := s.SendDailyWords(ctx); err != nil {
			logger.Error("failed to send daily words", zap.Error(err))
		}
	}
}

// CleanupJob adapts the quiz session sweep to a scheduled job. Pending steps
// in the given stores expire with the same TTL as sessions.
func CleanupJob(s *QuizService, stores ...ExpiringStorage) Job {
	return func(ctx context.Context) {
		s.Cleanup(ctx)

		now := s.now()
		for _, st := range stores {
			if n := st.DeleteExpired(s.ttl, now); n > 0 {
				s.logger.Info("expired conversation steps removed", zap.Int("count", n))
			}
		}
	}
}
