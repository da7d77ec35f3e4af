package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Poller is the job driven by the scheduler.
type Poller interface {
	Poll(ctx context.Context)
}

// PollScheduler runs a Poller on a fixed interval.
// There is no backoff or jitter: a failing upstream is retried on the next tick.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     Poller
	interval   time.Duration
	logger     *logrus.Entry
}

func NewPollScheduler(poller Poller, interval time.Duration, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithLogger(cron.PrintfLogger(logger))),
		poller:     poller,
		interval:   interval,
		logger:     logger,
	}
}

// Start polls once synchronously and then schedules the remaining polls.
// Ticks that fire while a poll is still running are skipped, so polls never overlap.
func (s *PollScheduler) Start(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Starting poll scheduler...")

	job := cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(s.logger))).Then(cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		s.poller.Poll(ctx)
	}))

	// The first poll runs before the engine starts, so it never races a tick.
	job.Run()

	s.cronEngine.Schedule(cron.Every(s.interval), job)
	s.cronEngine.Start()
	s.logger.Info("Poll scheduler started.")
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Poll scheduler gracefully stopped.")
}
