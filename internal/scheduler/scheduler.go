// Package scheduler runs the periodic background jobs of the service on
// robfig/cron. Runs of the same job never overlap and a panicking job does
// not take the process down.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sbilibin2017/maschat/internal/logger"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

// Job is one unit of periodic work.
type Job func(ctx context.Context) error

// JobObserver records job runs.
type JobObserver interface {
	ObserveJob(job string, d time.Duration, success bool) // Records the duration and outcome of a run
}

// Scheduler wraps a cron runner bound to a context.
type Scheduler struct {
	cron     *cron.Cron
	observer JobObserver

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	jobs   map[string]cron.EntryID
}

// New creates a Scheduler. observer may be nil.
func New(observer JobObserver) *Scheduler {
	log := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(log),
			cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
		),
		observer: observer,
		ctx:      context.Background(),
		jobs:     make(map[string]cron.EntryID),
	}
}

// Add registers job under name on the cron spec. An empty spec disables the job.
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		logger.Log.Infow("job disabled", "job", name)
		return nil
	}
	id, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	s.jobs[name] = id
	logger.Log.Infow("job scheduled", "job", name, "spec", spec)
	return nil
}

// Start begins running jobs; they receive a context derived from ctx that
// is cancelled by Stop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()
	s.cron.Start()
}

// Stop stops scheduling, cancels running jobs and waits for them or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.mu.RLock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.RUnlock()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jobs returns the names of the scheduled jobs.
func (s *Scheduler) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) run(name string, job Job) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()

	start := time.Now()
	err := job(ctx)
	elapsed := time.Since(start)

	if err != nil {
		logger.Log.Errorw("job failed", "job", name, "duration", elapsed, "error", err)
	} else {
		logger.Log.Debugw("job finished", "job", name, "duration", elapsed)
	}
	if s.observer != nil {
		s.observer.ObserveJob(name, elapsed, err == nil)
	}
}

// cronLogger adapts the global zap logger to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Log.Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
}
