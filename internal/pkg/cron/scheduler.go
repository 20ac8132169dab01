package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named unit of scheduled work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on fixed intervals until stopped.
type Scheduler struct {
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches one goroutine per job. Jobs run once immediately,
// then on every tick.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			slog.Info("cron job started", "job", job.Name, "interval", job.Interval.String())

			s.runJob(ctx, job)

			ticker := time.NewTicker(job.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					slog.Info("cron job stopped", "job", job.Name)
					return
				case <-ticker.C:
					s.runJob(ctx, job)
				}
			}
		}(job)
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		slog.Error("cron job failed", "job", job.Name, "error", err, "duration", time.Since(start).String())
		return
	}
	slog.Info("cron job completed", "job", job.Name, "duration", time.Since(start).String())
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
