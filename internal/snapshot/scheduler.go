package snapshot

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule runs nightly at 00:00 (seconds field first).
const DefaultSchedule = "0 0 0 * * *"

type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
	log    *zap.Logger
}

// NewScheduler registers runner on spec. spec uses the six-field cron
// syntax with a leading seconds field.
func NewScheduler(runner *Runner, spec string, log *zap.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSchedule
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Scheduler{cron: cron.New(cron.WithSeconds()), runner: runner, log: log}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("failed to create cron job %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	_, _ = s.runner.Run(context.Background())
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.log.Info("snapshot scheduler started")
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running snapshot to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
