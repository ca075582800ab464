package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler triggers the daily screening run in daemon mode. The pipeline
// itself stays single-run-per-invocation; this only decides when an
// invocation happens.
type Scheduler struct {
	cron *cron.Cron
	run  func()
	log  *zap.Logger
}

// NewScheduler creates a scheduler invoking run on each trigger.
func NewScheduler(run func(), log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		run:  run,
		log:  log,
	}
}

// Register registers the daily screening trigger.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.cron.AddFunc(dailyCron, s.run); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunNow executes the screening run immediately (manual trigger).
func (s *Scheduler) RunNow() {
	s.run()
}
