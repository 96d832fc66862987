package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the image deletion sweep periodically.
type Scheduler struct {
	cron    *cron.Cron
	catalog *Catalog
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that sweeps the image deletion queue
// every sweepInterval.
func NewScheduler(cat *Catalog, sweepInterval time.Duration, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		catalog: cat,
		log:     log,
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		s.runImageSweep,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runImageSweep() {
	ctx := context.Background()
	if _, err := s.catalog.SweepImageDeletions(ctx); err != nil {
		s.log.Error("scheduled image sweep failed", "error", err)
	}
}
