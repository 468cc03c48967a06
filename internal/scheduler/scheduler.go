package scheduler

import (
	"fmt"
	"time"

	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/models"
	"github.com/go-co-op/gocron"
)

// Submitter accepts triggers for the worker pool.
type Submitter interface {
	Submit(t models.Trigger) error
}

// Refresher produces a trigger repeating the last shown query.
type Refresher interface {
	RefreshTrigger() (models.Trigger, bool)
}

type Scheduler struct {
	Cron *gocron.Scheduler
}

func New() *Scheduler {
	return &Scheduler{Cron: gocron.NewScheduler(time.UTC)}
}

// StartJob re-submits the last query every interval. A non-positive
// interval leaves the scheduler idle.
func (s *Scheduler) StartJob(interval time.Duration, sub Submitter, r Refresher) error {
	if interval <= 0 {
		logger.Info("Periodic refresh disabled.")
		return nil
	}

	_, err := s.Cron.Every(interval).WaitForSchedule().Do(func() {
		s.runRefresh(sub, r)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh job: %w", err)
	}

	s.Cron.StartAsync()
	logger.Info("Periodic refresh every %s.", interval)
	return nil
}

func (s *Scheduler) runRefresh(sub Submitter, r Refresher) {
	t, ok := r.RefreshTrigger()
	if !ok {
		logger.Debug("Nothing to refresh yet.")
		return
	}
	if err := sub.Submit(t); err != nil {
		logger.Error("Failed to submit refresh for %q: %v", t.Query, err)
	}
}

// RunImmediateJob submits the startup query.
func (s *Scheduler) RunImmediateJob(sub Submitter, t models.Trigger) error {
	logger.Info("Loading startup location %q.", t.Query)
	if err := sub.Submit(t); err != nil {
		return fmt.Errorf("failed to submit startup query: %w", err)
	}
	return nil
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
}
