// Package scheduler re-runs the season analysis on a fixed interval, for
// archives that are still being appended to week by week.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler periodically refreshes the stored season analysis and emits
// the regenerated reports through a message sink.
type Scheduler struct {
	s           gocron.Scheduler
	interval    time.Duration
	refresh     func() error
	report      func() (string, error)
	sendMessage func(string) error
}

// NewScheduler wires the three watch-mode steps together: refresh
// re-ingests the archive and stores the analyzed season, report renders
// the stored season, and sendMessage delivers the rendered text.
func NewScheduler(interval time.Duration, refresh func() error, report func() (string, error), sendMessage func(string) error) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		interval:    interval,
		refresh:     refresh,
		report:      report,
		sendMessage: sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.runRefresh),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runRefresh() {
	if err := s.refresh(); err != nil {
		slog.Error("Failed to refresh season analysis", "error", err)
		return
	}

	report, err := s.report()
	if err != nil {
		slog.Error("Failed to build season report", "error", err)
		return
	}

	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send season report", "error", err)
	}
}
