package service

import (
	"context"
	"log/slog"
	"time"
)

// NewsletterScheduler fires the monthly newsletter at 00:00 UTC on the
// first day of each month.
type NewsletterScheduler struct {
	newsletter NewsletterService
	now        func() time.Time
	stopCh     chan struct{}
}

// NewNewsletterScheduler creates a scheduler for the given service.
func NewNewsletterScheduler(newsletter NewsletterService) *NewsletterScheduler {
	return &NewsletterScheduler{
		newsletter: newsletter,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
}

// Start launches the scheduling loop in a goroutine.
func (s *NewsletterScheduler) Start(ctx context.Context) {
	slog.Info("starting newsletter scheduler", "next_run", nextMonthlyRun(s.now()))
	go s.run(ctx)
}

// Stop terminates the scheduling loop. A batch already in progress is
// not interrupted.
func (s *NewsletterScheduler) Stop() {
	close(s.stopCh)
}

func (s *NewsletterScheduler) run(ctx context.Context) {
	for {
		next := nextMonthlyRun(s.now())
		timer := time.NewTimer(next.Sub(s.now()))

		select {
		case <-timer.C:
			if _, err := s.newsletter.SendMonthly(ctx); err != nil {
				slog.Error("monthly newsletter failed", "error", err)
			}
		case <-s.stopCh:
			timer.Stop()
			slog.Info("newsletter scheduler stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// nextMonthlyRun returns the first 00:00 UTC first-of-month strictly
// after now.
func nextMonthlyRun(now time.Time) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, 0)
}
