package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gundeepm/portfolio-backend/internal/mail"
	"github.com/gundeepm/portfolio-backend/internal/model"
	"github.com/gundeepm/portfolio-backend/internal/repository"
)

// NewsletterService delivers the monthly newsletter to every subscriber.
type NewsletterService interface {
	// SendMonthly sends one newsletter email per subscriber. Individual
	// failures are recorded in the report and never abort the run; the
	// returned error covers only the subscriber listing itself.
	SendMonthly(ctx context.Context) (*DeliveryReport, error)
}

// DeliveryReport summarizes one newsletter batch.
type DeliveryReport struct {
	Total    int
	Sent     int
	Failed   int
	Attempts []model.NotificationAttempt
}

type newsletterServiceImpl struct {
	subscribers repository.SubscriberRepository
	sender      mail.Sender
}

// NewNewsletterService creates a NewsletterService.
func NewNewsletterService(subscribers repository.SubscriberRepository, sender mail.Sender) NewsletterService {
	return &newsletterServiceImpl{subscribers: subscribers, sender: sender}
}

func (s *newsletterServiceImpl) SendMonthly(ctx context.Context) (*DeliveryReport, error) {
	subs, err := s.subscribers.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	report := &DeliveryReport{Total: len(subs)}
	if len(subs) == 0 {
		slog.Info("no subscribers, skipping newsletter")
		return report, nil
	}

	body, err := mail.RenderNewsletter()
	if err != nil {
		return nil, fmt.Errorf("render newsletter: %w", err)
	}

	for _, sub := range subs {
		res := s.sender.Send(ctx, sub.Email, mail.SubjectNewsletter, body)
		attempt := model.NewNotificationAttempt(model.TemplateNewsletter, sub.Email, res.Delivered, res.Reason)
		report.Attempts = append(report.Attempts, attempt)
		if res.Delivered {
			report.Sent++
		} else {
			report.Failed++
			slog.Warn("newsletter delivery failed",
				"attempt_id", attempt.ID, "to", sub.Email, "reason", res.Reason)
		}
	}

	slog.Info("newsletter batch finished",
		"total", report.Total, "sent", report.Sent, "failed", report.Failed)
	return report, nil
}
