package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gundeepm/portfolio-backend/internal/mail"
	"github.com/gundeepm/portfolio-backend/internal/model"
	"github.com/gundeepm/portfolio-backend/internal/repository"
)

// emailPattern accepts local@domain where the domain has at least one dot.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`)

// NormalizeEmail lowercases and trims an email address. All comparisons
// and storage use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// intakeServiceImpl is the production implementation of IntakeService.
type intakeServiceImpl struct {
	subscribers repository.SubscriberRepository
	contacts    repository.ContactRepository
	sender      mail.Sender
	ownerEmail  string
}

// NewIntakeService creates an IntakeService. ownerEmail receives the
// internal notification for new contact messages.
func NewIntakeService(
	subscribers repository.SubscriberRepository,
	contacts repository.ContactRepository,
	sender mail.Sender,
	ownerEmail string,
) IntakeService {
	return &intakeServiceImpl{
		subscribers: subscribers,
		contacts:    contacts,
		sender:      sender,
		ownerEmail:  ownerEmail,
	}
}

func (s *intakeServiceImpl) Subscribe(ctx context.Context, email string) (*SubscribeResult, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, &ValidationError{Missing: []string{"email"}}
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	_, err := s.subscribers.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrAlreadySubscribed
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup subscriber: %w", err)
	}

	sub := &model.Subscriber{Email: email}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		// Two concurrent subscribes for the same address race to the
		// unique index; the loser sees a conflict, not an infra fault.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	slog.Info("new subscriber", "email", email)

	// The write is committed; everything below is best-effort.
	attempt := s.deliver(ctx, model.TemplateWelcome, email, mail.SubjectWelcome, mail.RenderWelcome)
	return &SubscribeResult{
		Subscriber: sub,
		Attempts:   []model.NotificationAttempt{attempt},
	}, nil
}

func (s *intakeServiceImpl) SubmitContact(ctx context.Context, in ContactInput) (*ContactResult, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if subject == "" {
		missing = append(missing, "subject")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	if err := s.contacts.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}
	slog.Info("new contact message", "name", name, "email", email)

	// Sequential sends keep partial-failure attribution per template.
	autoReply := s.deliver(ctx, model.TemplateAutoReply, email, mail.SubjectAutoReply, func() (string, error) {
		return mail.RenderAutoReply(name, subject)
	})
	adminNotify := s.deliver(ctx, model.TemplateAdminNotify, s.ownerEmail, mail.SubjectAdminNotify(subject), func() (string, error) {
		return mail.RenderAdminNotify(name, email, subject, message)
	})

	return &ContactResult{
		Message:  msg,
		Attempts: []model.NotificationAttempt{autoReply, adminNotify},
	}, nil
}

// deliver renders and sends one notification, translating any failure
// into a NotificationAttempt. It never returns an error.
func (s *intakeServiceImpl) deliver(ctx context.Context, tmpl model.Template, to, subject string, body func() (string, error)) model.NotificationAttempt {
	htmlBody, err := body()
	if err != nil {
		attempt := model.NewNotificationAttempt(tmpl, to, false, fmt.Sprintf("render template: %v", err))
		slog.Warn("notification failed", "attempt_id", attempt.ID, "template", tmpl, "reason", attempt.Reason)
		return attempt
	}

	res := s.sender.Send(ctx, to, subject, htmlBody)
	attempt := model.NewNotificationAttempt(tmpl, to, res.Delivered, res.Reason)
	if !res.Delivered {
		slog.Warn("notification failed", "attempt_id", attempt.ID, "template", tmpl, "to", to, "reason", res.Reason)
	}
	return attempt
}
