package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gundeepm/portfolio-backend/internal/model"
)

// IntakeService is the write path for the two persisted actions:
// newsletter subscription and contact-form submission. Both follow
// commit-then-best-effort-notify semantics — a notification failure
// never rolls back or fails an operation whose write committed.
type IntakeService interface {
	// Subscribe validates and normalizes the email, persists a new
	// subscriber and attempts a welcome notification. Returns
	// *ValidationError, ErrInvalidEmail or ErrAlreadySubscribed for
	// client-fixable input, or a wrapped persistence error.
	Subscribe(ctx context.Context, email string) (*SubscribeResult, error)

	// SubmitContact validates the four required fields, persists one
	// contact message and attempts the auto-reply and admin
	// notifications independently.
	SubmitContact(ctx context.Context, in ContactInput) (*ContactResult, error)
}

// ContactInput is the raw contact-form payload before trimming.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubscribeResult reports a committed subscription plus the outcome of
// the welcome notification.
type SubscribeResult struct {
	Subscriber *model.Subscriber
	Attempts   []model.NotificationAttempt
}

// EmailWarning describes any failed notifications, or "" if all delivered.
func (r *SubscribeResult) EmailWarning() string { return emailWarning(r.Attempts) }

// ContactResult reports a committed contact message plus the outcomes of
// the auto-reply and admin notifications.
type ContactResult struct {
	Message  *model.ContactMessage
	Attempts []model.NotificationAttempt
}

// EmailWarning describes any failed notifications, or "" if all delivered.
func (r *ContactResult) EmailWarning() string { return emailWarning(r.Attempts) }

func emailWarning(attempts []model.NotificationAttempt) string {
	var parts []string
	for _, a := range attempts {
		if !a.Delivered {
			parts = append(parts, fmt.Sprintf("%s notification failed: %s", a.Template, a.Reason))
		}
	}
	return strings.Join(parts, "; ")
}
