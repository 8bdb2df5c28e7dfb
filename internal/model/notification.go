package model

import "github.com/google/uuid"

// Template identifies which outbound email body is being sent.
type Template string

const (
	TemplateWelcome     Template = "welcome"
	TemplateAutoReply   Template = "auto-reply"
	TemplateAdminNotify Template = "admin-notify"
	TemplateNewsletter  Template = "newsletter"
)

// NotificationAttempt is the outcome of one outbound email send. It is
// never persisted — failures are logged and surfaced as warnings on an
// otherwise-successful response. The ID correlates log lines for one
// attempt.
type NotificationAttempt struct {
	ID        string   `json:"id"`
	Template  Template `json:"template"`
	To        string   `json:"to"`
	Delivered bool     `json:"delivered"`
	Reason    string   `json:"reason,omitempty"`
}

// NewNotificationAttempt records the outcome of a send to the given address.
func NewNotificationAttempt(tmpl Template, to string, delivered bool, reason string) NotificationAttempt {
	return NotificationAttempt{
		ID:        uuid.NewString(),
		Template:  tmpl,
		To:        to,
		Delivered: delivered,
		Reason:    reason,
	}
}
