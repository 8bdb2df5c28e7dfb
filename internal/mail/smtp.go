package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "gopkg.in/gomail.v2"
)

const defaultTimeout = 10 * time.Second

// SMTPConfig holds the SMTP provider settings. Empty credentials are not
// an error — the sender degrades to reporting every send as undelivered
// so the intake flow keeps persisting records.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string // defaults to User when empty

	// Timeout bounds a single send so a slow provider cannot stall the
	// HTTP response. Defaults to 10s.
	Timeout time.Duration
}

// SMTPSender sends email through an SMTP provider using gomail.
type SMTPSender struct {
	cfg  SMTPConfig
	send func(m *gomail.Message) error
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTPSender for the given configuration.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	s := &SMTPSender{cfg: cfg}
	s.send = s.dialAndSend
	return s
}

// Configured reports whether SMTP credentials are present.
func (s *SMTPSender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Password != ""
}

// Send delivers one message. The dial and transfer run under the
// configured timeout; on expiry the send is abandoned and reported as a
// timeout failure. Send never panics and never returns an error value.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) Result {
	if !s.Configured() {
		return Result{Reason: "notifications unavailable: SMTP credentials not configured"}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.send(m)
	}()

	timer := time.NewTimer(s.cfg.Timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			slog.Warn("email send failed", "to", to, "subject", subject, "error", err)
			return Result{Reason: err.Error()}
		}
		return Result{Delivered: true}
	case <-timer.C:
		slog.Warn("email send timed out", "to", to, "subject", subject, "timeout", s.cfg.Timeout)
		return Result{Reason: fmt.Sprintf("timeout after %s", s.cfg.Timeout)}
	case <-ctx.Done():
		return Result{Reason: ctx.Err().Error()}
	}
}

func (s *SMTPSender) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	return d.DialAndSend(m)
}
