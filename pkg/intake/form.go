package intake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// emailPattern accepts local@domain where the domain has at least one
// dot, matching the server's own check so a payload the server would
// reject as malformed never goes on the wire.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`)

// State is the lifecycle position of a Form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateRetrying   State = "retrying"
)

// maxFailures is the cumulative failure count after which retrying is
// disabled for the lifetime of the form.
const maxFailures = 5

var (
	// ErrNotIdle is returned by Submit when a submission already ran.
	ErrNotIdle = errors.New("intake: form already submitted")

	// ErrNotRetryable is returned by Retry when the form is not in a
	// retryable failed state.
	ErrNotRetryable = errors.New("intake: form is not retryable")
)

// Status is a snapshot of the form's state, suitable for rendering.
type Status struct {
	State    State  `json:"state"`
	Attempts int    `json:"attempts"`
	Reason   string `json:"reason,omitempty"`
	Warning  string `json:"warning,omitempty"`
	CanRetry bool   `json:"canRetry"`
}

// Form drives one subscription or contact submission through its
// lifecycle: idle -> submitting -> succeeded or failed, with retries
// resending the identical payload. Safe for concurrent use.
type Form struct {
	mu       sync.Mutex
	state    State
	attempts int
	reason   string
	warning  string
	terminal bool
	send     func(ctx context.Context) (*Response, error)
}

// NewSubscribeForm builds a form that submits a newsletter subscription.
// The payload is validated up front; a form is never created for input
// the server would reject as malformed.
func NewSubscribeForm(c *Client, email string) (*Form, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("intake: email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("intake: invalid email")
	}
	return newForm(func(ctx context.Context) (*Response, error) {
		return c.Subscribe(ctx, email)
	}), nil
}

// NewContactForm builds a form that submits a contact message. All four
// fields are required.
func NewContactForm(c *Client, form ContactForm) (*Form, error) {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"subject", form.Subject},
		{"message", form.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("intake: missing required fields: %s", strings.Join(missing, ", "))
	}
	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		return nil, fmt.Errorf("intake: invalid email")
	}
	return newForm(func(ctx context.Context) (*Response, error) {
		return c.SubmitContact(ctx, form)
	}), nil
}

func newForm(send func(ctx context.Context) (*Response, error)) *Form {
	return &Form{state: StateIdle, send: send}
}

// Submit runs the first submission. It may only be called from idle;
// use Retry for subsequent attempts.
func (f *Form) Submit(ctx context.Context) (Status, error) {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return f.Status(), ErrNotIdle
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	return f.attempt(ctx), nil
}

// Retry resends the identical payload after a retryable failure.
func (f *Form) Retry(ctx context.Context) (Status, error) {
	f.mu.Lock()
	if f.state != StateFailed || !f.canRetryLocked() {
		f.mu.Unlock()
		return f.Status(), ErrNotRetryable
	}
	f.state = StateRetrying
	f.mu.Unlock()

	return f.attempt(ctx), nil
}

// Reset returns the form to idle so the payload can be submitted as a
// fresh attempt sequence.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.attempts = 0
	f.reason = ""
	f.warning = ""
	f.terminal = false
}

// Status returns a snapshot of the current state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Status{
		State:    f.state,
		Attempts: f.attempts,
		Reason:   f.reason,
		Warning:  f.warning,
		CanRetry: f.state == StateFailed && f.canRetryLocked(),
	}
}

func (f *Form) canRetryLocked() bool {
	if f.terminal {
		return false
	}
	return f.attempts < maxFailures
}

func (f *Form) attempt(ctx context.Context) Status {
	resp, err := f.send(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		f.state = StateSucceeded
		f.reason = ""
		f.warning = resp.EmailWarning
		return f.statusLocked()
	}

	f.attempts++
	f.state = StateFailed
	f.reason = err.Error()

	// A 4xx rejection means the same payload can never succeed, so
	// retrying is pointless regardless of the failure count.
	var apiErr *APIError
	if errors.As(err, &apiErr) && !apiErr.Retryable() {
		f.terminal = true
	}
	if f.attempts >= maxFailures && !f.terminal {
		f.reason = fmt.Sprintf("too many attempts: %s", err.Error())
	}
	return f.statusLocked()
}

func (f *Form) statusLocked() Status {
	return Status{
		State:    f.state,
		Attempts: f.attempts,
		Reason:   f.reason,
		Warning:  f.warning,
		CanRetry: f.state == StateFailed && f.canRetryLocked(),
	}
}
