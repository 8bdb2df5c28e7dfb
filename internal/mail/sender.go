// Package mail wraps the outbound transactional-email provider. Sends are
// strictly best-effort: a Sender reports delivery outcomes as values and
// never lets a provider fault escape across the boundary.
package mail

import "context"

// Result is the outcome of a single send.
type Result struct {
	Delivered bool
	Reason    string
}

// Sender delivers one email. Implementations must be safe for concurrent
// use and must bound how long a send can take.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) Result

	// Configured reports whether the provider credentials are present.
	// An unconfigured sender still satisfies Send, reporting failure.
	Configured() bool
}
