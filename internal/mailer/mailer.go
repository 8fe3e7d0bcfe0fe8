// Package mailer renders accepted inquiries into an operator notification and
// relays it through the transactional email provider.
package mailer

import (
	"context"
)

// Fields is a fully validated and sanitized inquiry ready for rendering. The
// vehicle name is already resolved; Email is normalized but never escaped.
type Fields struct {
	Name    string
	Email   string
	Vehicle string
	Country string
	Message string
}

type Sender interface {
	// Send relays the inquiry and returns the provider's message identifier.
	// A single attempt is made; recovery is the customer resubmitting.
	Send(ctx context.Context, f Fields) (string, error)

	// Configured reports whether provider credentials are present. Callers
	// check this before Send so that a missing credential never reaches the
	// network path.
	Configured() bool
}
