// Package mail delivers transactional email through an external provider.
package mail

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by senders that have no provider credentials.
var ErrNotConfigured = errors.New("mail: provider not configured")

// Message is a single outbound email with both HTML and text bodies.
type Message struct {
	From     string
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender dispatches messages and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)

	// Configured reports whether the sender has what it needs to deliver.
	Configured() bool
}

// ProviderError is a non-success response from the mail provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("mail: provider responded %d", e.StatusCode)
	}
	return fmt.Sprintf("mail: provider responded %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed if sent again.
func (e *ProviderError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
