// Package payment confirms milestone payments with the card processor.
package payment

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no processor credentials were supplied.
var ErrNotConfigured = errors.New("payment processor is not configured")

// Status values reported back by Confirm.
const (
	StatusSucceeded      = "succeeded"
	StatusProcessing     = "processing"
	StatusRequiresAction = "requires_action"
)

// Result is the outcome of a confirmation the provider accepted.
type Result struct {
	IntentID    string
	Status      string
	RedirectURL string
}

// Settled reports whether the milestone can be marked paid. A processing
// intent has not cleared yet.
func (r Result) Settled() bool {
	return r.Status == StatusSucceeded
}

// Pending reports whether the intent may still settle without the payer.
func (r Result) Pending() bool {
	return r.Status == StatusProcessing
}

// Error is a failure reported by the provider. Message is shown to the
// payer as-is.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Processor confirms a payment intent; returnURL is where the payer lands
// after any redirect-based authentication step.
type Processor interface {
	Confirm(ctx context.Context, intentID, returnURL string) (*Result, error)
}

// Disabled rejects every confirmation with ErrNotConfigured.
type Disabled struct{}

func (Disabled) Confirm(context.Context, string, string) (*Result, error) {
	return nil, ErrNotConfigured
}
