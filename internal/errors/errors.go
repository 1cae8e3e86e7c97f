// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// so the command layer can tell a registration failure from a webhook failure without
// parsing messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// RegistrationFailed indicates the registration call failed at the transport or HTTP level.
	RegistrationFailed Kind = "registration_failed"
	// InvalidRegistrationResponse indicates registration succeeded but returned no webhook or token.
	InvalidRegistrationResponse Kind = "invalid_registration_response"
	// WebhookSubmissionFailed indicates the query could not be delivered to the webhook.
	WebhookSubmissionFailed Kind = "webhook_submission_failed"
	// ConfigInvalid indicates configuration could not be loaded or failed validation.
	ConfigInvalid Kind = "config_invalid"
	// PreviewFailed indicates the local query preview could not run.
	PreviewFailed Kind = "preview_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the outermost *E in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
