// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error
// kinds and human-friendly messages. This enables better error categorization,
// logging, and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// MissingCredential indicates no API key could be resolved.
	MissingCredential Kind = "missing_credential"
	// InvalidCredential indicates the API key was rejected by the provider.
	InvalidCredential Kind = "invalid_credential"
	// ModelNotFound indicates the requested model is unavailable.
	ModelNotFound Kind = "model_not_found"
	// RateLimited indicates the provider throttled the request.
	RateLimited Kind = "rate_limited"
	// BadResponse indicates the model returned malformed or schema-violating JSON.
	BadResponse Kind = "bad_response"
	// GenerationFailed indicates the model call failed for another reason.
	GenerationFailed Kind = "generation_failed"
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

// Unwrap returns the wrapped error for errors.Is / errors.As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err if it is an *E, or GenerationFailed.
func KindOf(err error) Kind {
	if e, ok := err.(*E); ok {
		return e.Kind
	}
	return GenerationFailed
}
