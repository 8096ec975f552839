// Package errors defines the error taxonomy for the recipeshelf client.
//
// A failed round-trip is terminal for that user action: there is no retry
// queue and no backoff. Validation failures never reach the network, and
// preview failures are swallowed entirely by the preview layer.
package errors

import (
	stderrors "errors"
	"fmt"
)

// SyncError reports a failed round-trip against the collection store:
// a non-success HTTP status or a transport failure. Local state is left in
// its last-known-good condition by the caller.
type SyncError struct {
	Status     int    // HTTP status code, 0 for transport failures
	Message    string // response body text when present, else a fallback
	Op         string // "create recipe", "delete ingredient", ...
	Underlying error  // transport error, nil for HTTP-level failures
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *SyncError) Unwrap() error { return e.Underlying }

// ValidationError reports an empty required field. The operation never
// reached the network.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsSync reports whether err is (or wraps) a SyncError.
func IsSync(err error) bool {
	var se *SyncError
	return stderrors.As(err, &se)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
