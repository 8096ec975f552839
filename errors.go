package recipeshelf

import "github.com/familykitchen/recipeshelf/internal/errors"

// Re-export the error taxonomy so callers compare against one set of
// symbols.

// SyncError is a non-success response or transport failure from the
// collection store.
type SyncError = errors.SyncError

// ValidationError is an empty required field, caught before any request
// is issued.
type ValidationError = errors.ValidationError

// IsSync reports whether err is (or wraps) a SyncError.
func IsSync(err error) bool { return errors.IsSync(err) }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool { return errors.IsValidation(err) }
