package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both a genuinely missing row and a row owned by another
// user. The two outcomes are merged on purpose so responses never leak the
// existence of other users' data.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input before any transaction opens. The
// field name is safe to surface to the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for one offending field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
